package systems

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Random is the source of every random decision in a match: serve direction,
// serve and strike angles, and ball colors. Tests substitute scripted
// implementations to assert exact velocities.
type Random interface {
	// Direction returns -1 or +1 with equal probability.
	Direction() float64
	// Normal draws from a normal distribution with mean 0 and the given
	// standard deviation.
	Normal(stddev float64) float64
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// pcgRandom is the production Random backed by a seeded PCG generator.
type pcgRandom struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewRandom creates a seeded Random. The same seed yields the same match.
func NewRandom(seed uint64) Random {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &pcgRandom{
		src: src,
		rng: rand.New(src),
	}
}

func (r *pcgRandom) Direction() float64 {
	if r.rng.IntN(2) == 0 {
		return -1
	}
	return 1
}

func (r *pcgRandom) Normal(stddev float64) float64 {
	n := distuv.Normal{Mu: 0, Sigma: stddev, Src: r.src}
	return n.Rand()
}

func (r *pcgRandom) IntN(n int) int {
	return r.rng.IntN(n)
}
