// Package components defines ECS components for the match.
package components

// Side identifies which wall a paddle guards.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name used in logs and CSV output.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Position is the top-left corner of an entity's bounding box.
type Position struct {
	X, Y float64
}

// Velocity is the per-tick displacement of an entity.
type Velocity struct {
	X, Y float64
}

// Size is the bounding box extent.
type Size struct {
	W, H float64
}

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Ball holds ball-specific state.
type Ball struct {
	Color RGB
	// Active is false once the ball left through a side wall in a
	// multi-ball round; inactive balls are skipped until the next reset.
	Active bool
}

// Paddle holds paddle-specific state.
type Paddle struct {
	Side  Side
	Speed float64 // pixels per tick
	Score int
}
