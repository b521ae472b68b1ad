package main

import (
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
	"github.com/pthm-cable/pong/telemetry"
)

// Penalty for a run in which nobody scored; rallies never ended.
const noPointsPenalty = 100.0

// imbalanceWeight scales the squared share difference between the sides.
const imbalanceWeight = 0.5

// FitnessEvaluator runs headless bot matches and scores how close their
// rallies come to the target length.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []uint64
	baseConfig  *config.Config
	targetRally float64

	mu         sync.Mutex
	lastRally  float64 // mean rally from most recent Evaluate call
	lastPoints int
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []uint64, baseCfg *config.Config, targetRally float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		targetRally: targetRally,
	}
}

// LastRally returns the mean rally length and point count from the most
// recent evaluation.
func (fe *FitnessEvaluator) LastRally() (float64, int) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastRally, fe.lastPoints
}

// runResult holds the points completed in a single match.
type runResult struct {
	points []telemetry.PointRecord
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]*runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s uint64) {
			defer wg.Done()
			results[idx] = fe.runMatch(x, s)
		}(i, seed)
	}
	wg.Wait()

	var points []telemetry.PointRecord
	for _, r := range results {
		points = append(points, r.points...)
	}

	fitness := fe.computeFitness(points)

	fe.mu.Lock()
	fe.lastRally = meanRally(points)
	fe.lastPoints = len(points)
	fe.mu.Unlock()

	return fitness
}

// runMatch plays one headless bot match for maxTicks.
func (fe *FitnessEvaluator) runMatch(x []float64, seed uint64) *runResult {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	result := &runResult{}

	g, err := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StepsPerUpdate: 1,
		Config:         cfg,
		PointCallback: func(p telemetry.PointRecord) {
			result.points = append(result.points, p)
		},
	})
	if err != nil {
		return result
	}
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}
	return result
}

// copyConfig copies the base config. Only value fields are tuned, so the
// shared song list is safe.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness scores the points of all seeds:
// ((mean_rally - target) / target)^2 + imbalanceWeight * (left_share - right_share)^2
func (fe *FitnessEvaluator) computeFitness(points []telemetry.PointRecord) float64 {
	if len(points) == 0 {
		return noPointsPenalty
	}

	rallyErr := (meanRally(points) - fe.targetRally) / fe.targetRally

	var left int
	for _, p := range points {
		if p.Scorer == "left" {
			left++
		}
	}
	leftShare := float64(left) / float64(len(points))
	imbalance := leftShare - (1 - leftShare)

	return rallyErr*rallyErr + imbalanceWeight*imbalance*imbalance
}

// meanRally returns the mean paddle hits per point.
func meanRally(points []telemetry.PointRecord) float64 {
	if len(points) == 0 {
		return 0
	}
	hits := make([]float64, len(points))
	for i, p := range points {
		hits[i] = float64(p.RallyHits)
	}
	return stat.Mean(hits, nil)
}
