// Package telemetry collects match statistics and writes experiment output.
package telemetry

import "github.com/pthm-cable/pong/components"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	paddleHits  int
	wallBounces int
	ballsOut    int
	leftPoints  int
	rightPoints int

	// Rally tracking spans windows; completed rallies land in the window
	// their point was scored in.
	rallyHits      int
	lastPointTick  int32
	rallies        []float64
	pointDurations []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in match seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// StartAt begins the first window and the first point at tick, for matches
// resumed from a snapshot.
func (c *Collector) StartAt(tick int32) {
	c.windowStartTick = tick
	c.lastPointTick = tick
}

// RecordPaddleHit records a ball striking a paddle.
func (c *Collector) RecordPaddleHit() {
	c.paddleHits++
	c.rallyHits++
}

// RecordWallBounce records a ball reflecting off the top or bottom wall.
func (c *Collector) RecordWallBounce() {
	c.wallBounces++
}

// RecordBallOut records a ball leaving through a side wall.
func (c *Collector) RecordBallOut() {
	c.ballsOut++
}

// RecordPoint records a completed point and returns its record. Scores are
// the totals after the point was awarded.
func (c *Collector) RecordPoint(tick int32, scorer components.Side, leftScore, rightScore int) PointRecord {
	if scorer == components.SideLeft {
		c.leftPoints++
	} else {
		c.rightPoints++
	}

	duration := tick - c.lastPointTick
	rec := PointRecord{
		Tick:          tick,
		SimTimeSec:    float64(tick) * c.dt,
		Scorer:        scorer.String(),
		LeftScore:     leftScore,
		RightScore:    rightScore,
		RallyHits:     c.rallyHits,
		DurationTicks: duration,
	}

	c.rallies = append(c.rallies, float64(c.rallyHits))
	c.pointDurations = append(c.pointDurations, float64(duration)*c.dt)
	c.rallyHits = 0
	c.lastPointTick = tick

	return rec
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, leftScore, rightScore, activeBalls int) WindowStats {
	rallyMean, rallyStd, rallyP50, rallyP90 := ComputeRallyStats(c.rallies)
	var rallyMax float64
	for _, r := range c.rallies {
		rallyMax = max(rallyMax, r)
	}
	durationMean, _, _, _ := ComputeRallyStats(c.pointDurations)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		LeftScore:   leftScore,
		RightScore:  rightScore,
		ActiveBalls: activeBalls,

		PaddleHits:  c.paddleHits,
		WallBounces: c.wallBounces,
		BallsOut:    c.ballsOut,
		LeftPoints:  c.leftPoints,
		RightPoints: c.rightPoints,

		RallyMean: rallyMean,
		RallyStd:  rallyStd,
		RallyP50:  rallyP50,
		RallyP90:  rallyP90,
		RallyMax:  rallyMax,

		PointDurationMean: durationMean,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.paddleHits = 0
	c.wallBounces = 0
	c.ballsOut = 0
	c.leftPoints = 0
	c.rightPoints = 0
	c.rallies = c.rallies[:0]
	c.pointDurations = c.pointDurations[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
