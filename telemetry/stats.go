package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Match state at window end
	LeftScore   int `csv:"left_score"`
	RightScore  int `csv:"right_score"`
	ActiveBalls int `csv:"active_balls"`

	// Events during window
	PaddleHits  int `csv:"paddle_hits"`
	WallBounces int `csv:"wall_bounces"`
	BallsOut    int `csv:"balls_out"`
	LeftPoints  int `csv:"left_points"`
	RightPoints int `csv:"right_points"`

	// Rally length in paddle hits, over points scored in the window
	RallyMean float64 `csv:"rally_mean"`
	RallyStd  float64 `csv:"rally_std"`
	RallyP50  float64 `csv:"rally_p50"`
	RallyP90  float64 `csv:"rally_p90"`
	RallyMax  float64 `csv:"rally_max"`

	PointDurationMean float64 `csv:"point_duration_mean"` // seconds
}

// Points returns the number of points scored during the window.
func (s WindowStats) Points() int {
	return s.LeftPoints + s.RightPoints
}

// ComputeRallyStats calculates mean, std, and percentiles from rally values.
// Percentiles use the empirical quantile, so they are always observed values.
func ComputeRallyStats(values []float64) (mean, std, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("left_score", s.LeftScore),
		slog.Int("right_score", s.RightScore),
		slog.Int("active_balls", s.ActiveBalls),
		slog.Int("paddle_hits", s.PaddleHits),
		slog.Int("wall_bounces", s.WallBounces),
		slog.Int("balls_out", s.BallsOut),
		slog.Int("left_points", s.LeftPoints),
		slog.Int("right_points", s.RightPoints),
		slog.Float64("rally_mean", s.RallyMean),
		slog.Float64("rally_std", s.RallyStd),
		slog.Float64("rally_p50", s.RallyP50),
		slog.Float64("rally_p90", s.RallyP90),
		slog.Float64("rally_max", s.RallyMax),
		slog.Float64("point_duration_mean", s.PointDurationMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"left_score", s.LeftScore,
		"right_score", s.RightScore,
		"active_balls", s.ActiveBalls,
		"paddle_hits", s.PaddleHits,
		"wall_bounces", s.WallBounces,
		"balls_out", s.BallsOut,
		"left_points", s.LeftPoints,
		"right_points", s.RightPoints,
		"rally_mean", s.RallyMean,
		"rally_p50", s.RallyP50,
		"rally_p90", s.RallyP90,
		"rally_max", s.RallyMax,
		"point_duration_mean", s.PointDurationMean,
	)
}
