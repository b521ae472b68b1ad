package telemetry

import "log/slog"

// PointRecord describes one completed point.
type PointRecord struct {
	Tick          int32   `csv:"tick"`
	SimTimeSec    float64 `csv:"sim_time"`
	Scorer        string  `csv:"scorer"`
	LeftScore     int     `csv:"left_score"`
	RightScore    int     `csv:"right_score"`
	RallyHits     int     `csv:"rally_hits"`     // paddle hits since the previous point
	DurationTicks int32   `csv:"duration_ticks"` // ticks since the previous point
}

// LogPoint logs the point using slog.
func (p PointRecord) LogPoint() {
	slog.Info("point",
		"tick", p.Tick,
		"scorer", p.Scorer,
		"left_score", p.LeftScore,
		"right_score", p.RightScore,
		"rally_hits", p.RallyHits,
		"duration_ticks", p.DurationTicks,
	)
}
