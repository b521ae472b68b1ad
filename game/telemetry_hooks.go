package game

import (
	"log/slog"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/match"
	"github.com/pthm-cable/pong/telemetry"
)

// handleEvents feeds one step's events into the collector and point log.
func (g *Game) handleEvents(res match.StepResult) {
	for _, ev := range res.Events {
		switch ev.Type {
		case match.EventPaddleHit:
			g.collector.RecordPaddleHit()
		case match.EventWallBounce:
			g.collector.RecordWallBounce()
		case match.EventBallOut:
			g.collector.RecordBallOut()
		case match.EventPoint:
			g.recordPoint(ev)
		case match.EventMusicToggled:
			slog.Debug("music_toggled", "tick", ev.Tick, "on", ev.On)
		case match.EventDebugToggled:
			slog.Debug("debug_toggled", "tick", ev.Tick, "on", ev.On)
		}
	}
}

// recordPoint logs and stores a completed point.
func (g *Game) recordPoint(ev match.Event) {
	rec := g.collector.RecordPoint(
		ev.Tick,
		ev.Side,
		g.match.Score(components.SideLeft),
		g.match.Score(components.SideRight),
	)

	if g.pointCallback != nil {
		g.pointCallback(rec)
	}

	if g.logStats {
		rec.LogPoint()
	}

	if err := g.outputManager.WritePoint(rec); err != nil {
		slog.Error("failed to write point", "error", err)
	}
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	tick := g.match.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(
		tick,
		g.match.Score(components.SideLeft),
		g.match.Score(components.SideRight),
		g.match.ActiveBalls(),
	)
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Console output
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}

		if g.outputManager != nil {
			if err := g.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}

		if g.snapshotDir != "" {
			g.saveSnapshot(&bm)
		}
	}
}

// saveSnapshot writes the current match state to the snapshot directory.
func (g *Game) saveSnapshot(bookmark *telemetry.Bookmark) {
	snapshot := telemetry.NewSnapshot(g.match.Snapshot(), g.rngSeed, bookmark)

	path, err := telemetry.SaveSnapshot(snapshot, g.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "tick", snapshot.Tick)
}
