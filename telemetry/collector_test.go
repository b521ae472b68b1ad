package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(10, 0.5)
	if c.WindowDurationTicks() != 20 {
		t.Fatalf("WindowDurationTicks() = %d, want 20", c.WindowDurationTicks())
	}
	if c.ShouldFlush(19) {
		t.Error("ShouldFlush(19) = true before the window ended")
	}
	if !c.ShouldFlush(20) {
		t.Error("ShouldFlush(20) = false at the window end")
	}
}

func TestCollectorStartAt(t *testing.T) {
	c := NewCollector(10, 0.5)
	c.StartAt(4200)

	if c.ShouldFlush(4219) {
		t.Error("ShouldFlush(4219) = true before the resumed window ended")
	}
	if !c.ShouldFlush(4220) {
		t.Error("ShouldFlush(4220) = false at the resumed window end")
	}

	rec := c.RecordPoint(4210, components.SideLeft, 4, 9)
	if rec.DurationTicks != 10 {
		t.Errorf("DurationTicks = %d, want 10 since the resume", rec.DurationTicks)
	}
	if stats := c.Flush(4220, 4, 9, 1); stats.WindowStartTick != 4200 {
		t.Errorf("WindowStartTick = %d, want 4200", stats.WindowStartTick)
	}
}

func TestCollectorRecordPoint(t *testing.T) {
	c := NewCollector(10, 0.5)

	for i := 0; i < 4; i++ {
		c.RecordPaddleHit()
	}
	rec := c.RecordPoint(6, components.SideRight, 0, 1)

	want := PointRecord{
		Tick:          6,
		SimTimeSec:    3,
		Scorer:        "right",
		LeftScore:     0,
		RightScore:    1,
		RallyHits:     4,
		DurationTicks: 6,
	}
	if rec != want {
		t.Errorf("RecordPoint() = %+v, want %+v", rec, want)
	}

	// Rally counter restarts after a point.
	c.RecordPaddleHit()
	rec = c.RecordPoint(10, components.SideLeft, 1, 1)
	if rec.RallyHits != 1 || rec.DurationTicks != 4 {
		t.Errorf("second point = %+v, want 1 hit over 4 ticks", rec)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10, 0.5)

	c.RecordPaddleHit()
	c.RecordPaddleHit()
	c.RecordWallBounce()
	c.RecordBallOut()
	c.RecordPoint(4, components.SideLeft, 1, 0)

	for i := 0; i < 6; i++ {
		c.RecordPaddleHit()
	}
	c.RecordWallBounce()
	c.RecordBallOut()
	c.RecordPoint(12, components.SideLeft, 2, 0)

	c.RecordPaddleHit() // rally still open at flush

	stats := c.Flush(20, 2, 0, 1)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 20 {
		t.Errorf("window = [%d, %d], want [0, 20]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.SimTimeSec != 10 {
		t.Errorf("SimTimeSec = %v, want 10", stats.SimTimeSec)
	}
	if stats.PaddleHits != 9 || stats.WallBounces != 2 || stats.BallsOut != 2 {
		t.Errorf("counts = hits %d bounces %d out %d", stats.PaddleHits, stats.WallBounces, stats.BallsOut)
	}
	if stats.LeftPoints != 2 || stats.RightPoints != 0 || stats.Points() != 2 {
		t.Errorf("points = %d:%d", stats.LeftPoints, stats.RightPoints)
	}
	if stats.LeftScore != 2 || stats.ActiveBalls != 1 {
		t.Errorf("state = %+v", stats)
	}
	if math.Abs(stats.RallyMean-4) > 0.001 || stats.RallyMax != 6 {
		t.Errorf("rally mean/max = %v/%v, want 4/6", stats.RallyMean, stats.RallyMax)
	}
	// Durations 4 and 8 ticks at 0.5s
	if math.Abs(stats.PointDurationMean-3) > 0.001 {
		t.Errorf("PointDurationMean = %v, want 3", stats.PointDurationMean)
	}

	// Next window starts clean but keeps the open rally.
	next := c.Flush(40, 2, 0, 1)
	if next.WindowStartTick != 20 {
		t.Errorf("next window start = %d, want 20", next.WindowStartTick)
	}
	if next.PaddleHits != 0 || next.Points() != 0 || next.RallyMean != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	rec := c.RecordPoint(44, components.SideRight, 2, 1)
	if rec.RallyHits != 1 {
		t.Errorf("open rally hits = %d, want 1", rec.RallyHits)
	}
}
