package match

import (
	"strings"
	"testing"

	"github.com/pthm-cable/pong/systems"
)

func TestDebugOverlayLines(t *testing.T) {
	m := newTestMatch(t, 3, &scriptedRandom{})
	overlay := NewDebugOverlay(1)

	lines := overlay.Lines(m.Snapshot(), DebugInfo{FPS: 60, Song: "night_ride.ogg", Version: "0.3.0a"})

	want := []string{
		"60",
		"Ball 0 at (x: 512 | y: 384) Speed: 5.00 | Angle: 0.00",
		"Left player: (x: 50 | y: 384)",
		"Right player: (x: 974 | y: 384)",
		"Background music: night_ride.ogg | is playing? true",
		"Active Balls: 3/3",
		"Version: 0.3.0a",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDebugOverlayRefreshInterval(t *testing.T) {
	overlay := NewDebugOverlay(4)
	s := Snapshot{
		Field: systems.Rect{W: 1024, H: 768},
		Balls: []BallView{{Rect: systems.Rect{X: 91, Y: 191, W: 18, H: 18}, VX: 3, VY: -2}},
	}

	// Coordinates stay at zero until the fourth frame.
	for frame := 1; frame <= 3; frame++ {
		line := overlay.Lines(s, DebugInfo{})[1]
		if !strings.HasPrefix(line, "Ball 0 at (x: 0 | y: 0)") {
			t.Errorf("frame %d: %q, want stale zero coordinates", frame, line)
		}
		if !strings.HasSuffix(line, "Speed: 3.00 | Angle: -2.00") {
			t.Errorf("frame %d: velocity not live in %q", frame, line)
		}
	}

	line := overlay.Lines(s, DebugInfo{})[1]
	if !strings.HasPrefix(line, "Ball 0 at (x: 100 | y: 200)") {
		t.Errorf("frame 4: %q, want refreshed coordinates", line)
	}

	s.Balls[0].Rect.X = 291
	line = overlay.Lines(s, DebugInfo{})[1]
	if !strings.HasPrefix(line, "Ball 0 at (x: 100 |") {
		t.Errorf("frame 5: %q, coordinates refreshed too early", line)
	}
}

func TestNewDebugOverlayClampsInterval(t *testing.T) {
	overlay := NewDebugOverlay(0)
	s := Snapshot{Balls: []BallView{{Rect: systems.Rect{X: 10, Y: 10, W: 2, H: 2}}}}
	line := overlay.Lines(s, DebugInfo{})[1]
	if !strings.HasPrefix(line, "Ball 0 at (x: 11 | y: 11)") {
		t.Errorf("got %q, want coordinates refreshed every frame", line)
	}
}
