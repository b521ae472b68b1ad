package match

import "fmt"

// DebugInfo carries the overlay values that live outside the match.
type DebugInfo struct {
	FPS     int
	Song    string
	Version string
}

// DebugOverlay formats the debug text lines. Ball coordinates refresh only
// every refreshFrames calls so they stay readable; velocities are always live.
type DebugOverlay struct {
	refreshFrames int
	frame         int
	ballX, ballY  float64
}

// NewDebugOverlay creates an overlay refreshing ball coordinates every
// refreshFrames frames.
func NewDebugOverlay(refreshFrames int) *DebugOverlay {
	if refreshFrames < 1 {
		refreshFrames = 1
	}
	return &DebugOverlay{refreshFrames: refreshFrames}
}

// Lines returns the overlay text for one frame, top to bottom.
func (d *DebugOverlay) Lines(s Snapshot, info DebugInfo) []string {
	lines := make([]string, 0, 7)
	lines = append(lines, fmt.Sprintf("%d", info.FPS))

	if len(s.Balls) > 0 {
		b := s.Balls[0]
		d.frame++
		if d.frame >= d.refreshFrames {
			d.ballX, d.ballY = b.Rect.CenterX(), b.Rect.CenterY()
			d.frame = 0
		}
		lines = append(lines, fmt.Sprintf("Ball 0 at (x: %.0f | y: %.0f) Speed: %.2f | Angle: %.2f",
			d.ballX, d.ballY, b.VX, b.VY))
	}

	lines = append(lines,
		fmt.Sprintf("Left player: (x: %.0f | y: %.0f)", s.Left.Rect.CenterX(), s.Left.Rect.CenterY()),
		fmt.Sprintf("Right player: (x: %.0f | y: %.0f)", s.Right.Rect.CenterX(), s.Right.Rect.CenterY()),
		fmt.Sprintf("Background music: %s | is playing? %t", info.Song, s.MusicOn),
		fmt.Sprintf("Active Balls: %d/%d", s.ActiveBalls, s.MaxBalls),
		fmt.Sprintf("Version: %s", info.Version),
	)
	return lines
}
