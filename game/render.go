package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/match"
	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/ui"
)

const controlsLegend = "W/S: left | Up/Down: right | Space: music | F1: debug"

// Draw renders the current frame.
func (g *Game) Draw() {
	s := g.match.Snapshot()
	theme := g.renderer.Theme

	rl.BeginDrawing()
	rl.ClearBackground(theme.Background)

	g.drawField(s)

	g.hud.Draw(ui.HUDData{
		LeftScore:   s.Left.Score,
		RightScore:  s.Right.Score,
		ScreenWidth: int32(s.Field.W),
	})

	if s.DebugVisible {
		g.drawDebug(s)
	}

	g.hud.DrawControls(int32(s.Field.H), controlsLegend)

	rl.EndDrawing()
}

// drawField draws the center line, paddles and active balls.
func (g *Game) drawField(s match.Snapshot) {
	theme := g.renderer.Theme

	cx := s.Field.CenterX()
	for y := 0.0; y < s.Field.H; y += 30 {
		g.renderer.DrawRect(systems.Rect{X: cx - 2, Y: y, W: 4, H: 15}, theme.CenterLine)
	}

	g.renderer.DrawRect(s.Left.Rect, theme.Foreground)
	g.renderer.DrawRect(s.Right.Rect, theme.Foreground)

	for _, b := range s.Balls {
		if !b.Active {
			continue
		}
		g.renderer.DrawRect(b.Rect, ui.ToColor(b.Color))
	}
}

// drawDebug draws the debug panel and, below it, frame timing.
func (g *Game) drawDebug(s match.Snapshot) {
	perf := g.perfCollector.Stats()
	lines := g.overlay.Lines(s, match.DebugInfo{
		FPS:     int(math.Round(perf.FPS)),
		Song:    g.audio.SongName(),
		Version: Version,
	})

	// The checkbox result becomes a music toggle on the next frame.
	if checked := g.debugPanel.Draw(lines, s.MusicOn); checked != s.MusicOn {
		g.musicClicked = true
	}

	g.perfPanel.SetPosition(20, g.debugPanel.Bottom(len(lines))+10)
	g.perfPanel.Draw(perf)
}
