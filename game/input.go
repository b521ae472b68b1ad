package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/match"
)

// pollInput reads the keyboard once per frame. Paddle keys are levels,
// toggles are edges.
func (g *Game) pollInput() match.Input {
	in := match.Input{
		LeftUp:      rl.IsKeyDown(rl.KeyW),
		LeftDown:    rl.IsKeyDown(rl.KeyS),
		RightUp:     rl.IsKeyDown(rl.KeyUp),
		RightDown:   rl.IsKeyDown(rl.KeyDown),
		Quit:        rl.WindowShouldClose(),
		ToggleMusic: rl.IsKeyPressed(rl.KeySpace) || g.musicClicked,
		ToggleDebug: g.cfg.Debug.Enabled && rl.IsKeyPressed(rl.KeyF1),
	}
	g.musicClicked = false
	return in
}
