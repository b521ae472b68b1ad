package match

import (
	"testing"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/systems"
)

func botSnapshot(balls ...BallView) Snapshot {
	return Snapshot{
		Field: systems.Rect{W: 1024, H: 768},
		Balls: balls,
		Left:  PaddleView{Side: components.SideLeft, Rect: systems.Rect{X: 45, Y: 334, W: 10, H: 100}},
		Right: PaddleView{Side: components.SideRight, Rect: systems.Rect{X: 969, Y: 334, W: 10, H: 100}},
	}
}

func ballAt(cx, cy, vx float64, active bool) BallView {
	return BallView{Rect: systems.Rect{X: cx - 9, Y: cy - 9, W: 18, H: 18}, VX: vx, Active: active}
}

func TestBotSteer(t *testing.T) {
	tests := []struct {
		name     string
		side     components.Side
		balls    []BallView
		wantUp   bool
		wantDown bool
	}{
		{
			name:     "approaching ball above",
			side:     components.SideRight,
			balls:    []BallView{ballAt(800, 100, 5, true)},
			wantUp:   true,
			wantDown: false,
		},
		{
			name:     "approaching ball below",
			side:     components.SideLeft,
			balls:    []BallView{ballAt(200, 700, -5, true)},
			wantUp:   false,
			wantDown: true,
		},
		{
			name:     "within dead zone",
			side:     components.SideLeft,
			balls:    []BallView{ballAt(200, 390, -5, true)},
			wantUp:   false,
			wantDown: false,
		},
		{
			name:     "receding ball ignored",
			side:     components.SideRight,
			balls:    []BallView{ballAt(800, 100, -5, true)},
			wantUp:   false,
			wantDown: false,
		},
		{
			name:     "inactive ball ignored",
			side:     components.SideLeft,
			balls:    []BallView{ballAt(200, 700, -5, false)},
			wantUp:   false,
			wantDown: false,
		},
		{
			name: "nearest approaching ball wins",
			side: components.SideRight,
			balls: []BallView{
				ballAt(300, 700, 5, true),
				ballAt(900, 50, 5, true),
			},
			wantUp:   true,
			wantDown: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bot := Bot{Side: tc.side, DeadZone: 12}
			up, down := bot.Steer(botSnapshot(tc.balls...))
			if up != tc.wantUp || down != tc.wantDown {
				t.Errorf("Steer() = (%v, %v), want (%v, %v)", up, down, tc.wantUp, tc.wantDown)
			}
		})
	}
}

func TestBotReturnsToCenter(t *testing.T) {
	s := botSnapshot()
	s.Left.Rect.Y = 0

	up, down := Bot{Side: components.SideLeft, DeadZone: 12}.Steer(s)
	if up || !down {
		t.Errorf("Steer() = (%v, %v), want down toward center", up, down)
	}
}

func TestBotInput(t *testing.T) {
	s := botSnapshot(ballAt(800, 100, 5, true), ballAt(200, 700, -5, true))
	in := BotInput(
		Bot{Side: components.SideLeft, DeadZone: 12},
		Bot{Side: components.SideRight, DeadZone: 12},
		s,
	)

	if in.LeftUp || !in.LeftDown {
		t.Errorf("left = (%v, %v), want down", in.LeftUp, in.LeftDown)
	}
	if !in.RightUp || in.RightDown {
		t.Errorf("right = (%v, %v), want up", in.RightUp, in.RightDown)
	}
	if in.Quit || in.ToggleMusic || in.ToggleDebug {
		t.Error("bots should never press toggles")
	}
}
