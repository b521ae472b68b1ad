package match

import (
	"math"

	"github.com/pthm-cable/pong/components"
)

// Bot steers one paddle toward the nearest ball heading its way. Used to
// drive headless matches.
type Bot struct {
	Side     components.Side
	DeadZone float64
}

// Steer returns which keys the bot holds this tick. With no ball approaching
// it drifts back to the field's vertical center.
func (b Bot) Steer(s Snapshot) (up, down bool) {
	paddle := s.Paddle(b.Side)
	target := s.Field.CenterY()

	nearest := math.Inf(1)
	for _, ball := range s.Balls {
		if !ball.Active {
			continue
		}
		approaching := ball.VX < 0
		if b.Side == components.SideRight {
			approaching = ball.VX > 0
		}
		if !approaching {
			continue
		}
		dist := math.Abs(ball.Rect.CenterX() - paddle.Rect.CenterX())
		if dist < nearest {
			nearest = dist
			target = ball.Rect.CenterY()
		}
	}

	diff := target - paddle.Rect.CenterY()
	switch {
	case diff < -b.DeadZone:
		return true, false
	case diff > b.DeadZone:
		return false, true
	}
	return false, false
}

// BotInput builds the paddle part of an Input from two bots.
func BotInput(left, right Bot, s Snapshot) Input {
	var in Input
	in.LeftUp, in.LeftDown = left.Steer(s)
	in.RightUp, in.RightDown = right.Steer(s)
	return in
}
