package systems

import (
	"math"

	"github.com/pthm-cable/pong/components"
)

// Outcome is the single collision response a ball gets in one tick.
type Outcome uint8

// Outcomes in priority order: the first one that applies wins.
const (
	OutcomeNone Outcome = iota
	OutcomeRightExit
	OutcomeLeftExit
	OutcomeWallBounce
	OutcomePaddleHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRightExit:
		return "right_exit"
	case OutcomeLeftExit:
		return "left_exit"
	case OutcomeWallBounce:
		return "wall_bounce"
	case OutcomePaddleHit:
		return "paddle_hit"
	default:
		return "none"
	}
}

// IsExit reports whether the outcome is a side-wall exit.
func (o Outcome) IsExit() bool {
	return o == OutcomeRightExit || o == OutcomeLeftExit
}

// Wall returns the side whose wall the ball left through.
// Only meaningful when IsExit is true.
func (o Outcome) Wall() components.Side {
	if o == OutcomeLeftExit {
		return components.SideLeft
	}
	return components.SideRight
}

// Scorer returns the side credited when a ball leaves through this outcome's
// wall: the opponent of the wall's owner.
func (o Outcome) Scorer() components.Side {
	return o.Wall().Opponent()
}

// Classify decides the outcome for a ball against the field walls and the
// paddles. Side exits win over top/bottom contact, which wins over paddle
// contact. Touching several paddles at once is still a single paddle hit.
func Classify(ball, field Rect, paddles []Rect) Outcome {
	if ball.Right() > field.Right() {
		return OutcomeRightExit
	}
	if ball.Left() < field.Left() {
		return OutcomeLeftExit
	}
	if ball.Top() < field.Top() || ball.Bottom() > field.Bottom() {
		return OutcomeWallBounce
	}
	for _, p := range paddles {
		if ball.Intersects(p) {
			return OutcomePaddleHit
		}
	}
	return OutcomeNone
}

// ReflectVertical bounces the ball off the top or bottom wall. The position is
// left as is, so a fast ball may sit past the wall for a tick.
func ReflectVertical(vel *components.Velocity) {
	vel.Y = -vel.Y
}

// StrikePaddle sends the ball back across the field. The horizontal speed grows
// by SpeedUp and flips direction. The vertical component gets a freshly sampled
// magnitude and keeps the ball's previous vertical direction (down when it was flat).
func StrikePaddle(vel *components.Velocity, p BallParams, rng Random) {
	dir := angleSign(vel.Y)
	strike := rng.Normal(p.StrikeSigma)

	vel.X += sign(vel.X) * p.SpeedUp
	vel.X = -vel.X
	// Abs is deliberate: a negative sample must not flip the vertical
	// direction, which always follows the ball's incoming direction.
	vel.Y = math.Abs(strike) * dir
}
