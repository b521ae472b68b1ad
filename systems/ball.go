package systems

import (
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
)

// BallParams holds the tunables that shape ball flight.
type BallParams struct {
	BaseSpeed   float64 // |vx| right after a serve
	ServeSigma  float64 // std dev of vy on serve
	StrikeSigma float64 // std dev of vy after a paddle hit
	SpeedUp     float64 // |vx| gained per paddle hit
}

// BallParamsFrom extracts ball parameters from config.
func BallParamsFrom(cfg config.BallConfig) BallParams {
	return BallParams{
		BaseSpeed:   cfg.BaseSpeed,
		ServeSigma:  cfg.ServeSigma,
		StrikeSigma: cfg.StrikeSigma,
		SpeedUp:     cfg.SpeedUp,
	}
}

// ServeBall centers the ball on the field and launches it toward a random
// side at base speed with a normally distributed vertical component.
func ServeBall(pos *components.Position, vel *components.Velocity, size components.Size, ball *components.Ball, field Rect, p BallParams, rng Random) {
	pos.X = field.CenterX() - size.W/2
	pos.Y = field.CenterY() - size.H/2

	vel.X = p.BaseSpeed * rng.Direction()
	vel.Y = rng.Normal(p.ServeSigma)

	ball.Active = true
}

// MoveBall advances the ball by one Euler step.
func MoveBall(pos *components.Position, vel components.Velocity) {
	pos.X += vel.X
	pos.Y += vel.Y
}

// DeactivateBall parks the ball fully outside the field with zero velocity.
// It stays there until the next serve.
func DeactivateBall(pos *components.Position, vel *components.Velocity, size components.Size, ball *components.Ball) {
	pos.X = -size.W
	pos.Y = -size.H
	vel.X = 0
	vel.Y = 0
	ball.Active = false
}

// RandomColor picks an opaque color with each channel uniform in [0, 255].
func RandomColor(rng Random) components.RGB {
	return components.RGB{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
	}
}
