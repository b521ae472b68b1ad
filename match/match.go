// Package match implements the Pong collision-and-scoring engine.
//
// A Match owns an ECS world holding two paddles and one or more balls. Each
// call to Step advances every ball by one tick in creation order, then moves
// the paddles. Collaborators read state through Snapshot and react to the
// events returned by Step; they never touch live components.
package match

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/systems"
)

// Match holds the complete state of one match.
type Match struct {
	world *ecs.World
	rng   systems.Random

	ballMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Size,
		components.Ball,
	]
	paddleMapper *ecs.Map3[
		components.Position,
		components.Size,
		components.Paddle,
	]

	paddles *systems.PaddleSystem

	field       systems.Rect
	ballParams  systems.BallParams
	paddleInset float64

	balls       []ecs.Entity // creation order is processing order
	left, right ecs.Entity

	activeCount int
	maxCount    int

	tick         int32
	musicOn      bool
	debugVisible bool

	events      []Event
	paddleRects []systems.Rect // scratch, reused every ball
}

// StepResult reports what happened during one tick.
type StepResult struct {
	Tick   int32
	Events []Event

	// Scored is true when a point was completed this tick; Scorer is the
	// credited side.
	Scored bool
	Scorer components.Side

	// Quit asks the loop to stop after this frame.
	Quit bool
}

// New creates a match from config. Balls get their colors and first serve from
// rng, and the paddles start centered on their inset.
func New(cfg *config.Config, rng systems.Random) *Match {
	world := ecs.NewWorld()

	m := &Match{
		world: world,
		rng:   rng,
		ballMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Size,
			components.Ball,
		](world),
		paddleMapper: ecs.NewMap3[
			components.Position,
			components.Size,
			components.Paddle,
		](world),
		paddles:     systems.NewPaddleSystem(world),
		field:       systems.Rect{X: 0, Y: 0, W: cfg.Derived.FieldWidth, H: cfg.Derived.FieldHeight},
		ballParams:  systems.BallParamsFrom(cfg.Ball),
		paddleInset: cfg.Paddle.WallInset,
		maxCount:    cfg.Match.BallCount,
		musicOn:     true,
	}

	paddleSize := components.Size{W: cfg.Paddle.Width, H: cfg.Paddle.Height}
	m.left = m.paddleMapper.NewEntity(
		&components.Position{},
		&paddleSize,
		&components.Paddle{Side: components.SideLeft, Speed: cfg.Paddle.Speed},
	)
	m.right = m.paddleMapper.NewEntity(
		&components.Position{},
		&paddleSize,
		&components.Paddle{Side: components.SideRight, Speed: cfg.Paddle.Speed},
	)

	ballSize := components.Size{W: cfg.Ball.Width, H: cfg.Ball.Height}
	m.balls = make([]ecs.Entity, 0, m.maxCount)
	for i := 0; i < m.maxCount; i++ {
		e := m.ballMapper.NewEntity(
			&components.Position{},
			&components.Velocity{},
			&ballSize,
			&components.Ball{Color: systems.RandomColor(rng)},
		)
		m.balls = append(m.balls, e)
	}

	m.reset()
	m.events = nil

	return m
}

// Step advances the match by one tick.
func (m *Match) Step(in Input) StepResult {
	m.events = nil
	res := StepResult{Tick: m.tick, Quit: in.Quit}

	if in.ToggleMusic {
		m.musicOn = !m.musicOn
		m.emit(Event{Type: EventMusicToggled, Ball: -1, On: m.musicOn})
	}
	if in.ToggleDebug {
		m.debugVisible = !m.debugVisible
		m.emit(Event{Type: EventDebugToggled, Ball: -1, On: m.debugVisible})
	}

	for i := range m.balls {
		if scorer, ok := m.stepBall(i); ok {
			res.Scored = true
			res.Scorer = scorer
		}
	}

	m.paddles.Update(in.paddleControls())

	m.tick++
	res.Events = m.events
	return res
}

// stepBall resolves exactly one collision outcome for ball i and moves it.
// Returns the scoring side when this ball completed a point.
func (m *Match) stepBall(i int) (components.Side, bool) {
	pos, vel, size, ball := m.ballMapper.Get(m.balls[i])
	if !ball.Active {
		return 0, false
	}

	// Paddles may have been re-placed by a reset earlier in this tick.
	m.paddleRects = m.paddles.Rects(m.paddleRects[:0])
	outcome := systems.Classify(systems.RectOf(*pos, *size), m.field, m.paddleRects)

	var scorer components.Side
	scored := false

	switch outcome {
	case systems.OutcomeRightExit, systems.OutcomeLeftExit:
		side := outcome.Scorer()
		m.activeCount--
		systems.DeactivateBall(pos, vel, *size, ball)
		m.emit(Event{Type: EventBallOut, Ball: i, Side: side})

		if m.activeCount == 0 {
			m.award(side)
			m.reset()
			scorer, scored = side, true
		}

	case systems.OutcomeWallBounce:
		systems.ReflectVertical(vel)
		m.emit(Event{Type: EventWallBounce, Ball: i})

	case systems.OutcomePaddleHit:
		systems.StrikePaddle(vel, m.ballParams, m.rng)
		m.emit(Event{Type: EventPaddleHit, Ball: i})
	}

	systems.MoveBall(pos, *vel)
	return scorer, scored
}

// award credits one point to side.
func (m *Match) award(side components.Side) {
	paddle := m.paddle(side)
	paddle.Score++
	m.emit(Event{Type: EventPoint, Ball: -1, Side: side})
}

// reset re-serves every ball from the center, re-places both paddles and
// restores the active ball count. Scores are kept.
func (m *Match) reset() {
	for _, e := range m.balls {
		pos, vel, size, ball := m.ballMapper.Get(e)
		systems.ServeBall(pos, vel, *size, ball, m.field, m.ballParams, m.rng)
	}
	m.paddles.Place(m.field, m.paddleInset)
	m.activeCount = m.maxCount
	m.emit(Event{Type: EventReset, Ball: -1})
}

func (m *Match) paddle(side components.Side) *components.Paddle {
	e := m.left
	if side == components.SideRight {
		e = m.right
	}
	_, _, paddle := m.paddleMapper.Get(e)
	return paddle
}

func (m *Match) emit(ev Event) {
	ev.Tick = m.tick
	m.events = append(m.events, ev)
}

// Score returns the current score of side.
func (m *Match) Score(side components.Side) int {
	return m.paddle(side).Score
}

// ActiveBalls returns how many balls are still in play this round.
func (m *Match) ActiveBalls() int {
	return m.activeCount
}

// MaxBalls returns the number of balls served each round.
func (m *Match) MaxBalls() int {
	return m.maxCount
}

// Tick returns the number of completed steps.
func (m *Match) Tick() int32 {
	return m.tick
}

// Field returns the play area.
func (m *Match) Field() systems.Rect {
	return m.field
}

// MusicOn reports whether background music should be playing.
func (m *Match) MusicOn() bool {
	return m.musicOn
}

// DebugVisible reports whether the debug overlay is shown.
func (m *Match) DebugVisible() bool {
	return m.debugVisible
}
