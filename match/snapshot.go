package match

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/systems"
)

// BallView is a read-only copy of one ball.
type BallView struct {
	Index  int
	Rect   systems.Rect
	VX, VY float64
	Color  components.RGB
	Active bool
}

// PaddleView is a read-only copy of one paddle.
type PaddleView struct {
	Side  components.Side
	Rect  systems.Rect
	Speed float64
	Score int
}

// Snapshot is everything the renderer and debug overlay need for one frame.
// It shares no memory with the match.
type Snapshot struct {
	Tick  int32
	Field systems.Rect

	Balls       []BallView
	Left, Right PaddleView

	ActiveBalls int
	MaxBalls    int

	MusicOn      bool
	DebugVisible bool
}

// Snapshot copies the current match state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         m.tick,
		Field:        m.field,
		Balls:        make([]BallView, len(m.balls)),
		Left:         m.paddleView(m.left),
		Right:        m.paddleView(m.right),
		ActiveBalls:  m.activeCount,
		MaxBalls:     m.maxCount,
		MusicOn:      m.musicOn,
		DebugVisible: m.debugVisible,
	}

	for i, e := range m.balls {
		pos, vel, size, ball := m.ballMapper.Get(e)
		s.Balls[i] = BallView{
			Index:  i,
			Rect:   systems.RectOf(*pos, *size),
			VX:     vel.X,
			VY:     vel.Y,
			Color:  ball.Color,
			Active: ball.Active,
		}
	}

	return s
}

func (m *Match) paddleView(e ecs.Entity) PaddleView {
	pos, size, paddle := m.paddleMapper.Get(e)
	return PaddleView{
		Side:  paddle.Side,
		Rect:  systems.RectOf(*pos, *size),
		Speed: paddle.Speed,
		Score: paddle.Score,
	}
}

// Paddle returns the view of the given side's paddle.
func (s Snapshot) Paddle(side components.Side) PaddleView {
	if side == components.SideLeft {
		return s.Left
	}
	return s.Right
}

// Restore puts the match into the state held by s: ball positions, velocities
// and activity, paddle positions and scores, and the tick counter. Ball
// colors and sizes, paddle speeds, the field and both toggles keep their
// current values. s must have one view per ball and at least one active ball.
func (m *Match) Restore(s Snapshot) error {
	if len(s.Balls) != len(m.balls) {
		return fmt.Errorf("snapshot has %d balls, match has %d", len(s.Balls), len(m.balls))
	}

	active := 0
	for _, b := range s.Balls {
		if b.Active {
			active++
		}
	}
	if active == 0 {
		return errors.New("snapshot has no active ball")
	}

	for i, e := range m.balls {
		b := s.Balls[i]
		pos, vel, _, ball := m.ballMapper.Get(e)
		pos.X, pos.Y = b.Rect.X, b.Rect.Y
		vel.X, vel.Y = b.VX, b.VY
		ball.Active = b.Active
	}

	for _, p := range []struct {
		e    ecs.Entity
		view PaddleView
	}{{m.left, s.Left}, {m.right, s.Right}} {
		pos, _, paddle := m.paddleMapper.Get(p.e)
		pos.X, pos.Y = p.view.Rect.X, p.view.Rect.Y
		paddle.Score = p.view.Score
	}

	m.activeCount = active
	m.tick = s.Tick
	return nil
}
