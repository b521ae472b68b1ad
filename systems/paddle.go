package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pong/components"
)

// PaddleControls holds the four held-key states for one tick.
type PaddleControls struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

// PaddleSystem moves and places paddles.
type PaddleSystem struct {
	filter *ecs.Filter3[components.Position, components.Size, components.Paddle]
}

// NewPaddleSystem creates a new paddle system.
func NewPaddleSystem(w *ecs.World) *PaddleSystem {
	return &PaddleSystem{
		filter: ecs.NewFilter3[components.Position, components.Size, components.Paddle](w),
	}
}

// Update applies held keys. Up and down are applied independently, so holding
// both cancels out. Paddles are not kept inside the field.
func (s *PaddleSystem) Update(c PaddleControls) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, paddle := query.Get()

		up, down := c.LeftUp, c.LeftDown
		if paddle.Side == components.SideRight {
			up, down = c.RightUp, c.RightDown
		}

		if up {
			pos.Y -= paddle.Speed
		}
		if down {
			pos.Y += paddle.Speed
		}
	}
}

// Place puts each paddle's center inset from its wall and vertically centered.
func (s *PaddleSystem) Place(field Rect, inset float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, size, paddle := query.Get()

		cx := field.Left() + inset
		if paddle.Side == components.SideRight {
			cx = field.Right() - inset
		}
		r := Centered(cx, field.CenterY(), size.W, size.H)
		pos.X = r.X
		pos.Y = r.Y
	}
}

// Rects appends the bounding box of every paddle to dst.
func (s *PaddleSystem) Rects(dst []Rect) []Rect {
	query := s.filter.Query()
	for query.Next() {
		pos, size, _ := query.Get()
		dst = append(dst, RectOf(*pos, *size))
	}
	return dst
}
