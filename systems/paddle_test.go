package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pong/components"
)

func newPaddleWorld(t *testing.T) (*ecs.World, *PaddleSystem, ecs.Entity, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	mapper := ecs.NewMap3[components.Position, components.Size, components.Paddle](w)

	size := components.Size{W: 10, H: 100}
	left := mapper.NewEntity(&components.Position{}, &size, &components.Paddle{Side: components.SideLeft, Speed: 8})
	right := mapper.NewEntity(&components.Position{}, &size, &components.Paddle{Side: components.SideRight, Speed: 8})

	sys := NewPaddleSystem(w)
	sys.Place(testField, 50)
	return w, sys, left, right
}

func TestPaddlePlace(t *testing.T) {
	w, _, left, right := newPaddleWorld(t)
	posMap := ecs.NewMap[components.Position](w)

	lp := posMap.Get(left)
	if lp.X != 45 || lp.Y != 334 {
		t.Errorf("left paddle at (%f, %f), want (45, 334)", lp.X, lp.Y)
	}
	rp := posMap.Get(right)
	if rp.X != 969 || rp.Y != 334 {
		t.Errorf("right paddle at (%f, %f), want (969, 334)", rp.X, rp.Y)
	}
}

func TestPaddleUpdate(t *testing.T) {
	tests := []struct {
		name      string
		controls  PaddleControls
		wantLeft  float64
		wantRight float64
	}{
		{name: "idle", controls: PaddleControls{}, wantLeft: 334, wantRight: 334},
		{name: "left up", controls: PaddleControls{LeftUp: true}, wantLeft: 326, wantRight: 334},
		{name: "left down", controls: PaddleControls{LeftDown: true}, wantLeft: 342, wantRight: 334},
		{name: "right up", controls: PaddleControls{RightUp: true}, wantLeft: 334, wantRight: 326},
		{name: "right down", controls: PaddleControls{RightDown: true}, wantLeft: 334, wantRight: 342},
		{name: "both keys cancel", controls: PaddleControls{LeftUp: true, LeftDown: true}, wantLeft: 334, wantRight: 334},
		{
			name:      "all four",
			controls:  PaddleControls{LeftUp: true, LeftDown: true, RightUp: true, RightDown: true},
			wantLeft:  334,
			wantRight: 334,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, sys, left, right := newPaddleWorld(t)
			posMap := ecs.NewMap[components.Position](w)

			sys.Update(tc.controls)

			if got := posMap.Get(left).Y; got != tc.wantLeft {
				t.Errorf("left Y = %f, want %f", got, tc.wantLeft)
			}
			if got := posMap.Get(right).Y; got != tc.wantRight {
				t.Errorf("right Y = %f, want %f", got, tc.wantRight)
			}
			// Horizontal position never changes
			if posMap.Get(left).X != 45 || posMap.Get(right).X != 969 {
				t.Error("paddle X moved")
			}
		})
	}
}

func TestPaddleUnclamped(t *testing.T) {
	w, sys, left, _ := newPaddleWorld(t)
	posMap := ecs.NewMap[components.Position](w)

	for i := 0; i < 100; i++ {
		sys.Update(PaddleControls{LeftUp: true})
	}
	if got := posMap.Get(left).Y; got != 334-800 {
		t.Errorf("left Y = %f, want %f (paddles may leave the field)", got, float64(334-800))
	}
}

func TestPaddleRects(t *testing.T) {
	_, sys, _, _ := newPaddleWorld(t)
	rects := sys.Rects(nil)
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	for _, r := range rects {
		if r.W != 10 || r.H != 100 {
			t.Errorf("rect %+v has wrong size", r)
		}
	}
}
