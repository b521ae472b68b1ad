package systems

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "overlap", other: Rect{X: 15, Y: 15, W: 10, H: 10}, want: true},
		{name: "contained", other: Rect{X: 12, Y: 12, W: 2, H: 2}, want: true},
		{name: "touching right edge", other: Rect{X: 20, Y: 10, W: 5, H: 5}, want: false},
		{name: "touching bottom edge", other: Rect{X: 10, Y: 20, W: 5, H: 5}, want: false},
		{name: "apart", other: Rect{X: 100, Y: 100, W: 5, H: 5}, want: false},
		{name: "empty rect", other: Rect{X: 12, Y: 12, W: 0, H: 5}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.other.Intersects(base); got != tc.want {
				t.Errorf("symmetric Intersects = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCentered(t *testing.T) {
	r := Centered(512, 384, 18, 18)
	if r.X != 503 || r.Y != 375 {
		t.Errorf("origin = (%f, %f), want (503, 375)", r.X, r.Y)
	}
	if r.CenterX() != 512 || r.CenterY() != 384 {
		t.Errorf("center = (%f, %f), want (512, 384)", r.CenterX(), r.CenterY())
	}
}
