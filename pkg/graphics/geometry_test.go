package graphics

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Right != 40 || r.Bottom != 60 {
		t.Fatalf("expected right=40 bottom=60, got right=%.1f bottom=%.1f", r.Right, r.Bottom)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("expected 30x40, got %.1fx%.1f", r.Width(), r.Height())
	}
}

func TestRectContainsHalfOpenEdges(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50)

	cases := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},     // left/top edge is inside
		{99.9, 49.9, true},
		{100, 25, false}, // right edge is outside
		{50, 50, false},  // bottom edge is outside
		{-0.1, 25, false},
		{50, -0.1, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%.1f, %.1f) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestSizeClampMinWinsOverMax(t *testing.T) {
	s := Size{Width: 50, Height: 50}
	got := s.Clamp(Size{Width: 80, Height: 0}, Size{Width: 60, Height: 40})
	if got.Width != 80 {
		t.Fatalf("expected min to win when min > max, got width %.1f", got.Width)
	}
	if got.Height != 40 {
		t.Fatalf("expected height clamped to max 40, got %.1f", got.Height)
	}
}
