package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		right, bottom int
		empty         bool
	}{
		{"regular", NewRect(5, 10, 20, 15), 25, 25, false},
		{"zero width", NewRect(3, 3, 0, 4), 3, 7, true},
		{"negative height", NewRect(0, 0, 2, -1), 2, -1, true},
		{"single cell", NewRect(7, 1, 1, 1), 8, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.r.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
			if got := tt.r.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{40, 40, 120, 40},
		{120, 40, 120, 120},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestVec2(t *testing.T) {
	a, b := Vec2{X: 3, Y: 4}, Vec2{X: 1, Y: -2}
	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq() = %v, want 25", got)
	}
}

func TestClosestPoint(t *testing.T) {
	r := NewRectF(10, 10, 20, 20)
	tests := []struct {
		name string
		p    Vec2
		want Vec2
	}{
		{"inside", Vec2{X: 15, Y: 25}, Vec2{X: 15, Y: 25}},
		{"left", Vec2{X: 0, Y: 20}, Vec2{X: 10, Y: 20}},
		{"below right", Vec2{X: 50, Y: 50}, Vec2{X: 30, Y: 30}},
		{"above", Vec2{X: 12, Y: -3}, Vec2{X: 12, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ClosestPoint(tt.p); got != tt.want {
				t.Errorf("ClosestPoint(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCircleRectOverlapStrict(t *testing.T) {
	rect := NewRectF(100, 100, 50, 50)

	tests := []struct {
		name   string
		center Vec2
		radius float64
		want   bool
	}{
		{"center inside", Vec2{X: 120, Y: 120}, 5, true},
		{"overlapping left edge", Vec2{X: 95, Y: 120}, 10, true},
		{"tangent left edge", Vec2{X: 90, Y: 120}, 10, false},
		{"tangent top edge", Vec2{X: 125, Y: 90}, 10, false},
		{"tangent corner", Vec2{X: 94, Y: 92}, 10, false},
		{"just inside corner", Vec2{X: 94.5, Y: 92.5}, 10, true},
		{"far away", Vec2{X: 0, Y: 0}, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleRectOverlap(tt.center, tt.radius, rect); got != tt.want {
				t.Errorf("CircleRectOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleCircleOverlap(t *testing.T) {
	tests := []struct {
		name string
		b    Vec2
		want bool
	}{
		{"concentric", Vec2{}, true},
		{"tangent", Vec2{X: 10}, false},
		{"overlapping", Vec2{X: 9}, true},
		{"apart", Vec2{X: 6, Y: 8.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleCircleOverlap(Vec2{}, 5, tt.b, 5); got != tt.want {
				t.Errorf("CircleCircleOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := NewRectF(10, 20, 30, 40)

	if r.Left() != 10 || r.Right() != 40 || r.Top() != 20 || r.Bottom() != 60 {
		t.Errorf("edges = (%v, %v, %v, %v)", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if c := r.Center(); c.X != 25 || c.Y != 40 {
		t.Errorf("Center() = %+v, want {25 40}", c)
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
