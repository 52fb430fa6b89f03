// Package core provides fundamental types and utilities for the Mine Run game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is a box of screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns the cell box at (x, y) sized w by h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the box.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the box.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the box covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Vec2 is a point or displacement in world space (virtual pixels, y grows down).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// RectF is an axis-aligned box in world space.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a world rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r RectF) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ClosestPoint returns the point of r nearest to p.
func (r RectF) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(r.Left(), math.Min(p.X, r.Right())),
		Y: math.Max(r.Top(), math.Min(p.Y, r.Bottom())),
	}
}

// CircleRectOverlap is the closest-point test between a circle and a rect.
// It is strict: a circle exactly tangent to the rect does not overlap.
func CircleRectOverlap(center Vec2, radius float64, rect RectF) bool {
	d := center.Sub(rect.ClosestPoint(center))
	return d.LenSq() < radius*radius
}

// CircleCircleOverlap reports strict overlap of two circles.
func CircleCircleOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() < r*r
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
