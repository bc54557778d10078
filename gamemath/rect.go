package gamemath

import "math"

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b share interior area. Boxes that only
// touch along an edge do not overlap, so an actor resting on a platform
// is not considered inside it.
func (a Rect) Overlaps(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Offset returns a copy of r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterDistance returns the euclidean distance between the centers of a and b.
func (a Rect) CenterDistance(b Rect) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(bx-ax, by-ay)
}
