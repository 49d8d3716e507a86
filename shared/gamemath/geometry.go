package gamemath

import (
	"math"
	"math/rand"
)

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: math.Max(w, 0), H: math.Max(h, 0)}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether r and o share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return RectsOverlap(r.X, r.Y, r.W, r.H, o.X, o.Y, o.W, o.H)
}

// ContainsPoint reports whether (x, y) lies inside r, edges included.
func (r Rect) ContainsPoint(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// RandomPoint returns a uniformly distributed point inside r.
func (r Rect) RandomPoint(rng *rand.Rand) (float64, float64) {
	return r.X + rng.Float64()*r.W, r.Y + rng.Float64()*r.H
}

// RectsOverlap is the strict open-interval AABB test.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// PointInCircle reports whether (px, py) lies within radius r of (cx, cy).
func PointInCircle(px, py, cx, cy, r float64) bool {
	return DistanceSq(px, py, cx, cy) <= r*r
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	rr := r1 + r2
	return DistanceSq(x1, y1, x2, y2) < rr*rr
}

// CircleRectOverlap reports whether a circle intersects a rectangle.
func CircleRectOverlap(cx, cy, radius float64, r Rect) bool {
	nearestX := math.Max(r.X, math.Min(cx, r.Right()))
	nearestY := math.Max(r.Y, math.Min(cy, r.Bottom()))
	return DistanceSq(cx, cy, nearestX, nearestY) < radius*radius
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Distance returns the distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSq(x1, y1, x2, y2))
}

// Angle returns the angle in radians of the vector from (x1, y1) to (x2, y2).
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}
