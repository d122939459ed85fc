package vmath

import "math"

// ParallelEpsilon is the absolute determinant threshold below which two lines
// are treated as parallel. Fixed, not relative: tuned for an 800x600 playfield
const ParallelEpsilon = 1e-3

// Segment is a finite line segment from Start to End
type Segment struct {
	Start, End Vec2
}

// Seg is shorthand for Segment{start, end}
func Seg(start, end Vec2) Segment {
	return Segment{Start: start, End: end}
}

// Direction returns End - Start
func (s Segment) Direction() Vec2 {
	return s.End.Sub(s.Start)
}

// Contains reports whether p, assumed to lie on the segment's line, projects
// between Start and End inclusive
// Bound is dot(dir, dir) instead of 1: same test scaled by |dir|², no division
func (s Segment) Contains(p Vec2) bool {
	dir := s.Direction()
	t := dir.Dot(p.Sub(s.Start))
	return t >= 0 && t <= dir.Dot(dir)
}

// Intersect returns the crossing point of two finite segments
// Near-parallel pairs (|det| < ParallelEpsilon) never intersect, collinear overlap included
func Intersect(a, b Segment) (Vec2, bool) {
	x1, y1 := a.Start.X, a.Start.Y
	x2, y2 := a.End.X, a.End.Y
	x3, y3 := b.Start.X, b.Start.Y
	x4, y4 := b.End.X, b.End.Y

	x12, y12 := x1-x2, y1-y2
	x34, y34 := x3-x4, y3-y4

	det := x12*y34 - y12*x34
	if math.Abs(det) < ParallelEpsilon {
		return Vec2{}, false
	}

	// Cramer's rule over the two infinite lines
	da := x1*y2 - y1*x2
	db := x3*y4 - y3*x4
	p := Vec2{
		X: (da*x34 - db*x12) / det,
		Y: (da*y34 - db*y12) / det,
	}

	if !a.Contains(p) || !b.Contains(p) {
		return Vec2{}, false
	}
	return p, true
}

// Intersects is Intersect without the point
func Intersects(a, b Segment) bool {
	_, ok := Intersect(a, b)
	return ok
}
