// Package geom provides the small set of planar-geometry primitives shared
// by the boundary extractor and the Matryoshka builder: points, distances
// and arclength resampling of closed polylines.
package geom

import "math"

// Point2 is a point in the plane.
type Point2 struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 {
	return Point2{p.X - q.X, p.Y - q.Y}
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 {
	return Point2{p.X + q.X, p.Y + q.Y}
}

// Scale returns p scaled by t.
func (p Point2) Scale(t float64) Point2 {
	return Point2{p.X * t, p.Y * t}
}

// Lerp returns the point t of the way from p to q (t=0 -> p, t=1 -> q).
func Lerp(p, q Point2, t float64) Point2 {
	return Point2{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Dist returns the euclidean distance between p and q.
func Dist(p, q Point2) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Less orders points lexicographically by (X, Y), used to break ties when
// picking a canonical starting point (e.g. the centre's tie-break rule in
// spec.md §3).
func Less(p, q Point2) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}
