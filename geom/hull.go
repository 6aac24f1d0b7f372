package geom

import (
	"sort"

	"github.com/npillmayer/arithm"
)

// ---------------------------------------------------------------------------
// Convex hull

// ConvexHull returns the smallest convex polygon around the points,
// in counter-clockwise order starting at the leftmost point. Interior
// points, duplicates and points on a hull edge are dropped. Fewer than
// three distinct points yield a degenerate polygon of just these
// points.
//
// ConvexHull panics when x and y differ in length.
func ConvexHull(x, y []float64) Polygon {
	if len(x) != len(y) {
		panic("geom: coordinate slices of different length")
	}
	pts := make([]arithm.Pair, len(x))
	for i := range x {
		pts[i] = arithm.P(x[i], y[i])
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X() != pts[j].X() {
			return pts[i].X() < pts[j].X()
		}
		return pts[i].Y() < pts[j].Y()
	})
	uniq := pts[:0]
	for _, p := range pts {
		if len(uniq) == 0 || p != uniq[len(uniq)-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq
	if len(pts) < 3 {
		return Polygon(pts)
	}

	lower := halfHull(pts)
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	upper := halfHull(pts)
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// halfHull builds one monotone chain of the hull. Non left turns are
// popped, which drops collinear points.
func halfHull(pts []arithm.Pair) Polygon {
	var h Polygon
	for _, p := range pts {
		for len(h) >= 2 && crossz(h[len(h)-2], h[len(h)-1], p) <= 0 {
			h = h[:len(h)-1]
		}
		h = append(h, p)
	}
	return h
}

// crossz is the z component of the cross product of b-a and c-a. It is
// positive when a, b, c turn counter-clockwise.
func crossz(a, b, c arithm.Pair) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}
