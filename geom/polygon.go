package geom

import (
	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
)

// ---------------------------------------------------------------------------
// Polygon

// Polygon is a closed contour of vertices. The edge from the last
// vertex back to the first is implicit.
type Polygon []arithm.Pair

// Area returns the signed area of the polygon. It is positive when the
// vertices run counter-clockwise.
func (pg Polygon) Area() float64 {
	var s float64
	for i := range pg {
		j := (i + 1) % len(pg)
		s += pg[i].X()*pg[j].Y() - pg[j].X()*pg[i].Y()
	}
	return s / 2
}

// Contains reports whether p lies inside the polygon, using the
// even-odd rule. Points exactly on the boundary may fall either way.
func (pg Polygon) Contains(p arithm.Pair) bool {
	in := false
	for i, j := 0, len(pg)-1; i < len(pg); j, i = i, i+1 {
		a, b := pg[i], pg[j]
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) &&
			p.X() < a.X()+(b.X()-a.X())*(p.Y()-a.Y())/(b.Y()-a.Y()) {
			in = !in
		}
	}
	return in
}

// Swapped exchanges the x and y coordinate of every vertex. Polygons
// are drawn swapped on vertically oriented pitches.
func (pg Polygon) Swapped() Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = arithm.P(p.Y(), p.X())
	}
	return out
}

// XY returns the vertex coordinates as two slices.
func (pg Polygon) XY() (x, y []float64) {
	x = make([]float64, len(pg))
	y = make([]float64, len(pg))
	for i, p := range pg {
		x[i], y[i] = p.X(), p.Y()
	}
	return x, y
}

func (pg Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg))
	for i, p := range pg {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}

func fromContour(c polyclip.Contour) Polygon {
	pg := make(Polygon, len(c))
	for i, p := range c {
		pg[i] = arithm.P(p.X, p.Y)
	}
	return pg
}

// Clip intersects the subject polygon with the clip polygon. The
// result may be empty or consist of several pieces, for example when a
// concave subject straddles a clip corner.
func Clip(subject, clip Polygon) []Polygon {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}
	res := polyclip.Polygon{subject.contour()}.
		Construct(polyclip.INTERSECTION, polyclip.Polygon{clip.contour()})
	out := make([]Polygon, 0, len(res))
	for _, c := range res {
		if len(c) >= 3 {
			out = append(out, fromContour(c))
		}
	}
	return out
}

// ClipRect intersects the polygon with a rectangle, commonly the pitch
// extent.
func ClipRect(subject Polygon, r Rect) []Polygon {
	return Clip(subject, r.Polygon())
}
