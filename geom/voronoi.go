package geom

import (
	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
)

// ---------------------------------------------------------------------------
// Voronoi cells

// VoronoiCells computes the Voronoi cell of every site, cut down to
// the extent rectangle. Each cell is the intersection of the rectangle
// with the half planes closer to its site than to any other site, so
// the cells tile the rectangle without overlap. Sites outside the
// rectangle are clamped onto its edge first, they are assumed to stand
// on the pitch boundary. Coincident sites share one cell.
func VoronoiCells(x, y []float64, ext Rect) ([]Polygon, error) {
	if len(x) != len(y) {
		return nil, errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	sites := make([]arithm.Pair, len(x))
	for i := range x {
		sites[i] = ext.Clamp(arithm.P(x[i], y[i]))
	}
	cells := make([]Polygon, len(sites))
	for i, site := range sites {
		cell := ext.Polygon()
		for j, other := range sites {
			if j == i || other == site {
				continue
			}
			cell = bisect(cell, site, other)
			if len(cell) == 0 {
				break
			}
		}
		cells[i] = cell
	}
	tracer().Debugf("voronoi of %d sites in %.1fx%.1f", len(sites), ext.Width(), ext.Height())
	return cells, nil
}

// SplitByTeam separates Voronoi cells into the cells of the two teams.
// Cells whose team value is true form the first set.
func SplitByTeam(cells []Polygon, team []bool) (first, second []Polygon) {
	for i, c := range cells {
		if i < len(team) && team[i] {
			first = append(first, c)
		} else {
			second = append(second, c)
		}
	}
	return first, second
}

// bisect cuts the cell along the perpendicular bisector of a and b and
// keeps the part closer to a.
func bisect(cell Polygon, a, b arithm.Pair) Polygon {
	// f is negative on a's side of the bisector, zero on it.
	f := func(p arithm.Pair) float64 {
		return 2*(p.X()*(b.X()-a.X())+p.Y()*(b.Y()-a.Y())) -
			(b.X()*b.X() + b.Y()*b.Y() - a.X()*a.X() - a.Y()*a.Y())
	}
	var out Polygon
	for i := range cell {
		u := cell[i]
		v := cell[(i+1)%len(cell)]
		fu, fv := f(u), f(v)
		switch {
		case fu <= 0 && fv <= 0:
			out = append(out, v)
		case fu <= 0:
			out = append(out, cut(u, v, fu, fv))
		case fv <= 0:
			out = append(out, cut(u, v, fu, fv), v)
		}
	}
	return out
}

// cut interpolates the point on the segment from u to v where f
// crosses zero.
func cut(u, v arithm.Pair, fu, fv float64) arithm.Pair {
	t := fu / (fu - fv)
	return arithm.P(u.X()+t*(v.X()-u.X()), u.Y()+t*(v.Y()-u.Y()))
}
