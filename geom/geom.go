/*
Package geom provides the computational geometry behind pitch charts:
Voronoi cells of player positions, convex hulls, polygon clipping and
angle calculations for shots and movement vectors.

Vertices are arithm.Pair values, so results feed directly into the
affine transforms used when markers are rotated on the pitch.
*/
package geom

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pitch.geom'
func tracer() tracing.Trace {
	return tracing.Select("pitch.geom")
}

// ---------------------------------------------------------------------------
// Rect

// Rect is an axis aligned rectangle, typically the playing area of a
// pitch.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewRect constructs a Rect from two x and two y values given in any
// order. The argument order matches the extent accessors of the
// dimension specs.
func NewRect(xmin, xmax, ymin, ymax float64) Rect {
	if xmax < xmin {
		xmin, xmax = xmax, xmin
	}
	if ymax < ymin {
		ymin, ymax = ymax, ymin
	}
	return Rect{MinX: xmin, MaxX: xmax, MinY: ymin, MaxY: ymax}
}

// Width returns the x extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the y extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies inside the rectangle or on its
// boundary.
func (r Rect) Contains(p arithm.Pair) bool {
	return p.X() >= r.MinX && p.X() <= r.MaxX &&
		p.Y() >= r.MinY && p.Y() <= r.MaxY
}

// Clamp moves p to the nearest point inside the rectangle.
func (r Rect) Clamp(p arithm.Pair) arithm.Pair {
	x, y := p.X(), p.Y()
	if x < r.MinX {
		x = r.MinX
	} else if x > r.MaxX {
		x = r.MaxX
	}
	if y < r.MinY {
		y = r.MinY
	} else if y > r.MaxY {
		y = r.MaxY
	}
	return arithm.P(x, y)
}

// Polygon returns the rectangle outline in counter-clockwise order,
// starting at the lower left corner.
func (r Rect) Polygon() Polygon {
	return Polygon{
		arithm.P(r.MinX, r.MinY),
		arithm.P(r.MaxX, r.MinY),
		arithm.P(r.MaxX, r.MaxY),
		arithm.P(r.MinX, r.MaxY),
	}
}
