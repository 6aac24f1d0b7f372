package pitch

import (
	"image/color"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ScatterOptions style the markers of Pitch.Scatter.
type ScatterOptions struct {
	// Color fills all markers, Colors colors them per point. Default
	// is a plain chart blue.
	Color  color.Color
	Colors []color.Color

	// Size is the marker radius for all points, Sizes sets it per
	// point. Default 3pt.
	Size  vg.Length
	Sizes []vg.Length

	// Shape overrides the marker, default is a filled circle.
	Shape draw.GlyphDrawer

	// Rotation turns each marker clockwise by the given degrees,
	// zero facing the direction of play. One value per point. The
	// markers become arrowheads, Shape is ignored.
	Rotation []float64

	// Football draws the markers as soccer balls in Color.
	Football bool
}

// Scatter draws markers at the given pitch coordinates.
func (c *chart) Scatter(plt *plot.Plot, x, y []float64, opt ScatterOptions) error {
	if len(x) != len(y) {
		return errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	if opt.Rotation != nil && len(opt.Rotation) != len(x) {
		return errors.NotValidf("%d rotations for %d points", len(opt.Rotation), len(x))
	}
	if opt.Colors != nil && len(opt.Colors) != len(x) {
		return errors.NotValidf("%d colors for %d points", len(opt.Colors), len(x))
	}
	if opt.Sizes != nil && len(opt.Sizes) != len(x) {
		return errors.NotValidf("%d sizes for %d points", len(opt.Sizes), len(x))
	}

	dx, dy := c.displayXY(x, y)
	xys := make(plotter.XYs, len(dx))
	for i := range dx {
		xys[i].X, xys[i].Y = dx[i], dy[i]
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return errors.Trace(err)
	}

	fill := func(i int) color.Color {
		if opt.Colors != nil {
			return opt.Colors[i]
		}
		if opt.Color != nil {
			return opt.Color
		}
		if opt.Football {
			return color.Black
		}
		return defaultChartColor
	}
	radius := func(i int) vg.Length {
		if opt.Sizes != nil {
			return opt.Sizes[i]
		}
		if opt.Size > 0 {
			return opt.Size
		}
		return vg.Points(3)
	}
	shape := func(i int) draw.GlyphDrawer {
		switch {
		case opt.Football:
			return footballGlyph{}
		case opt.Rotation != nil:
			return outlineGlyph{outline: arrowheadOutline, theta: c.rotationTheta(opt.Rotation[i])}
		case opt.Shape != nil:
			return opt.Shape
		}
		return draw.CircleGlyph{}
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: fill(i), Radius: radius(i), Shape: shape(i)}
	}
	plt.Add(rangeless{sc})
	return nil
}

// rotationTheta converts a clockwise marker rotation in degrees, zero
// facing the direction of play, to the counterclockwise canvas angle
// of a marker that points up when unrotated.
func (c *chart) rotationTheta(degrees float64) float64 {
	ccw := -degrees
	if !c.vertical {
		ccw -= 90 // play runs to the right
	}
	return ccw * arithm.Deg2Rad
}
