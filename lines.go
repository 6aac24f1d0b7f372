package pitch

import (
	"image/color"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// cometSegments is the number of pieces a comet or transparent line
// is split into for its width and opacity ramps.
const cometSegments = 100

// LineOptions style the lines of Pitch.Lines.
type LineOptions struct {
	// Color strokes all lines, Colors strokes them per line. Default
	// is a plain chart blue. Color and Cmap exclude each other.
	Color  color.Color
	Colors []color.Color

	// Width is the stroke width, Widths sets it per line. Default
	// 5pt.
	Width  vg.Length
	Widths []vg.Length

	// Comet widens the line from 1pt at the start to Width at the
	// end.
	Comet bool
	// Transparent fades the line in from AlphaStart at the start to
	// AlphaEnd at the end. Zero values of both alphas select the
	// defaults 0.01 and 1.
	Transparent bool
	AlphaStart  float64
	AlphaEnd    float64
	// Cmap colors the line with the palette running from start to
	// end.
	Cmap palette.Palette

	Dashes []vg.Length
}

// Lines draws lines between pairs of pitch coordinates, optionally as
// comets that grow in width, opacity or color along their length.
func (c *chart) Lines(plt *plot.Plot, xs, ys, xe, ye []float64, opt LineOptions) error {
	if len(xs) != len(ys) || len(xs) != len(xe) || len(xs) != len(ye) {
		return errors.NotValidf("coordinate slices of lengths %d, %d, %d and %d",
			len(xs), len(ys), len(xe), len(ye))
	}
	if opt.Colors != nil && len(opt.Colors) != len(xs) {
		return errors.NotValidf("%d colors for %d lines", len(opt.Colors), len(xs))
	}
	if opt.Widths != nil && len(opt.Widths) != len(xs) {
		return errors.NotValidf("%d widths for %d lines", len(opt.Widths), len(xs))
	}
	if opt.Color != nil && opt.Cmap != nil {
		return errors.NotValidf("both color and cmap given")
	}
	multi := opt.Comet || opt.Transparent || opt.Cmap != nil
	if multi && opt.Widths != nil {
		return errors.NotImplementedf("multiple widths with a comet or transparent line")
	}
	if multi && opt.Colors != nil {
		return errors.NotImplementedf("multiple colors with a comet or transparent line")
	}
	alphaStart, alphaEnd := opt.AlphaStart, opt.AlphaEnd
	if alphaStart == 0 && alphaEnd == 0 {
		alphaStart, alphaEnd = 0.01, 1
	}
	if alphaStart < 0 || alphaStart > 1 || alphaEnd < 0 || alphaEnd > 1 {
		return errors.NotValidf("alpha range %g to %g", alphaStart, alphaEnd)
	}
	if alphaStart > alphaEnd {
		tracer().Infof("lines fade out, alpha start %g > end %g", alphaStart, alphaEnd)
	}

	width := opt.Width
	if width <= 0 && opt.Widths == nil {
		width = vg.Points(5)
	}
	col := opt.Color
	if col == nil && opt.Cmap == nil {
		col = defaultChartColor
	}

	xs, ys = c.displayXY(xs, ys)
	xe, ye = c.displayXY(xe, ye)

	if !multi {
		for i := range xs {
			cl, w := col, width
			if opt.Colors != nil {
				cl = opt.Colors[i]
			}
			if opt.Widths != nil {
				w = opt.Widths[i]
			}
			pts := []arithm.Pair{arithm.P(xs[i], ys[i]), arithm.P(xe[i], ye[i])}
			plt.Add(polyLine{pts: pts, sty: lineStyle(cl, w, 1, opt.Dashes)})
		}
		return nil
	}

	pal := opt.Cmap
	if opt.Transparent {
		if pal != nil {
			pal = TransparentOf(pal, cometSegments, alphaStart, alphaEnd)
		} else {
			pal = Transparent(col, cometSegments, alphaStart, alphaEnd)
		}
	}
	widths := make([]vg.Length, cometSegments)
	colors := make([]color.Color, cometSegments)
	for i := range widths {
		t := float64(i) / float64(cometSegments-1)
		if opt.Comet {
			widths[i] = vg.Length(lerp(1, float64(width), t))
		} else {
			widths[i] = width
		}
		if pal != nil {
			colors[i] = paletteAt(pal, t)
		} else {
			colors[i] = col
		}
	}
	for i := range xs {
		plt.Add(cometLine{
			pts:    cometPoints(xs[i], ys[i], xe[i], ye[i]),
			widths: widths,
			colors: colors,
			dashes: opt.Dashes,
		})
	}
	return nil
}

// cometPoints splits a line into the points of the comet segments.
// The last point is duplicated, the final segment is degenerate on
// one side.
func cometPoints(x0, y0, x1, y1 float64) []arithm.Pair {
	pts := make([]arithm.Pair, cometSegments+2)
	for k := 0; k <= cometSegments; k++ {
		t := float64(k) / float64(cometSegments)
		pts[k] = arithm.P(lerp(x0, x1, t), lerp(y0, y1, t))
	}
	pts[cometSegments+1] = pts[cometSegments]
	return pts
}

// cometLine draws one line as overlapping three point segments whose
// widths and colors march along ramps. The overlap hides the joints
// between segments.
type cometLine struct {
	pts    []arithm.Pair // segment i spans pts[i] to pts[i+2]
	widths []vg.Length
	colors []color.Color
	dashes []vg.Length
}

var _ plot.Plotter = cometLine{}

func (l cometLine) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	ps := make([]vg.Point, len(l.pts))
	for i, pt := range l.pts {
		ps[i] = vg.Point{X: trX(pt.X()), Y: trY(pt.Y())}
	}
	for i := 0; i+2 < len(ps); i++ {
		sty := draw.LineStyle{Color: l.colors[i], Width: l.widths[i], Dashes: l.dashes}
		seg := []vg.Point{ps[i], ps[i+1], ps[i+2]}
		c.StrokeLines(sty, c.ClipLinesXY(seg)...)
	}
}
