package pitch

import (
	"image/color"
	"math"

	"github.com/npillmayer/arithm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The plotters in this file draw in drawing coordinates, after any
// swap for a vertical pitch. None of them report a data range: the
// axis ranges of a pitch plot are fixed by the pitch extent and may
// run high to low, which a data range would disturb.

// rangeless hides the data range of a stock plotter so that adding it
// keeps the pitch's fixed, possibly mirrored axis ranges intact.
type rangeless struct {
	plot.Plotter
}

func vgPoint(p arithm.Pair) vg.Point {
	return vg.Point{X: vg.Length(p.X()), Y: vg.Length(p.Y())}
}

// ---------------------------------------------------------------------------
// Lines and polygons

// polyLine strokes a connected sequence of points.
type polyLine struct {
	pts []arithm.Pair
	sty draw.LineStyle
}

var _ plot.Plotter = polyLine{}

func (l polyLine) Plot(c draw.Canvas, plt *plot.Plot) {
	if l.sty.Color == nil || l.sty.Width <= 0 {
		return
	}
	trX, trY := plt.Transforms(&c)
	ps := make([]vg.Point, len(l.pts))
	for i, pt := range l.pts {
		ps[i] = vg.Point{X: trX(pt.X()), Y: trY(pt.Y())}
	}
	c.StrokeLines(l.sty, c.ClipLinesXY(ps)...)
}

// polygonMark fills a closed polygon and optionally strokes its
// outline.
type polygonMark struct {
	pts  []arithm.Pair
	fill color.Color
	sty  draw.LineStyle
}

var _ plot.Plotter = polygonMark{}

func (m polygonMark) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	ps := make([]vg.Point, len(m.pts))
	for i, pt := range m.pts {
		ps[i] = vg.Point{X: trX(pt.X()), Y: trY(pt.Y())}
	}
	if m.fill != nil {
		c.FillPolygon(m.fill, c.ClipPolygonXY(ps))
	}
	if m.sty.Color != nil && m.sty.Width > 0 {
		ring := append(ps, ps[0])
		c.StrokeLines(m.sty, c.ClipLinesXY(ring)...)
	}
}

// rectPts returns the corners of an axis aligned rectangle. The edge
// ordering of the coordinates does not matter.
func rectPts(x0, x1, y0, y1 float64) []arithm.Pair {
	return []arithm.Pair{
		arithm.P(x0, y0), arithm.P(x1, y0), arithm.P(x1, y1), arithm.P(x0, y1),
	}
}

// ---------------------------------------------------------------------------
// Arrows

// arrowMarks draws straight filled arrows between pairs of points.
// The shaft width and with it the head size are in canvas units so
// that arrows stay legible at any data scale.
type arrowMarks struct {
	x, y   []float64
	ex, ey []float64

	width vg.Length // shaft width
	// head measurements in multiples of the shaft width
	headWidth      float64
	headLength     float64
	headAxisLength float64

	colors []color.Color // one for all arrows or one per arrow
}

var _ plot.Plotter = arrowMarks{}

func (a arrowMarks) fill(i int) color.Color {
	if len(a.colors) == 1 {
		return a.colors[0]
	}
	return a.colors[i]
}

func (a arrowMarks) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	w := float64(a.width)
	for i := range a.x {
		tail := arithm.P(float64(trX(a.x[i])), float64(trY(a.y[i])))
		tip := arithm.P(float64(trX(a.ex[i])), float64(trY(a.ey[i])))
		delta := tip.Shifted(tail.Scaled(-1))
		length := math.Hypot(delta.X(), delta.Y())
		if length == 0 {
			continue
		}
		theta := math.Atan2(delta.Y(), delta.X())
		hw := a.headWidth * w / 2
		hl := a.headLength * w
		hal := a.headAxisLength * w
		if hl > length {
			// arrow shorter than its head, shrink the head
			s := length / hl
			hw, hl, hal = hw*s, hl*s, hal*s
		}
		outline := []arithm.Pair{
			arithm.P(0, w/2),
			arithm.P(length-hal, w/2),
			arithm.P(length-hl, hw),
			arithm.P(length, 0),
			arithm.P(length-hl, -hw),
			arithm.P(length-hal, -w/2),
			arithm.P(0, -w/2),
		}
		ps := make([]vg.Point, len(outline))
		for j, pt := range outline {
			ps[j] = vgPoint(pt.Rotated(theta).Shifted(tail))
		}
		c.FillPolygon(a.fill(i), c.ClipPolygonXY(ps))
	}
}

// ---------------------------------------------------------------------------
// Quad mesh

// quadMesh fills the cells of a rectangular grid with colors from a
// palette. Unlike a midpoint heat map the cells may be unevenly
// sized, the edges give their exact bounds. NaN cells stay empty.
type quadMesh struct {
	vals     [][]float64 // vals[row][col]
	xEdges   []float64   // len columns+1, ascending or descending
	yEdges   []float64   // len rows+1
	pal      palette.Palette
	min, max float64
	edge     draw.LineStyle // cell outline, optional
}

var _ plot.Plotter = (*quadMesh)(nil)

func newQuadMesh(vals [][]float64, xEdges, yEdges []float64, pal palette.Palette) *quadMesh {
	min, max := math.Inf(1), math.Inf(-1)
	for _, row := range vals {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	return &quadMesh{vals: vals, xEdges: xEdges, yEdges: yEdges, pal: pal, min: min, max: max}
}

func (m *quadMesh) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	span := m.max - m.min
	for r := range m.vals {
		for col, v := range m.vals[r] {
			if math.IsNaN(v) {
				continue
			}
			t := 0.5
			if span > 0 {
				t = clamp01((v - m.min) / span)
			}
			ps := []vg.Point{
				{X: trX(m.xEdges[col]), Y: trY(m.yEdges[r])},
				{X: trX(m.xEdges[col+1]), Y: trY(m.yEdges[r])},
				{X: trX(m.xEdges[col+1]), Y: trY(m.yEdges[r+1])},
				{X: trX(m.xEdges[col]), Y: trY(m.yEdges[r+1])},
			}
			c.FillPolygon(paletteAt(m.pal, t), c.ClipPolygonXY(ps))
			if m.edge.Color != nil && m.edge.Width > 0 {
				ring := append(ps, ps[0])
				c.StrokeLines(m.edge, c.ClipLinesXY(ring)...)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Glyphs

// outlineGlyph draws a marker from a closed outline in unit
// coordinates, scaled to the glyph radius and rotated
// counterclockwise by theta.
type outlineGlyph struct {
	outline []arithm.Pair
	theta   float64 // radians
}

var _ draw.GlyphDrawer = outlineGlyph{}

func (g outlineGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := float64(sty.Radius)
	center := arithm.P(float64(pt.X), float64(pt.Y))
	var p vg.Path
	for i, op := range g.outline {
		v := vgPoint(op.Scaled(r).Rotated(g.theta).Shifted(center))
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

// arrowheadOutline points up, rotations are relative to that.
var arrowheadOutline = []arithm.Pair{
	arithm.P(0, 1), arithm.P(-1, -1), arithm.P(0, -0.4), arithm.P(1, -1),
}

// footballGlyph draws a soccer ball: a white ball with a pentagon and
// five seams in the glyph color.
type footballGlyph struct{}

var _ draw.GlyphDrawer = footballGlyph{}

func (footballGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	seam := draw.LineStyle{Color: sty.Color, Width: r / 10}

	var ball vg.Path
	ball.Move(vg.Point{X: pt.X + r, Y: pt.Y})
	ball.Arc(pt, r, 0, 2*math.Pi)
	ball.Close()
	c.SetColor(color.White)
	c.Fill(ball)
	c.SetLineStyle(seam)
	c.Stroke(ball)

	center := arithm.P(float64(pt.X), float64(pt.Y))
	var pentagon vg.Path
	for i := 0; i < 5; i++ {
		theta := math.Pi/2 + float64(i)*2*math.Pi/5
		dir := arithm.P(math.Cos(theta), math.Sin(theta))
		v := vgPoint(center.Shifted(dir.Scaled(0.45 * float64(r))))
		if i == 0 {
			pentagon.Move(v)
		} else {
			pentagon.Line(v)
		}
	}
	pentagon.Close()
	c.SetColor(sty.Color)
	c.Fill(pentagon)

	for i := 0; i < 5; i++ {
		theta := math.Pi/2 + math.Pi/5 + float64(i)*2*math.Pi/5
		dir := arithm.P(math.Cos(theta), math.Sin(theta))
		in := vgPoint(center.Shifted(dir.Scaled(0.5 * float64(r))))
		out := vgPoint(center.Shifted(dir.Scaled(0.9 * float64(r))))
		c.StrokeLine2(seam, in.X, in.Y, out.X, out.Y)
	}
}
