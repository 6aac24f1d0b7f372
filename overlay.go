package pitch

import (
	"image/color"
	"math"
	"strconv"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/pitch/dim"
	"github.com/vdobler/pitch/geom"
	"github.com/vdobler/pitch/stat"
)

// rampColors maps values linearly onto palette positions, the lowest
// value to the first color. With a single distinct value everything
// gets the first color.
func rampColors(vals []float64, pal palette.Palette) []color.Color {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	span := max - min
	out := make([]color.Color, len(vals))
	for i, v := range vals {
		t := 0.0
		if span > 0 {
			t = clamp01((v - min) / span)
		}
		out[i] = paletteAt(pal, t)
	}
	return out
}

func specRect(d *dim.Spec) geom.Rect {
	xmin, xmax, ymin, ymax := d.Extent()
	return geom.NewRect(xmin, xmax, ymin, ymax)
}

// ---------------------------------------------------------------------------
// Arrows and flow

// ArrowOptions style the arrows of Pitch.Arrows.
type ArrowOptions struct {
	// Color fills all arrows, Colors fills them per arrow. Default is
	// a plain chart blue.
	Color  color.Color
	Colors []color.Color

	// Width is the shaft width, default 4pt. The head measurements
	// are in multiples of the shaft width and default to the usual
	// quiver proportions 3, 5 and 4.5.
	Width          vg.Length
	HeadWidth      float64
	HeadLength     float64
	HeadAxisLength float64
}

func (o ArrowOptions) marks(x, y, ex, ey []float64) arrowMarks {
	a := arrowMarks{
		x: x, y: y, ex: ex, ey: ey,
		width:          o.Width,
		headWidth:      o.HeadWidth,
		headLength:     o.HeadLength,
		headAxisLength: o.HeadAxisLength,
		colors:         o.Colors,
	}
	if a.width <= 0 {
		a.width = vg.Points(4)
	}
	if a.headWidth <= 0 {
		a.headWidth = 3
	}
	if a.headLength <= 0 {
		a.headLength = 5
	}
	if a.headAxisLength <= 0 {
		a.headAxisLength = 4.5
	}
	if a.colors == nil {
		c := o.Color
		if c == nil {
			c = defaultChartColor
		}
		a.colors = []color.Color{c}
	}
	return a
}

// Arrows draws arrows between pairs of pitch coordinates, for example
// passes from their start to their end location.
func (c *chart) Arrows(plt *plot.Plot, xs, ys, xe, ye []float64, opt ArrowOptions) error {
	if len(xs) != len(ys) || len(xs) != len(xe) || len(xs) != len(ye) {
		return errors.NotValidf("coordinate slices of lengths %d, %d, %d and %d",
			len(xs), len(ys), len(xe), len(ye))
	}
	if opt.Colors != nil && len(opt.Colors) != len(xs) {
		return errors.NotValidf("%d colors for %d arrows", len(opt.Colors), len(xs))
	}
	dxs, dys := c.displayXY(xs, ys)
	dxe, dye := c.displayXY(xe, ye)
	plt.Add(opt.marks(dxs, dys, dxe, dye))
	return nil
}

// FlowOptions configure Pitch.Flow.
type FlowOptions struct {
	// Grid of cells the movements are grouped into, default 5 by 4.
	BinsX, BinsY int

	// ArrowType sets how cell arrows are sized, one of stat.ArrowSame
	// (default), stat.ArrowScale or stat.ArrowAverage. ArrowLength is
	// the length in pitch units for the first two modes, default 5.
	// It is scaled by the provider's unit multiplier, tracab pitches
	// measure in cm.
	ArrowType   string
	ArrowLength float64

	// Color fills all arrows. When nil the arrows are colored by the
	// number of movements per cell using Cmap, default Viridis.
	Color color.Color
	Cmap  palette.Palette

	Width          vg.Length
	HeadWidth      float64
	HeadLength     float64
	HeadAxisLength float64
}

// Flow draws a flow map: movements are grouped into a grid of cells
// and each cell shows one arrow along the mean direction of its
// movements.
func (p *Pitch) Flow(plt *plot.Plot, xs, ys, xe, ye []float64, opt FlowOptions) error {
	nx, ny := opt.BinsX, opt.BinsY
	if nx == 0 && ny == 0 {
		nx, ny = 5, 4
	}
	arrowType := opt.ArrowType
	if arrowType == "" {
		arrowType = stat.ArrowSame
	}
	length := opt.ArrowLength
	if length == 0 {
		length = 5
	}
	length *= p.Spec.PadMultiplier

	fa, err := stat.Flow(xs, ys, xe, ye, p.Spec, nx, ny, arrowType, length)
	if err != nil {
		return errors.Trace(err)
	}

	ao := ArrowOptions{
		Color:          opt.Color,
		Width:          opt.Width,
		HeadWidth:      opt.HeadWidth,
		HeadLength:     opt.HeadLength,
		HeadAxisLength: opt.HeadAxisLength,
	}
	if opt.Color == nil {
		pal := opt.Cmap
		if pal == nil {
			pal = Viridis()
		}
		ao.Colors = rampColors(fa.Count, pal)
	}
	return errors.Trace(p.Arrows(plt, fa.X, fa.Y, fa.EndX, fa.EndY, ao))
}

// ---------------------------------------------------------------------------
// Heatmaps

// HeatmapOptions style the cell grids of Pitch.Heatmap.
type HeatmapOptions struct {
	// Cmap colors the cells by value, default Viridis.
	Cmap palette.Palette

	// Min and Max pin the value range mapped onto the palette. When
	// both are zero the range comes from the data.
	Min, Max float64

	// Edge strokes the cell borders when set.
	Edge      color.Color
	EdgeWidth vg.Length
}

// Heatmap draws a binned statistic as colored grid cells. Cells whose
// statistic is NaN stay empty.
func (c *chart) Heatmap(plt *plot.Plot, b *stat.BinnedStatistic, opt HeatmapOptions) error {
	if b == nil || len(b.Stat) == 0 {
		return errors.NotValidf("empty statistic")
	}
	pal := opt.Cmap
	if pal == nil {
		pal = Viridis()
	}
	mesh := c.mesh(b, pal)
	if opt.Min != 0 || opt.Max != 0 {
		mesh.min, mesh.max = opt.Min, opt.Max
	}
	if opt.Edge != nil {
		w := opt.EdgeWidth
		if w <= 0 {
			w = vg.Points(1)
		}
		mesh.edge = lineStyle(opt.Edge, w, 1, nil)
	}
	plt.Add(mesh)
	return nil
}

// HeatmapPositional draws the grids of a Juego de Posicion statistic
// with one shared value to color scale across all of them.
func (c *chart) HeatmapPositional(plt *plot.Plot, bs []*stat.BinnedStatistic, opt HeatmapOptions) error {
	if len(bs) == 0 {
		return errors.NotValidf("empty statistic")
	}
	min, max := opt.Min, opt.Max
	if min == 0 && max == 0 {
		min, max = math.Inf(1), math.Inf(-1)
		for _, b := range bs {
			for _, row := range b.Stat {
				for _, v := range row {
					if math.IsNaN(v) {
						continue
					}
					min = math.Min(min, v)
					max = math.Max(max, v)
				}
			}
		}
	}
	o := opt
	o.Min, o.Max = min, max
	for _, b := range bs {
		if err := c.Heatmap(plt, b, o); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// mesh builds the quad mesh of a statistic in drawing orientation.
func (c *chart) mesh(b *stat.BinnedStatistic, pal palette.Palette) *quadMesh {
	if c.vertical {
		return newQuadMesh(transpose(b.Stat), b.YEdges, b.XEdges, pal)
	}
	return newQuadMesh(b.Stat, b.XEdges, b.YEdges, pal)
}

func transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}
	t := make([][]float64, len(m[0]))
	for c := range t {
		t[c] = make([]float64, len(m))
		for r := range m {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// LabelOptions style the text of Pitch.LabelHeatmap.
type LabelOptions struct {
	// Format turns a cell value into its label, default "%g".
	Format func(v float64) string
	// ExcludeZeros drops labels for cells whose value is zero.
	ExcludeZeros bool
	// Offsets move the labels away from the cell centers, in pitch
	// units.
	XOffset, YOffset float64

	Color color.Color // default black
	Size  vg.Length   // font size, default 10pt
}

// LabelHeatmap writes the cell values of binned statistics at the
// cell centers. Cells outside the pitch and NaN cells get no label.
func (c *chart) LabelHeatmap(plt *plot.Plot, bs []*stat.BinnedStatistic, opt LabelOptions) error {
	format := opt.Format
	if format == nil {
		format = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	}
	col := opt.Color
	if col == nil {
		col = color.Black
	}
	size := opt.Size
	if size <= 0 {
		size = vg.Points(10)
	}
	fnt, err := vg.MakeFont(plotter.DefaultFont, size)
	if err != nil {
		return errors.Trace(err)
	}

	var xys plotter.XYs
	var texts []string
	for _, b := range bs {
		for r, row := range b.Stat {
			for j, v := range row {
				if math.IsNaN(v) {
					continue
				}
				if opt.ExcludeZeros && math.Abs(v) < 1e-8 {
					continue
				}
				cx, cy := b.CX[j], b.CY[r]
				if !c.rect.Contains(arithm.P(cx, cy)) {
					continue
				}
				dx, dy := c.toDisplay(cx+opt.XOffset, cy+opt.YOffset)
				xys = append(xys, plotter.XY{X: dx, Y: dy})
				texts = append(texts, format(v))
			}
		}
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return errors.Trace(err)
	}
	for i := range lbl.TextStyle {
		lbl.TextStyle[i] = draw.TextStyle{
			Color:  col,
			Font:   fnt,
			XAlign: draw.XCenter,
			YAlign: draw.YCenter,
		}
	}
	plt.Add(rangeless{lbl})
	return nil
}

// ---------------------------------------------------------------------------
// Hexbin

// HexbinOptions configure Pitch.Hexbin.
type HexbinOptions struct {
	// Hexagons across the drawing's x and y direction. Zero values
	// select the pitch default, 17 by 8 horizontal and 17 by 17
	// vertical.
	GridX, GridY int

	// MinCount hides cells with fewer points, default 1.
	MinCount int

	// Cmap colors the cells by count, default Viridis.
	Cmap palette.Palette

	// Edge strokes the hexagon borders when set.
	Edge      color.Color
	EdgeWidth vg.Length
}

// Hexbin bins locations into hexagonal cells colored by the number of
// points in them, cut off at the visible pitch boundary. Locations
// with a NaN coordinate are dropped.
func (c *chart) Hexbin(plt *plot.Plot, x, y []float64, opt HexbinOptions) error {
	if len(x) != len(y) {
		return errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	nx, ny := opt.GridX, opt.GridY
	if nx <= 0 {
		nx = c.hexGridX
	}
	if ny <= 0 {
		ny = c.hexGridY
	}
	mincnt := opt.MinCount
	if mincnt <= 0 {
		mincnt = 1
	}
	pal := opt.Cmap
	if pal == nil {
		pal = Viridis()
	}

	dx, dy := c.displayXY(x, y)
	grid, err := stat.Hexbin(dx, dy, c.hexExtent, nx, ny, mincnt)
	if err != nil {
		return errors.Trace(err)
	}
	counts := make([]float64, len(grid.Bins))
	for i, b := range grid.Bins {
		counts[i] = b.Count
	}
	colors := rampColors(counts, pal)

	var edge draw.LineStyle
	if opt.Edge != nil {
		w := opt.EdgeWidth
		if w <= 0 {
			w = vg.Points(0.5)
		}
		edge = lineStyle(opt.Edge, w, 1, nil)
	}
	visible := geom.NewRect(c.visible[0], c.visible[1], c.visible[2], c.visible[3])
	for i := range grid.Bins {
		for _, cell := range geom.ClipRect(grid.Hexagon(i), visible) {
			plt.Add(polygonMark{pts: cell, fill: colors[i], sty: edge})
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Polygons

// PolygonOptions style the filled shapes of Pitch.Polygon.
type PolygonOptions struct {
	Fill  color.Color
	Alpha float64 // 0 means opaque

	Edge      color.Color
	EdgeWidth vg.Length
}

// Polygon fills shapes given in pitch coordinates.
func (c *chart) Polygon(plt *plot.Plot, polys []geom.Polygon, opt PolygonOptions) {
	fill := opt.Fill
	if fill == nil {
		fill = defaultChartColor
	}
	if opt.Alpha > 0 {
		fill = SetAlpha(fill, opt.Alpha)
	}
	var edge draw.LineStyle
	if opt.Edge != nil {
		w := opt.EdgeWidth
		if w <= 0 {
			w = vg.Points(1)
		}
		edge = lineStyle(opt.Edge, w, 1, nil)
	}
	for _, pg := range polys {
		plt.Add(polygonMark{pts: c.displayPolygon(pg), fill: fill, sty: edge})
	}
}

// ConvexHull returns the convex hull around the locations, ready for
// Polygon.
func (c *chart) ConvexHull(x, y []float64) (geom.Polygon, error) {
	if len(x) != len(y) {
		return nil, errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	return geom.ConvexHull(x, y), nil
}

// Voronoi computes the Voronoi cell of every player, cut down to the
// pitch area, and splits the cells by team: the cells whose team
// value is true come first. Players outside the pitch are assumed to
// stand on its boundary. On specs with unequal axis scaling the cells
// are computed in standardized coordinates so that they look right in
// the drawing, and mapped back afterwards.
func (p *Pitch) Voronoi(x, y []float64, team []bool) (first, second []geom.Polygon, err error) {
	if len(x) != len(y) {
		return nil, nil, errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	if len(team) != len(x) {
		return nil, nil, errors.NotValidf("%d team values for %d players", len(team), len(x))
	}
	sx, sy := x, y
	var std *dim.Standardizer
	if p.Spec.AspectRatio() != 1 {
		std, err = p.Standardizer()
		if err != nil {
			return nil, nil, errors.Trace(err)
		}
		sx, sy = std.TransformAll(x, y)
	}
	ext := specRect(p.Spec)
	if std != nil {
		ext = specRect(std.To)
	}
	cells, err := geom.VoronoiCells(sx, sy, ext)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	if std != nil {
		for i, cell := range cells {
			cx, cy := cell.XY()
			rx, ry := std.ReverseAll(cx, cy)
			for j := range cell {
				cell[j] = arithm.P(rx[j], ry[j])
			}
			cells[i] = cell
		}
	}
	first, second = geom.SplitByTeam(cells, team)
	return first, second, nil
}

// GoalAngle fills the triangle between each location and the goal
// posts, the view a shooter has of the goal. The goal is "left" or
// "right".
func (p *Pitch) GoalAngle(plt *plot.Plot, x, y []float64, goal string, opt PolygonOptions) error {
	if len(x) != len(y) {
		return errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	d := p.Spec
	var post1, post2 arithm.Pair
	switch goal {
	case "left":
		post1 = arithm.P(d.Left, d.GoalBottom)
		post2 = arithm.P(d.Left, d.GoalTop)
	case "right":
		post1 = arithm.P(d.Right, d.GoalBottom)
		post2 = arithm.P(d.Right, d.GoalTop)
	default:
		return errors.NotValidf("goal %q, should be left or right", goal)
	}
	tris := make([]geom.Polygon, len(x))
	for i := range x {
		tris[i] = geom.ShotTriangle(x[i], y[i], post1, post2)
	}
	p.Polygon(plt, tris, opt)
	return nil
}

// ---------------------------------------------------------------------------
// Density

// KDEOptions configure Pitch.KDE.
type KDEOptions struct {
	// KDE sets grid size and bandwidths of the estimate. The zero
	// value uses the estimator defaults.
	KDE stat.KDE2D

	// Cmap colors the density, default Viridis.
	Cmap palette.Palette

	// Fill shades the density surface. Without it only the contour
	// lines show.
	Fill bool

	// Levels is the number of contour lines, default 10. Negative
	// draws none.
	Levels int

	// Thresh hides the density below this fraction of the peak,
	// default 0.05. Negative shows everything.
	Thresh float64
}

// KDE draws a smooth density estimate of the locations, clipped to
// the pitch.
func (c *chart) KDE(plt *plot.Plot, x, y []float64, opt KDEOptions) error {
	if len(x) != len(y) {
		return errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	pal := opt.Cmap
	if pal == nil {
		pal = Viridis()
	}
	levels := opt.Levels
	if levels == 0 {
		levels = 10
	}
	thresh := opt.Thresh
	if thresh == 0 {
		thresh = 0.05
	}

	dx, dy := c.displayXY(x, y)
	grid, err := opt.KDE.Grid(dx, dy, c.kdeClip)
	if err != nil {
		return errors.Trace(err)
	}

	if opt.Fill {
		peak := math.Inf(-1)
		for _, row := range grid.Density {
			for _, v := range row {
				peak = math.Max(peak, v)
			}
		}
		shade := make([][]float64, len(grid.Density))
		for r, row := range grid.Density {
			shade[r] = make([]float64, len(row))
			for c, v := range row {
				if v < thresh*peak {
					v = math.NaN()
				}
				shade[r][c] = v
			}
		}
		plt.Add(newQuadMesh(shade, gridEdges(grid.GridX), gridEdges(grid.GridY), pal))
	}
	if levels > 0 {
		min, max := densityRange(grid.Density)
		if max > min {
			heights := make([]float64, levels)
			for i := range heights {
				heights[i] = min + (max-min)*float64(i+1)/float64(levels+1)
			}
			plt.Add(rangeless{plotter.NewContour(grid, heights, pal)})
		}
	}
	return nil
}

// gridEdges turns the centers of a uniform grid into cell edges.
func gridEdges(centers []float64) []float64 {
	n := len(centers)
	edges := make([]float64, n+1)
	if n == 0 {
		return edges[:0]
	}
	if n == 1 {
		return []float64{centers[0] - 0.5, centers[0] + 0.5}
	}
	step := centers[1] - centers[0]
	for i := range edges {
		edges[i] = centers[0] + (float64(i)-0.5)*step
	}
	return edges
}

func densityRange(m [][]float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	return min, max
}

// ---------------------------------------------------------------------------
// Text

// TextOptions style the text of Pitch.Annotate.
type TextOptions struct {
	Color color.Color // default black
	Size  vg.Length   // font size, default 10pt
}

// Annotate writes text centered at a pitch coordinate.
func (c *chart) Annotate(plt *plot.Plot, text string, x, y float64, opt TextOptions) error {
	col := opt.Color
	if col == nil {
		col = color.Black
	}
	size := opt.Size
	if size <= 0 {
		size = vg.Points(10)
	}
	fnt, err := vg.MakeFont(plotter.DefaultFont, size)
	if err != nil {
		return errors.Trace(err)
	}
	dx, dy := c.toDisplay(x, y)
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: dx, Y: dy}},
		Labels: []string{text},
	})
	if err != nil {
		return errors.Trace(err)
	}
	lbl.TextStyle[0] = draw.TextStyle{
		Color:  col,
		Font:   fnt,
		XAlign: draw.XCenter,
		YAlign: draw.YCenter,
	}
	plt.Add(rangeless{lbl})
	return nil
}
