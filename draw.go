package pitch

import (
	"image/color"
	"math"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/pitch/geom"
)

// Draw creates a plot of the pitch with its markings. The axes are
// hidden and their ranges fixed to the pitch extent, mirrored where
// the provider's coordinate system requires it. Charts go on top via
// the overlay methods, and saving with the proportions from FigSize
// keeps circles round.
func (p *Pitch) Draw() (*plot.Plot, error) {
	plt, err := p.newPlot(p.Theme.PitchColor)
	if err != nil {
		return nil, errors.Trace(err)
	}

	// low to high: stripes, shade, zone lines, markings and goals
	if p.stripe {
		p.drawStripes(plt)
	}
	if p.shadeMiddle {
		p.drawShadeMiddle(plt)
	}
	if p.positional {
		p.drawPositional(plt)
	}
	p.drawMarkings(plt)
	p.drawCirclesAndArcs(plt)
	p.drawSpots(plt)
	p.drawGoals(plt)
	return plt, nil
}

func (p *Pitch) lineSty() draw.LineStyle {
	return lineStyle(p.Theme.LineColor, p.Theme.LineWidth, p.Theme.LineAlpha, p.Theme.LineDashes)
}

// line builds a stroked polyline from pitch coordinates.
func (c *chart) line(xs, ys []float64, sty draw.LineStyle) polyLine {
	xs, ys = c.displayXY(xs, ys)
	pts := make([]arithm.Pair, len(xs))
	for i := range xs {
		pts[i] = arithm.P(xs[i], ys[i])
	}
	return polyLine{pts: pts, sty: sty}
}

// ellipse builds an ellipse outline from a center in pitch
// coordinates and per axis radii.
func (c *chart) ellipse(cx, cy, rx, ry float64, sty draw.LineStyle) polyLine {
	if c.vertical {
		cx, cy, rx, ry = cy, cx, ry, rx
	}
	return polyLine{pts: geom.ArcPoints(cx, cy, rx, ry, 0, 0, 128), sty: sty}
}

func (c *chart) ellipseFill(cx, cy, rx, ry float64, fill color.Color) polygonMark {
	if c.vertical {
		cx, cy, rx, ry = cy, cx, ry, rx
	}
	return polygonMark{pts: geom.ArcPoints(cx, cy, rx, ry, 0, 0, 128), fill: fill}
}

// arc builds an elliptical arc between two ray angles in degrees,
// counterclockwise from the pitch's x direction.
func (c *chart) arc(cx, cy, rx, ry, theta1, theta2 float64, sty draw.LineStyle) polyLine {
	if c.vertical {
		cx, cy, rx, ry = cy, cx, ry, rx
		theta1 += 90
		theta2 += 90
	}
	return polyLine{pts: geom.ArcPoints(cx, cy, rx, ry, theta1, theta2, 64), sty: sty}
}

// visiblePitchRect returns the visible part of the pitch in pitch
// coordinates with sorted bounds.
func (c *chart) visiblePitchRect() geom.Rect {
	if c.vertical {
		return geom.NewRect(c.visible[2], c.visible[3], c.visible[0], c.visible[1])
	}
	return geom.NewRect(c.visible[0], c.visible[1], c.visible[2], c.visible[3])
}

// drawStripes draws every other mowing band, clipped to the visible
// part of the pitch so that negative padding cuts them off with the
// grass.
func (p *Pitch) drawStripes(plt *plot.Plot) {
	fill := p.Theme.StripeColor
	if fill == nil {
		return
	}
	locs := p.Spec.StripeLocations()
	vis := p.visiblePitchRect()
	for i := 0; i+1 < len(locs); i += 2 {
		x0 := math.Max(locs[i], vis.MinX)
		x1 := math.Min(locs[i+1], vis.MaxX)
		if x0 >= x1 {
			continue
		}
		dx0, dy0 := p.toDisplay(x0, vis.MinY)
		dx1, dy1 := p.toDisplay(x1, vis.MaxY)
		plt.Add(polygonMark{pts: rectPts(dx0, dx1, dy0, dy1), fill: fill})
	}
}

func (p *Pitch) drawMarkings(plt *plot.Plot) {
	d := p.Spec
	sty := p.lineSty()
	// The border and the halfway line are a single stroke, separate
	// rectangles would overlap and break dashed line styles.
	plt.Add(p.line(
		[]float64{d.CenterLength, d.CenterLength, d.Right, d.Right, d.Left, d.Left, d.CenterLength},
		[]float64{d.Bottom, d.Top, d.Top, d.Bottom, d.Bottom, d.Top, d.Top}, sty))
	pys := []float64{d.PenaltyAreaBottom, d.PenaltyAreaBottom, d.PenaltyAreaTop, d.PenaltyAreaTop}
	plt.Add(p.line([]float64{d.Right, d.PenaltyAreaRight, d.PenaltyAreaRight, d.Right}, pys, sty))
	plt.Add(p.line([]float64{d.Left, d.PenaltyAreaLeft, d.PenaltyAreaLeft, d.Left}, pys, sty))
	sys := []float64{d.SixYardBottom, d.SixYardBottom, d.SixYardTop, d.SixYardTop}
	plt.Add(p.line([]float64{d.Right, d.SixYardRight, d.SixYardRight, d.Right}, sys, sty))
	plt.Add(p.line([]float64{d.Left, d.SixYardLeft, d.SixYardLeft, d.Left}, sys, sty))
}

func (p *Pitch) drawCirclesAndArcs(plt *plot.Plot) {
	d := p.Spec
	sty := p.lineSty()
	plt.Add(p.ellipse(d.CenterLength, d.CenterWidth, p.rxCircle, p.ryCircle, sty))
	if p.arcAngle > 0 {
		plt.Add(p.arc(d.PenaltyLeft, d.CenterWidth, p.rxCircle, p.ryCircle,
			-p.arcAngle, p.arcAngle, sty))
		plt.Add(p.arc(d.PenaltyRight, d.CenterWidth, p.rxCircle, p.ryCircle,
			180-p.arcAngle, 180+p.arcAngle, sty))
	}
	if p.cornerArcs {
		p.drawCornerArcs(plt, sty)
	}
}

func (p *Pitch) drawCornerArcs(plt *plot.Plot, sty draw.LineStyle) {
	d := p.Spec
	thetas := [4][2]float64{{270, 360}, {180, 270}, {90, 180}, {0, 90}}
	if d.InvertY {
		thetas = [4][2]float64{{0, 90}, {90, 180}, {180, 270}, {270, 360}}
	}
	if p.vertical {
		thetas[0], thetas[3] = thetas[3], thetas[0]
		thetas[1], thetas[2] = thetas[2], thetas[1]
	}
	corners := [4][2]float64{
		{d.Left, d.Top}, {d.Right, d.Top}, {d.Right, d.Bottom}, {d.Left, d.Bottom},
	}
	for i, corner := range corners {
		plt.Add(p.arc(corner[0], corner[1], p.rxCorner, p.ryCorner,
			thetas[i][0], thetas[i][1], sty))
	}
}

func (p *Pitch) drawSpots(plt *plot.Plot) {
	if p.spotScale <= 0 {
		return
	}
	d := p.Spec
	fill := SetAlpha(p.Theme.LineColor, p.Theme.LineAlpha)
	spots := [3][2]float64{
		{d.CenterLength, d.CenterWidth},
		{d.PenaltyLeft, d.CenterWidth},
		{d.PenaltyRight, d.CenterWidth},
	}
	for _, s := range spots {
		if p.spotType == SpotSquare {
			x, y := p.toDisplay(s[0], s[1])
			rx, ry := p.rxSpot, p.rySpot
			if p.vertical {
				rx, ry = ry, rx
			}
			plt.Add(polygonMark{pts: rectPts(x-rx, x+rx, y-ry, y+ry), fill: fill})
		} else {
			plt.Add(p.ellipseFill(s[0], s[1], p.rxSpot, p.rySpot, fill))
		}
	}
}

func (p *Pitch) drawGoals(plt *plot.Plot) {
	d := p.Spec
	switch p.goalType {
	case GoalBox:
		sty := lineStyle(p.Theme.LineColor, p.Theme.LineWidth, p.Theme.GoalAlpha, p.Theme.GoalDashes)
		ys := []float64{d.GoalBottom, d.GoalBottom, d.GoalTop, d.GoalTop}
		plt.Add(p.line(
			[]float64{d.Left, d.Left - d.GoalLength, d.Left - d.GoalLength, d.Left}, ys, sty))
		plt.Add(p.line(
			[]float64{d.Right, d.Right + d.GoalLength, d.Right + d.GoalLength, d.Right}, ys, sty))
	case GoalLine:
		sty := lineStyle(p.Theme.LineColor, 2*p.Theme.LineWidth, p.Theme.GoalAlpha, p.Theme.GoalDashes)
		plt.Add(p.line([]float64{d.Right, d.Right}, []float64{d.GoalTop, d.GoalBottom}, sty))
		plt.Add(p.line([]float64{d.Left, d.Left}, []float64{d.GoalTop, d.GoalBottom}, sty))
	case GoalCircle:
		fill := SetAlpha(p.Theme.LineColor, p.Theme.GoalAlpha)
		posts := [4][2]float64{
			{d.Right, d.GoalBottom}, {d.Right, d.GoalTop},
			{d.Left, d.GoalBottom}, {d.Left, d.GoalTop},
		}
		for _, post := range posts {
			plt.Add(p.ellipseFill(post[0], post[1], p.rxSpot, p.rySpot, fill))
		}
	}
}

// drawPositional draws the zone lines of Juego de Posicion.
func (p *Pitch) drawPositional(plt *plot.Plot) {
	d := p.Spec
	sty := lineStyle(p.Theme.PositionalColor, p.Theme.PositionalWidth,
		p.Theme.PositionalAlpha, p.Theme.PositionalDashes)
	px := d.PositionalX()
	py := d.PositionalY()
	for _, x := range []float64{px[1], px[5]} {
		plt.Add(p.line([]float64{x, x}, []float64{d.Bottom, d.Top}, sty))
	}
	// the lines beside the penalty areas stop at the area markings
	for _, x := range px[2:5] {
		plt.Add(p.line([]float64{x, x}, []float64{d.Bottom, d.PenaltyAreaBottom}, sty))
		plt.Add(p.line([]float64{x, x}, []float64{d.Top, d.PenaltyAreaTop}, sty))
	}
	plt.Add(p.line([]float64{d.Left, d.Right}, []float64{py[1], py[1]}, sty))
	plt.Add(p.line([]float64{d.PenaltyAreaLeft, d.PenaltyAreaRight}, []float64{py[2], py[2]}, sty))
	plt.Add(p.line([]float64{d.PenaltyAreaLeft, d.PenaltyAreaRight}, []float64{py[3], py[3]}, sty))
	plt.Add(p.line([]float64{d.Left, d.Right}, []float64{py[4], py[4]}, sty))
}

func (p *Pitch) drawShadeMiddle(plt *plot.Plot) {
	d := p.Spec
	px := d.PositionalX()
	x0, y0 := p.toDisplay(px[2], d.Bottom)
	x1, y1 := p.toDisplay(px[4], d.Top)
	fill := SetAlpha(p.Theme.ShadeColor, p.Theme.ShadeAlpha)
	plt.Add(polygonMark{pts: rectPts(x0, x1, y0, y1), fill: fill})
}
