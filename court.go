package pitch

import (
	"github.com/juju/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/pitch/dim"
)

// CourtOptions configure a Court. The zero value draws a full
// horizontal nba court with default padding and theme.
type CourtOptions struct {
	// Type is the catalog name, empty means nba.
	Type string

	Vertical bool // play direction runs up the drawing
	Half     bool // draw only the right hand half of the court

	// Pad overrides the default padding on all four sides.
	Pad *Pad

	// Theme selects the colors and stroke widths, nil means
	// DefaultTheme. Courts use the pitch background and line fields.
	Theme *Theme
}

// Court draws a basketball court and places charts on it. The chart
// overlays shared with Pitch, Scatter, Lines, Arrows, Heatmap, Hexbin,
// KDE and the rest, work the same way on a Court.
type Court struct {
	Dim   *dim.Court
	Theme Theme

	chart
}

// NewCourt creates a basketball court for the given options.
func NewCourt(opt CourtOptions) (*Court, error) {
	if opt.Type != "" && opt.Type != "nba" {
		return nil, errors.NotValidf("court type %q, should be nba", opt.Type)
	}
	d := dim.NBA()

	c := &Court{
		Dim:   d,
		chart: chart{vertical: opt.Vertical, half: opt.Half},
	}
	if opt.Theme != nil {
		c.Theme = *opt.Theme
	} else {
		c.Theme = DefaultTheme
	}

	pad := Pad{d.PadDefault, d.PadDefault, d.PadDefault, d.PadDefault}
	if opt.Pad != nil {
		pad = *opt.Pad
	}
	pad.Left *= d.PadMultiplier
	pad.Right *= d.PadMultiplier
	pad.Bottom *= d.PadMultiplier
	pad.Top *= d.PadMultiplier
	c.pad = pad

	f := courtFrame(d)
	c.layout(f)
	if err := c.validatePad(f); err != nil {
		return nil, errors.Trace(err)
	}
	tracer().Debugf("%s court, extent [%g, %g]x[%g, %g]",
		d.Type, c.extent[0], c.extent[1], c.extent[2], c.extent[3])
	return c, nil
}

// Draw creates a plot of the court with its markings. The axes are
// hidden and their ranges fixed to the court extent, charts go on top
// via the overlay methods.
func (c *Court) Draw() (*plot.Plot, error) {
	plt, err := c.newPlot(c.Theme.PitchColor)
	if err != nil {
		return nil, errors.Trace(err)
	}
	c.drawCourtMarkings(plt)
	return plt, nil
}

func (c *Court) lineSty() draw.LineStyle {
	return lineStyle(c.Theme.LineColor, c.Theme.LineWidth, c.Theme.LineAlpha, c.Theme.LineDashes)
}

func (c *Court) drawCourtMarkings(plt *plot.Plot) {
	d := c.Dim
	sty := c.lineSty()

	// The border and the center line are a single stroke, separate
	// rectangles would overlap and break dashed line styles.
	plt.Add(c.line(
		[]float64{d.CenterLength, d.CenterLength, d.Right, d.Right, d.Left, d.Left, d.CenterLength},
		[]float64{d.Bottom, d.Top, d.Top, d.Bottom, d.Bottom, d.Top, d.Top}, sty))

	// the keys
	kys := []float64{d.KeyBottom, d.KeyBottom, d.KeyTop, d.KeyTop}
	plt.Add(c.line([]float64{d.Right, d.KeyRight, d.KeyRight, d.Right}, kys, sty))
	plt.Add(c.line([]float64{d.Left, d.KeyLeft, d.KeyLeft, d.Left}, kys, sty))

	// the straight parts of the three point lines
	for _, y := range []float64{d.ThreePointBottom, d.ThreePointTop} {
		plt.Add(c.line([]float64{d.Left, d.ThreePointLeft}, []float64{y, y}, sty))
		plt.Add(c.line([]float64{d.Right, d.ThreePointRight}, []float64{y, y}, sty))
	}

	// hash marks at the sidelines and beside the substitution area
	for _, x := range []float64{d.HashSidelineLeft, d.HashSidelineRight} {
		plt.Add(c.line([]float64{x, x}, []float64{d.Bottom, d.HashSidelineBottom}, sty))
		plt.Add(c.line([]float64{x, x}, []float64{d.Top, d.HashSidelineTop}, sty))
	}
	for _, x := range []float64{d.HashSubstitutionLeft, d.HashSubstitutionRight} {
		plt.Add(c.line([]float64{x, x}, []float64{d.Top, d.HashSubstitutionTop}, sty))
	}

	c.drawCircles(plt, sty)
}

func (c *Court) drawCircles(plt *plot.Plot, sty draw.LineStyle) {
	d := c.Dim
	rxFree := d.CenterCircleDiameterLength / 2
	ryFree := d.CenterCircleDiameterWidth / 2

	// center circle and the free throw circles, whose halves inside
	// the keys are dashed
	plt.Add(c.ellipse(d.CenterLength, d.CenterWidth, rxFree, ryFree, sty))
	plt.Add(c.arc(d.KeyLeft, d.CenterWidth, rxFree, ryFree, 270, 90, sty))
	plt.Add(c.arc(d.KeyRight, d.CenterWidth, rxFree, ryFree, 90, 270, sty))
	dashed := sty
	dashed.Dashes = plotutil.Dashes(1)
	plt.Add(c.arc(d.KeyLeft, d.CenterWidth, rxFree, ryFree, 90, 270, dashed))
	plt.Add(c.arc(d.KeyRight, d.CenterWidth, rxFree, ryFree, 270, 90, dashed))

	// the curved parts of the three point lines
	plt.Add(c.arc(d.HoopLeft, d.CenterWidth,
		d.ThreePointDiameterLength/2, d.ThreePointDiameterWidth/2,
		d.Arc1Theta1, d.Arc1Theta2, sty))
	plt.Add(c.arc(d.HoopRight, d.CenterWidth,
		d.ThreePointDiameterLength/2, d.ThreePointDiameterWidth/2,
		d.Arc2Theta1, d.Arc2Theta2, sty))

	// restricted areas
	plt.Add(c.arc(d.HoopLeft, d.CenterWidth,
		d.RestrictedAreaDiameterLength/2, d.RestrictedAreaDiameterWidth/2,
		270, 90, sty))
	plt.Add(c.arc(d.HoopRight, d.CenterWidth,
		d.RestrictedAreaDiameterLength/2, d.RestrictedAreaDiameterWidth/2,
		90, 270, sty))

	// hoops
	plt.Add(c.ellipse(d.HoopLeft, d.CenterWidth,
		d.HoopDiameterLength/2, d.HoopDiameterWidth/2, sty))
	plt.Add(c.ellipse(d.HoopRight, d.CenterWidth,
		d.HoopDiameterLength/2, d.HoopDiameterWidth/2, sty))
}
