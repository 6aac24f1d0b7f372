package pitch

import (
	"math"
	"strconv"

	"github.com/juju/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/pitch/dim"
)

// FieldOptions configure a Field. The zero value draws a full
// horizontal statsbomb field with default padding and theme, without
// yard numbers.
type FieldOptions struct {
	// Type is the catalog name, empty means statsbomb.
	Type string

	Vertical bool // play direction runs up the drawing
	Half     bool // draw only the right hand half of the field

	// Pad overrides the default padding on all four sides.
	Pad *Pad

	// Numbers draws the yard numbers in the line color, NumberSize is
	// their font size, default 12pt.
	Numbers    bool
	NumberSize vg.Length

	// Theme selects the colors and stroke widths, nil means
	// DefaultTheme. Fields use the pitch background, line and goal
	// fields.
	Theme *Theme
}

// Field draws an American football field and places charts on it. The
// chart overlays shared with Pitch, Scatter, Lines, Arrows, Heatmap,
// Hexbin, KDE and the rest, work the same way on a Field.
type Field struct {
	Dim   *dim.Field
	Theme Theme

	chart

	numbers    bool
	numberSize vg.Length
}

// NewField creates an American football field for the given options.
func NewField(opt FieldOptions) (*Field, error) {
	if opt.Type != "" && opt.Type != dim.StatsBomb {
		return nil, errors.NotValidf("field type %q, should be statsbomb", opt.Type)
	}
	d := dim.Gridiron()

	f := &Field{
		Dim:        d,
		chart:      chart{vertical: opt.Vertical, half: opt.Half},
		numbers:    opt.Numbers,
		numberSize: opt.NumberSize,
	}
	if opt.Theme != nil {
		f.Theme = *opt.Theme
	} else {
		f.Theme = DefaultTheme
	}
	if f.numberSize <= 0 {
		f.numberSize = vg.Points(12)
	}

	pad := Pad{d.PadDefault, d.PadDefault, d.PadDefault, d.PadDefault}
	if opt.Pad != nil {
		pad = *opt.Pad
	}
	pad.Left *= d.PadMultiplier
	pad.Right *= d.PadMultiplier
	pad.Bottom *= d.PadMultiplier
	pad.Top *= d.PadMultiplier
	f.pad = pad

	fr := fieldFrame(d)
	f.layout(fr)
	if err := f.validatePad(fr); err != nil {
		return nil, errors.Trace(err)
	}
	tracer().Debugf("%s field, extent [%g, %g]x[%g, %g]",
		d.Type, f.extent[0], f.extent[1], f.extent[2], f.extent[3])
	return f, nil
}

// Draw creates a plot of the field with its markings. The axes are
// hidden and their ranges fixed to the field extent, charts go on top
// via the overlay methods.
func (f *Field) Draw() (*plot.Plot, error) {
	plt, err := f.newPlot(f.Theme.PitchColor)
	if err != nil {
		return nil, errors.Trace(err)
	}
	f.drawFieldMarkings(plt)
	f.drawGoalPosts(plt)
	if f.numbers {
		if err := f.drawNumbers(plt); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return plt, nil
}

func (f *Field) lineSty() draw.LineStyle {
	return lineStyle(f.Theme.LineColor, f.Theme.LineWidth, f.Theme.LineAlpha, f.Theme.LineDashes)
}

// toward moves a coordinate from an edge of the field in the
// direction of the center.
func toward(edge, center, by float64) float64 {
	if center < edge {
		return edge - by
	}
	return edge + by
}

func (f *Field) drawFieldMarkings(plt *plot.Plot) {
	d := f.Dim
	sty := f.lineSty()

	// The border and the fifty yard line are a single stroke,
	// separate rectangles would overlap and break dashed line styles.
	plt.Add(f.line(
		[]float64{d.CenterLength, d.CenterLength, d.Right, d.Right, d.Left, d.Left, d.CenterLength},
		[]float64{d.Bottom, d.Top, d.Top, d.Bottom, d.Bottom, d.Top, d.Top}, sty))

	// goal lines and the five yard lines, the fifty is already drawn
	for _, x := range []float64{d.GoalLineLeft, d.GoalLineRight} {
		plt.Add(f.line([]float64{x, x}, []float64{d.Bottom, d.Top}, sty))
	}
	for _, x := range d.YardLinesMajor {
		if x == d.CenterLength {
			continue
		}
		plt.Add(f.line([]float64{x, x}, []float64{d.Bottom, d.Top}, sty))
	}

	// one yard ticks at the sidelines and on the hash mark rows
	for _, x := range d.YardLinesMinor {
		plt.Add(f.line([]float64{x, x},
			[]float64{d.Bottom, toward(d.Bottom, d.CenterWidth, d.YardLineMinorSize)}, sty))
		plt.Add(f.line([]float64{x, x},
			[]float64{d.Top, toward(d.Top, d.CenterWidth, d.YardLineMinorSize)}, sty))
		for _, row := range []float64{d.HashMarkBottom, d.HashMarkTop} {
			plt.Add(f.line([]float64{x, x},
				[]float64{row - d.HashMarkSize/2, row + d.HashMarkSize/2}, sty))
		}
	}

	// conversion marks two yards out from the goal lines
	for _, x := range []float64{d.ConversionLeft, d.ConversionRight} {
		plt.Add(f.line([]float64{x, x},
			[]float64{d.CenterWidth - d.ConversionSize/2, d.CenterWidth + d.ConversionSize/2}, sty))
	}
}

func (f *Field) drawGoalPosts(plt *plot.Plot) {
	d := f.Dim
	sty := lineStyle(f.Theme.LineColor, 2*f.Theme.LineWidth, f.Theme.GoalAlpha, f.Theme.GoalDashes)
	plt.Add(f.line([]float64{d.Right, d.Right}, []float64{d.GoalTop, d.GoalBottom}, sty))
	plt.Add(f.line([]float64{d.Left, d.Left}, []float64{d.GoalTop, d.GoalBottom}, sty))
}

// drawNumbers writes the yard numbers in two rows that read toward
// the middle of the field.
func (f *Field) drawNumbers(plt *plot.Plot) error {
	d := f.Dim
	fnt, err := vg.MakeFont(plotter.DefaultFont, f.numberSize)
	if err != nil {
		return errors.Trace(err)
	}

	var xys plotter.XYs
	var texts []string
	var styles []draw.TextStyle
	for i, row := range []float64{d.YardNumberBottom, d.YardNumberTop} {
		bottomRow := i == 0
		st := draw.TextStyle{
			Color:  f.Theme.LineColor,
			Font:   fnt,
			XAlign: draw.XCenter,
			YAlign: draw.YCenter,
		}
		// anchor the text at the baseline so it extends toward midfield
		if f.vertical {
			if bottomRow {
				st.XAlign = draw.XRight
			} else {
				st.XAlign = draw.XLeft
			}
		} else {
			if bottomRow {
				st.YAlign = draw.YBottom
			} else {
				st.YAlign = draw.YTop
			}
		}
		for _, x := range d.NumberMarks {
			yards := math.Min(x-d.GoalLineLeft, d.GoalLineRight-x)
			dx, dy := f.toDisplay(x, row)
			xys = append(xys, plotter.XY{X: dx, Y: dy})
			texts = append(texts, strconv.FormatFloat(yards, 'f', -1, 64))
			styles = append(styles, st)
		}
	}

	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return errors.Trace(err)
	}
	copy(lbl.TextStyle, styles)
	plt.Add(rangeless{lbl})
	return nil
}
