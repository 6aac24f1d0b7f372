// Package dim defines the pitch coordinate systems used by sports data
// providers and converts coordinates between them.
//
// Every provider delivers positional data in its own coordinate space:
// different extents, different units, some with an inverted y-axis, some
// with the origin at the pitch center. A Spec captures one such space
// together with the positions of the pitch markings (six yard box,
// penalty area, penalty spot, goal, center line). The marking positions
// double as landmarks for the Standardizer, which maps coordinates from
// one provider space into another by piecewise linear interpolation
// between corresponding landmarks.
package dim

import (
	"math"
	"sort"

	"github.com/juju/errors"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/floats"
)

// tracer writes to trace with key 'pitch.dim'
func tracer() tracing.Trace {
	return tracing.Select("pitch.dim")
}

// Extent of the standardized pitch in meters. Coordinates standardized
// with a 'custom' 105x68 target live in [0,StandardLength]x[0,StandardWidth].
const (
	StandardLength = 105.
	StandardWidth  = 68.
)

// Spec describes the coordinate system of one data provider: the axis
// extents, the direction of the y-axis, and where the pitch markings
// sit in that system. All direct fields are in the provider's own
// coordinate units; PitchWidth and PitchLength are the real pitch size
// in meters (centimeters for tracab).
//
// The zero value is not usable. Use New or one of the provider
// constructors, or fill in the measurement fields and call Init.
type Spec struct {
	Type string // provider name, one of Valid

	PitchWidth  float64 // real world width of the pitch
	PitchLength float64 // real world length of the pitch

	// Marking measurements.
	GoalWidth           float64
	GoalLength          float64 // depth of the goal behind the goal line
	SixYardWidth        float64
	SixYardLength       float64
	PenaltyAreaWidth    float64
	PenaltyAreaLength   float64
	PenaltySpotDistance float64
	CircleDiameter      float64
	CornerDiameter      float64
	Arc                 float64 // penalty arc angle in degrees, 0 if the arc is not drawn

	InvertY      bool // y-axis increases downwards
	OriginCenter bool // origin at the pitch center
	AspectEqual  bool // coordinate units have equal scale on both axes

	PadDefault    float64 // default padding around the pitch
	PadMultiplier float64 // scales user supplied padding (tracab works in cm)

	// Axis extents and marking positions in provider coordinates.
	Left, Right   float64
	Bottom, Top   float64
	Width, Length float64 // extent spans: |right-left| and |top-bottom|
	Aspect        float64 // width units per length unit when AspectEqual is false

	GoalBottom, GoalTop               float64
	SixYardLeft, SixYardRight         float64
	SixYardBottom, SixYardTop         float64
	PenaltyLeft, PenaltyRight         float64
	PenaltyAreaLeft, PenaltyAreaRight float64
	PenaltyAreaBottom, PenaltyAreaTop float64
	CenterWidth, CenterLength         float64

	// Derived by setup.
	xMarkings      []float64
	yMarkings      []float64
	positionalX    []float64
	positionalY    []float64
	stripes        []float64
	positionLineX  []float64
	positionLineY5 []float64
	positionLineY4 []float64
}

// setup computes the landmark arrays, the Juego de Posicion grid, the
// stripe locations and the player position lines from the marking
// positions.
func (d *Spec) setup() {
	d.xMarkings = []float64{d.Left, d.SixYardLeft, d.PenaltyLeft,
		d.PenaltyAreaLeft, d.CenterLength, d.PenaltyAreaRight,
		d.PenaltyRight, d.SixYardRight, d.Right}

	d.yMarkings = []float64{d.Bottom, d.PenaltyAreaBottom, d.SixYardBottom,
		d.GoalBottom, d.GoalTop, d.SixYardTop, d.PenaltyAreaTop, d.Top}
	if d.InvertY {
		// The marking positions are symmetric around the center line,
		// so the sorted values equal the positions after flipping the
		// axis. Sorting keeps the landmark arrays ascending.
		sort.Float64s(d.yMarkings)
	}

	d.positionalX = []float64{d.Left, d.PenaltyAreaLeft,
		d.PenaltyAreaLeft + (d.CenterLength-d.PenaltyAreaLeft)/2,
		d.CenterLength,
		d.CenterLength + (d.PenaltyAreaRight-d.CenterLength)/2,
		d.PenaltyAreaRight, d.Right}

	// The goal posts (indices 3 and 4) are not positional zone edges.
	y := d.yMarkings
	d.positionalY = []float64{y[0], y[1], y[2], y[5], y[6], y[7]}

	stripePenArea := (d.PenaltyAreaLength - d.SixYardLength) / 2
	stripeOther := (d.Length - 2*d.SixYardLength - 6*stripePenArea) / 10
	widths := []float64{d.Left, d.SixYardLength,
		stripePenArea, stripePenArea, stripePenArea}
	for i := 0; i < 10; i++ {
		widths = append(widths, stripeOther)
	}
	widths = append(widths, stripePenArea, stripePenArea, stripePenArea,
		d.SixYardLength)
	d.stripes = make([]float64, len(widths))
	sum := 0.0
	for i, w := range widths {
		sum += w
		d.stripes[i] = sum
	}

	d.positionLineX = floats.Span(make([]float64, 6), d.PenaltyLeft, d.PenaltyRight)
	rows := floats.Span(make([]float64, 11), d.Bottom, d.Top)
	d.positionLineY5 = []float64{rows[1], rows[3], rows[5], rows[7], rows[9]}
	d.positionLineY4 = floats.Span(make([]float64, 9), d.Bottom, d.Top)[1:8]
}

// deriveBoxes computes the box marking positions for pitches with
// varying sizes where only the measurements are known. The pitch origin
// is (Left, Bottom) and Right/Top/CenterWidth/CenterLength and
// PenaltyLeft must already be set.
func (d *Spec) deriveBoxes() {
	d.PenaltyRight = d.Right - (d.PenaltyLeft - d.Left)
	d.PenaltyAreaLeft = d.Left + d.PenaltyAreaLength
	d.PenaltyAreaRight = d.Right - d.PenaltyAreaLength
	half := 0.5
	if d.InvertY {
		half = -0.5
	}
	d.PenaltyAreaBottom = d.CenterWidth - half*d.PenaltyAreaWidth
	d.PenaltyAreaTop = d.CenterWidth + half*d.PenaltyAreaWidth
	d.SixYardBottom = d.CenterWidth - half*d.SixYardWidth
	d.SixYardTop = d.CenterWidth + half*d.SixYardWidth
	d.GoalBottom = d.CenterWidth - half*d.GoalWidth
	d.GoalTop = d.CenterWidth + half*d.GoalWidth
	d.SixYardLeft = d.Left + d.SixYardLength
	d.SixYardRight = d.Right - d.SixYardLength
}

// Init validates a hand built Spec and derives the landmark arrays and
// zone grids from its fields. The measurement fields are required. If
// the goal marking positions are zero all box positions are derived
// from the measurements, assuming the goal to goal axis runs through
// the vertical center of the pitch.
func (d *Spec) Init() error {
	switch {
	case d.GoalWidth <= 0, d.SixYardWidth <= 0, d.SixYardLength <= 0,
		d.PenaltyAreaWidth <= 0, d.PenaltyAreaLength <= 0,
		d.PenaltySpotDistance <= 0:
		return errors.NotValidf("pitch measurements %+v", *d)
	}
	if d.OriginCenter {
		if d.PitchWidth <= 0 || d.PitchLength <= 0 {
			return errors.NotValidf("origin centered pitch without pitch size")
		}
		if d.GoalBottom == 0 && d.GoalTop == 0 {
			d.GoalBottom, d.GoalTop = -d.GoalWidth/2, d.GoalWidth/2
			d.SixYardBottom, d.SixYardTop = -d.SixYardWidth/2, d.SixYardWidth/2
			d.PenaltyAreaBottom = -d.PenaltyAreaWidth / 2
			d.PenaltyAreaTop = d.PenaltyAreaWidth / 2
		}
		d.finishCenter()
		return nil
	}
	if d.Right == d.Left || d.Top == d.Bottom {
		return errors.NotValidf("pitch extent [%g, %g]x[%g, %g]",
			d.Left, d.Right, d.Bottom, d.Top)
	}
	if d.Width == 0 {
		d.Width = math.Abs(d.Top - d.Bottom)
	}
	if d.Length == 0 {
		d.Length = math.Abs(d.Right - d.Left)
	}
	if d.CenterWidth == 0 {
		d.CenterWidth = (d.Bottom + d.Top) / 2
	}
	if d.CenterLength == 0 {
		d.CenterLength = (d.Left + d.Right) / 2
	}
	if d.GoalBottom == 0 && d.GoalTop == 0 {
		if d.PenaltyLeft == 0 {
			d.PenaltyLeft = d.Left + d.PenaltySpotDistance
		}
		d.deriveBoxes()
	}
	d.setup()
	return nil
}

// Extent returns the coordinate range of the pitch as xmin, xmax, ymin,
// ymax. For inverted pitches ymin is the top edge value.
func (d *Spec) Extent() (xmin, xmax, ymin, ymax float64) {
	if d.InvertY {
		return d.Left, d.Right, d.Top, d.Bottom
	}
	return d.Left, d.Right, d.Bottom, d.Top
}

// XMarkings returns the landmark x coordinates in ascending order:
// goal line, six yard box, penalty spot, penalty area, center line and
// their mirrors.
func (d *Spec) XMarkings() []float64 { return d.xMarkings }

// YMarkings returns the landmark y coordinates in ascending order:
// touchline, penalty area, six yard box, goal posts and their mirrors.
func (d *Spec) YMarkings() []float64 { return d.yMarkings }

// PositionalX returns the x edges of the Juego de Posicion zones.
func (d *Spec) PositionalX() []float64 { return d.positionalX }

// PositionalY returns the y edges of the Juego de Posicion zones.
func (d *Spec) PositionalY() []float64 { return d.positionalY }

// StripeLocations returns the x positions where the mowed stripes
// change, starting at the left goal line.
func (d *Spec) StripeLocations() []float64 { return d.stripes }

// PositionLineX returns the x coordinates of the six player lines used
// to lay out formations and pass networks, running from the left
// penalty spot to the right penalty spot.
func (d *Spec) PositionLineX() []float64 { return d.positionLineX }

// PositionLineY returns the y coordinates of the player slots across
// the pitch width for formation lines of five or four players. Lines
// of four get seven slots, the four player rows plus the in between
// slots used to stagger lines.
func (d *Spec) PositionLineY(perLine int) ([]float64, error) {
	switch perLine {
	case 5:
		return d.positionLineY5, nil
	case 4:
		return d.positionLineY4, nil
	}
	return nil, errors.NotValidf("%d players per line", perLine)
}

// AspectRatio returns the y/x unit scale used to draw the pitch to
// proportion. It is 1 for specs whose coordinates are to scale.
func (d *Spec) AspectRatio() float64 {
	if d.AspectEqual || d.Aspect == 0 {
		return 1
	}
	return d.Aspect
}

// Contains reports whether the point lies inside the pitch extent.
func (d *Spec) Contains(x, y float64) bool {
	xmin, xmax, ymin, ymax := d.Extent()
	return x >= xmin && x <= xmax && y >= ymin && y <= ymax
}
