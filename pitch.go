package pitch

import (
	"math"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"

	"github.com/vdobler/pitch/dim"
)

// tracer writes to trace with key 'pitch'
func tracer() tracing.Trace {
	return tracing.Select("pitch")
}

// Goal and spot drawing styles accepted by Options.
const (
	GoalLine   = "line"   // thick line segment on the goal line
	GoalBox    = "box"    // goal drawn as a box behind the goal line
	GoalCircle = "circle" // goal posts drawn as circles

	SpotCircle = "circle"
	SpotSquare = "square"
)

var validGoalTypes = dim.NewStringSetFrom([]string{GoalLine, GoalBox, GoalCircle})
var validSpotTypes = dim.NewStringSetFrom([]string{SpotCircle, SpotSquare})

const defaultSpotScale = 0.002

// Pad is the padding around the pitch in provider coordinate units.
// Negative values cut into the pitch. The sides name the pitch as seen
// on a horizontal drawing; on a vertical pitch Left and Right pad the
// drawing's x direction and Bottom and Top its y direction, so padding
// keeps its visual meaning.
type Pad struct {
	Left, Right, Bottom, Top float64
}

// Options configure a Pitch. The zero value draws a full horizontal
// statsbomb pitch with default padding and theme.
type Options struct {
	// Type is the provider name, one of dim.Valid. Empty means
	// statsbomb.
	Type string
	// Real pitch size in meters, required for the providers in
	// dim.SizeVaries and ignored otherwise.
	PitchLength float64
	PitchWidth  float64
	// Spec supplies explicit dimensions, for example built by hand or
	// loaded with dim.LoadSpecFile. It takes precedence over Type.
	Spec *dim.Spec

	Vertical bool // play direction runs up the drawing
	Half     bool // draw only the half with the right hand goal

	// Pad overrides the provider's default padding on all four sides.
	Pad *Pad

	GoalType string // GoalLine, GoalBox or GoalCircle, default GoalLine
	SpotType string // SpotCircle or SpotSquare, default SpotCircle
	// SpotScale is the diameter of the penalty and center spots
	// relative to the pitch length. Zero selects the default of 0.002,
	// negative values remove the spots.
	SpotScale float64

	CornerArcs  bool // draw the corner arcs
	Stripe      bool // draw mowed stripes across the pitch
	Positional  bool // draw the Juego de Posicion zone lines
	ShadeMiddle bool // shade the middle third of the pitch

	// Theme selects the colors and stroke widths, nil means
	// DefaultTheme.
	Theme *Theme
}

// ---------------------------------------------------------------------------
// Pitch

// Pitch draws a soccer pitch in a provider coordinate system and
// places charts on it. All methods take and produce coordinates in the
// provider system; the Pitch itself handles axis inversion and the
// vertical orientation.
//
// Create a Pitch with New. The fields and the option values must not
// change afterwards, the drawing geometry is derived once.
type Pitch struct {
	Spec  *dim.Spec
	Theme Theme

	chart

	goalType  string
	spotType  string
	spotScale float64

	cornerArcs  bool
	stripe      bool
	positional  bool
	shadeMiddle bool

	// circle and arc geometry in provider units
	rxCircle, ryCircle float64
	rxSpot, rySpot     float64
	rxCorner, ryCorner float64
	arcAngle           float64 // half angle of the penalty arcs in degrees

	userLength, userWidth float64
	std                   *dim.Standardizer
}

// New creates a pitch for the given options. It validates the provider
// name, the goal and spot types and that negative padding leaves part
// of the pitch visible.
func New(opt Options) (*Pitch, error) {
	d := opt.Spec
	if d == nil {
		typ := opt.Type
		if typ == "" {
			typ = dim.StatsBomb
		}
		var err error
		d, err = dim.New(typ, opt.PitchWidth, opt.PitchLength)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	p := &Pitch{
		Spec:        d,
		chart:       chart{vertical: opt.Vertical, half: opt.Half},
		goalType:    opt.GoalType,
		spotType:    opt.SpotType,
		spotScale:   opt.SpotScale,
		cornerArcs:  opt.CornerArcs,
		stripe:      opt.Stripe,
		positional:  opt.Positional,
		shadeMiddle: opt.ShadeMiddle,
		userLength:  opt.PitchLength,
		userWidth:   opt.PitchWidth,
	}
	if opt.Theme != nil {
		p.Theme = *opt.Theme
	} else {
		p.Theme = DefaultTheme
	}

	if p.goalType == "" {
		p.goalType = GoalLine
	}
	if !validGoalTypes.Contains(p.goalType) {
		return nil, errors.NotValidf("goal type %q, should be in %v",
			p.goalType, validGoalTypes.Elements())
	}
	if p.spotType == "" {
		p.spotType = SpotCircle
	}
	if !validSpotTypes.Contains(p.spotType) {
		return nil, errors.NotValidf("spot type %q, should be in %v",
			p.spotType, validSpotTypes.Elements())
	}
	switch {
	case p.spotScale == 0:
		p.spotScale = defaultSpotScale
	case p.spotScale < 0:
		p.spotScale = 0
	}

	pad := Pad{d.PadDefault, d.PadDefault, d.PadDefault, d.PadDefault}
	if opt.Pad != nil {
		pad = *opt.Pad
	}
	pad.Left *= d.PadMultiplier
	pad.Right *= d.PadMultiplier
	pad.Bottom *= d.PadMultiplier
	pad.Top *= d.PadMultiplier
	p.pad = pad

	f := specFrame(d)
	p.layout(f)
	if err := p.validatePad(f); err != nil {
		return nil, errors.Trace(err)
	}
	p.initCirclesAndArcs()
	tracer().Debugf("%s pitch, extent [%g, %g]x[%g, %g]",
		d.Type, p.extent[0], p.extent[1], p.extent[2], p.extent[3])
	return p, nil
}

// initCirclesAndArcs derives the radii of the center circle, the
// spots and the corner arcs and the half angle of the penalty arcs,
// all in provider units. On pitches whose units are not to scale the
// radii differ per axis so that the drawn shapes come out circular.
func (p *Pitch) initCirclesAndArcs() {
	d := p.Spec
	pl, pw := d.PitchLength, d.PitchWidth
	if pl <= 0 {
		pl = d.Length
	}
	if pw <= 0 {
		pw = d.Width
	}
	p.rxCircle = d.CircleDiameter / 2 * d.Length / pl
	p.ryCircle = d.CircleDiameter / 2 * d.Width / pw
	rSpot := p.spotScale * pl
	p.rxSpot = rSpot * d.Length / pl
	p.rySpot = rSpot * d.Width / pw
	p.rxCorner = d.CornerDiameter / 2 * d.Length / pl
	p.ryCorner = d.CornerDiameter / 2 * d.Width / pw

	if d.AspectEqual {
		p.arcAngle = d.Arc
		return
	}
	// The arc ends where the circle around the penalty spot meets the
	// front line of the penalty area.
	adj := d.PenaltyAreaLeft - d.PenaltyLeft
	inside := p.rxCircle*p.rxCircle - adj*adj
	if inside <= 0 || adj <= 0 {
		p.arcAngle = 0
		return
	}
	opp := p.ryCircle * math.Sqrt(inside) / p.rxCircle
	p.arcAngle = math.Atan2(opp, adj) / arithm.Deg2Rad
}

// ---------------------------------------------------------------------------
// Accessors

// Standardizer returns the converter from the pitch's coordinate
// system to the standardized metric pitch: 105x68 meters, or the real
// pitch size when one was given.
func (p *Pitch) Standardizer() (*dim.Standardizer, error) {
	if p.std != nil {
		return p.std, nil
	}
	var length, width float64 = dim.StandardLength, dim.StandardWidth
	if p.userLength > 0 {
		length = p.userLength
	}
	if p.userWidth > 0 {
		width = p.userWidth
	}
	to, err := dim.New(dim.Custom, width, length)
	if err != nil {
		return nil, errors.Trace(err)
	}
	std, err := dim.NewStandardizer(p.Spec, to)
	if err != nil {
		return nil, errors.Trace(err)
	}
	p.std = std
	return p.std, nil
}

// FlipSide mirrors coordinates to the other side of the pitch for the
// elements of flip that are true. Flipping maps a position to the spot
// a player in the same role on the other team would occupy.
func (p *Pitch) FlipSide(x, y []float64, flip []bool) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	if len(flip) != len(x) {
		return nil, nil, errors.NotValidf("%d flip values for %d coordinates", len(flip), len(x))
	}
	d := p.Spec
	fx := make([]float64, len(x))
	fy := make([]float64, len(y))
	for i := range x {
		fx[i], fy[i] = x[i], y[i]
		if !flip[i] {
			continue
		}
		if d.OriginCenter {
			fx[i], fy[i] = -x[i], -y[i]
		} else {
			fx[i], fy[i] = d.Length-x[i], d.Width-y[i]
		}
	}
	return fx, fy, nil
}
