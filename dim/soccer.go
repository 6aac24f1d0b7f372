package dim

import (
	"math"

	"github.com/juju/errors"
)

func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}

// Provider names accepted by New.
const (
	StatsBomb      = "statsbomb"
	Tracab         = "tracab"
	Opta           = "opta"
	Wyscout        = "wyscout"
	UEFA           = "uefa"
	Metricasports  = "metricasports"
	Custom         = "custom"
	SkillCorner    = "skillcorner"
	SecondSpectrum = "secondspectrum"
	Impect         = "impect"
)

// Valid holds the supported provider names.
var Valid = NewStringSetFrom([]string{StatsBomb, Tracab, Opta, Wyscout,
	UEFA, Metricasports, Custom, SkillCorner, SecondSpectrum, Impect})

// SizeVaries holds the providers whose pitch markings depend on the
// real pitch size. New requires pitchWidth and pitchLength for them.
var SizeVaries = NewStringSetFrom([]string{Tracab, Metricasports, Custom,
	SkillCorner, SecondSpectrum})

// New creates the dimension spec for the given provider. pitchWidth and
// pitchLength are the real pitch size in meters; they are required for
// the providers in SizeVaries and ignored with a warning otherwise.
// Pass 0 for both when the provider has fixed dimensions.
func New(pitchType string, pitchWidth, pitchLength float64) (*Spec, error) {
	if !Valid.Contains(pitchType) {
		return nil, errors.NotValidf("pitch type %q, should be in %v", pitchType, Valid.Elements())
	}
	sized := pitchWidth != 0 || pitchLength != 0
	if SizeVaries.Contains(pitchType) {
		if pitchWidth == 0 || pitchLength == 0 {
			return nil, errors.NotValidf("pitch type %q without pitchWidth and pitchLength", pitchType)
		}
	} else if sized {
		tracer().Infof("pitch type %q has fixed dimensions, pitch size %gx%g ignored",
			pitchType, pitchLength, pitchWidth)
	}

	switch pitchType {
	case Opta:
		return optaDims(), nil
	case Wyscout:
		return wyscoutDims(), nil
	case UEFA:
		return uefaDims(), nil
	case StatsBomb:
		return statsbombDims(), nil
	case Metricasports:
		return metricasportsDims(pitchWidth, pitchLength), nil
	case SkillCorner, SecondSpectrum:
		return centerDims(pitchType, pitchWidth, pitchLength), nil
	case Tracab:
		// tracab delivers centimeters
		return tracabDims(pitchWidth*100, pitchLength*100), nil
	case Impect:
		return impectDims(), nil
	default:
		return customDims(pitchWidth, pitchLength), nil
	}
}

// ---------------------------------------------------------------------------
// Fixed size providers

func optaDims() *Spec {
	d := &Spec{Type: Opta,
		Left: 0, Right: 100, Bottom: 0, Top: 100, Aspect: 68. / 105.,
		Width: 100, Length: 100, PitchWidth: 68, PitchLength: 105,
		GoalWidth: 9.6, GoalLength: 1.9, GoalBottom: 45.2, GoalTop: 54.8,
		SixYardWidth: 26.4, SixYardLength: 5.8, SixYardLeft: 5.8,
		SixYardRight: 94.2, SixYardBottom: 36.8, SixYardTop: 63.2,
		PenaltyLeft: 11.5, PenaltyRight: 88.5, PenaltySpotDistance: 11.5,
		PenaltyAreaWidth: 57.8, PenaltyAreaLength: 17, PenaltyAreaLeft: 17,
		PenaltyAreaRight: 83, PenaltyAreaBottom: 21.1, PenaltyAreaTop: 78.9,
		CenterWidth: 50, CenterLength: 50, CircleDiameter: 17.68,
		CornerDiameter: 1.94, InvertY: false, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: false,
	}
	d.setup()
	return d
}

func wyscoutDims() *Spec {
	d := &Spec{Type: Wyscout,
		Left: 0, Right: 100, Bottom: 100, Top: 0, Aspect: 68. / 105.,
		Width: 100, Length: 100, PitchWidth: 68, PitchLength: 105,
		GoalWidth: 12, GoalLength: 1.9, GoalBottom: 56, GoalTop: 44,
		SixYardWidth: 26, SixYardLength: 6, SixYardLeft: 6,
		SixYardRight: 94, SixYardBottom: 63, SixYardTop: 37,
		PenaltyLeft: 10, PenaltyRight: 90, PenaltySpotDistance: 10,
		PenaltyAreaWidth: 62, PenaltyAreaLength: 16, PenaltyAreaLeft: 16,
		PenaltyAreaRight: 84, PenaltyAreaBottom: 81, PenaltyAreaTop: 19,
		CenterWidth: 50, CenterLength: 50, CircleDiameter: 17.68,
		CornerDiameter: 1.94, InvertY: true, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: false,
	}
	d.setup()
	return d
}

func uefaDims() *Spec {
	d := &Spec{Type: UEFA,
		Left: 0, Right: 105, Top: 68, Bottom: 0, Aspect: 1,
		Width: 68, Length: 105, PitchWidth: 68, PitchLength: 105,
		GoalWidth: 7.32, GoalLength: 2, GoalBottom: 30.34, GoalTop: 37.66,
		SixYardWidth: 18.32, SixYardLength: 5.5, SixYardLeft: 5.5,
		SixYardRight: 99.5, SixYardBottom: 24.84, SixYardTop: 43.16,
		PenaltyLeft: 11, PenaltyRight: 94, PenaltySpotDistance: 11,
		PenaltyAreaWidth: 40.32, PenaltyAreaLength: 16.5, PenaltyAreaLeft: 16.5,
		PenaltyAreaRight: 88.5, PenaltyAreaBottom: 13.84, PenaltyAreaTop: 54.16,
		CenterWidth: 34, CenterLength: 52.5, CircleDiameter: 18.3,
		CornerDiameter: 2, Arc: 53.05, InvertY: false, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
	d.setup()
	return d
}

func statsbombDims() *Spec {
	d := &Spec{Type: StatsBomb,
		Left: 0, Right: 120, Bottom: 80, Top: 0, Aspect: 1,
		Width: 80, Length: 120, PitchWidth: 80, PitchLength: 120,
		GoalWidth: 8, GoalLength: 2.4, GoalBottom: 44, GoalTop: 36,
		SixYardWidth: 20, SixYardLength: 6, SixYardLeft: 6,
		SixYardRight: 114, SixYardBottom: 50, SixYardTop: 30,
		PenaltyLeft: 12, PenaltyRight: 108, PenaltySpotDistance: 12,
		PenaltyAreaWidth: 44, PenaltyAreaLength: 18, PenaltyAreaLeft: 18,
		PenaltyAreaRight: 102, PenaltyAreaBottom: 62, PenaltyAreaTop: 18,
		CenterWidth: 40, CenterLength: 60, CircleDiameter: 20,
		CornerDiameter: 2.186, Arc: 53.05, InvertY: true, OriginCenter: false,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
	d.setup()
	return d
}

// ---------------------------------------------------------------------------
// Variable size providers

// centerDims builds the spec for providers with the origin at the pitch
// center and coordinates in meters: 'skillcorner', 'secondspectrum',
// 'impect' and (in centimeters) 'tracab'.
func centerDims(pitchType string, pitchWidth, pitchLength float64) *Spec {
	d := &Spec{Type: pitchType,
		Aspect: 1, PitchWidth: pitchWidth, PitchLength: pitchLength,
		GoalWidth: 7.32, GoalLength: 2, GoalBottom: -3.66, GoalTop: 3.66,
		SixYardWidth: 18.32, SixYardLength: 5.5, SixYardBottom: -9.16,
		SixYardTop: 9.16, PenaltySpotDistance: 11,
		PenaltyAreaWidth: 40.32, PenaltyAreaLength: 16.5,
		PenaltyAreaBottom: -20.16, PenaltyAreaTop: 20.16,
		CenterWidth: 0, CenterLength: 0, CircleDiameter: 18.3,
		CornerDiameter: 2, Arc: 53.05, InvertY: false, OriginCenter: true,
		PadDefault: 4, PadMultiplier: 1, AspectEqual: true,
	}
	d.finishCenter()
	return d
}

func tracabDims(pitchWidth, pitchLength float64) *Spec {
	d := &Spec{Type: Tracab,
		Aspect: 1, PitchWidth: pitchWidth, PitchLength: pitchLength,
		GoalWidth: 732, GoalLength: 200, GoalBottom: -366, GoalTop: 366,
		SixYardWidth: 1832, SixYardLength: 550, SixYardBottom: -916,
		SixYardTop: 916, PenaltySpotDistance: 1100,
		PenaltyAreaWidth: 4032, PenaltyAreaLength: 1650,
		PenaltyAreaBottom: -2016, PenaltyAreaTop: 2016,
		CenterWidth: 0, CenterLength: 0, CircleDiameter: 1830,
		CornerDiameter: 200, Arc: 53.05, InvertY: false, OriginCenter: true,
		PadDefault: 4, PadMultiplier: 100, AspectEqual: true,
	}
	d.finishCenter()
	return d
}

// impectDims is centerDims fixed at a 68x105 pitch.
func impectDims() *Spec {
	return centerDims(Impect, 68, 105)
}

// finishCenter derives the axis extents and left/right marking
// positions for origin centered pitches.
func (d *Spec) finishCenter() {
	d.Left = -d.PitchLength / 2
	d.Right = -d.Left
	d.Bottom = -d.PitchWidth / 2
	d.Top = -d.Bottom
	d.Width = d.PitchWidth
	d.Length = d.PitchLength
	d.SixYardLeft = d.Left + d.SixYardLength
	d.SixYardRight = -d.SixYardLeft
	d.PenaltyLeft = d.Left + d.PenaltySpotDistance
	d.PenaltyRight = d.Right - d.PenaltySpotDistance
	d.PenaltyAreaLeft = d.Left + d.PenaltyAreaLength
	d.PenaltyAreaRight = -d.PenaltyAreaLeft
	d.setup()
}

func customDims(pitchWidth, pitchLength float64) *Spec {
	d := &Spec{Type: Custom,
		Bottom: 0, Left: 0, Aspect: 1, Width: pitchWidth, Length: pitchLength,
		PitchLength: pitchLength, PitchWidth: pitchWidth, SixYardWidth: 18.32,
		SixYardLength: 5.5, PenaltyAreaWidth: 40.32, PenaltySpotDistance: 11,
		PenaltyAreaLength: 16.5, CircleDiameter: 18.3, CornerDiameter: 2,
		GoalLength: 2, GoalWidth: 7.32, Arc: 53.05, InvertY: false,
		OriginCenter: false, PadDefault: 4, PadMultiplier: 1,
		AspectEqual: true,
	}
	d.Top = d.PitchWidth
	d.Right = d.PitchLength
	d.CenterWidth = d.PitchWidth / 2
	d.CenterLength = d.PitchLength / 2
	d.PenaltyLeft = d.PenaltySpotDistance
	d.deriveBoxes()
	d.setup()
	return d
}

func metricasportsDims(pitchWidth, pitchLength float64) *Spec {
	d := &Spec{Type: Metricasports,
		Top: 0, Bottom: 1, Left: 0, Right: 1,
		PitchWidth: pitchWidth, PitchLength: pitchLength,
		Width: 1, CenterWidth: 0.5, Length: 1, CenterLength: 0.5,
		SixYardWidth: 18.32, SixYardLength: 5.5, PenaltySpotDistance: 11,
		PenaltyAreaWidth: 40.32, PenaltyAreaLength: 16.5,
		CircleDiameter: 18.3, CornerDiameter: 2, GoalLength: 2,
		GoalWidth: 7.32, InvertY: true, OriginCenter: false,
		PadDefault: 0.04, PadMultiplier: 1, AspectEqual: false,
	}
	// marking positions as a share of the real pitch size
	d.Aspect = d.PitchWidth / d.PitchLength
	d.SixYardWidth = round4(d.SixYardWidth / d.PitchWidth)
	d.SixYardLength = round4(d.SixYardLength / d.PitchLength)
	d.PenaltyAreaWidth = round4(d.PenaltyAreaWidth / d.PitchWidth)
	d.PenaltyAreaLength = round4(d.PenaltyAreaLength / d.PitchLength)
	d.PenaltySpotDistance = round4(d.PenaltySpotDistance / d.PitchLength)
	d.PenaltyLeft = d.PenaltySpotDistance
	d.GoalLength = round4(d.GoalLength / d.PitchLength)
	d.GoalWidth = round4(d.GoalWidth / d.PitchWidth)
	d.deriveBoxes()
	d.setup()
	return d
}
