package dim

import (
	"io"
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// specConfig is the YAML serialization of a dimension spec. Marking
// positions may be omitted, Init derives them from the measurements.
type specConfig struct {
	Type string `yaml:"type"`

	PitchWidth  float64 `yaml:"pitch_width,omitempty"`
	PitchLength float64 `yaml:"pitch_length,omitempty"`

	GoalWidth           float64 `yaml:"goal_width"`
	GoalLength          float64 `yaml:"goal_length"`
	SixYardWidth        float64 `yaml:"six_yard_width"`
	SixYardLength       float64 `yaml:"six_yard_length"`
	PenaltyAreaWidth    float64 `yaml:"penalty_area_width"`
	PenaltyAreaLength   float64 `yaml:"penalty_area_length"`
	PenaltySpotDistance float64 `yaml:"penalty_spot_distance"`
	CircleDiameter      float64 `yaml:"circle_diameter"`
	CornerDiameter      float64 `yaml:"corner_diameter"`
	Arc                 float64 `yaml:"arc,omitempty"`

	InvertY      bool `yaml:"invert_y,omitempty"`
	OriginCenter bool `yaml:"origin_center,omitempty"`
	AspectEqual  bool `yaml:"aspect_equal,omitempty"`

	PadDefault    float64 `yaml:"pad_default,omitempty"`
	PadMultiplier float64 `yaml:"pad_multiplier,omitempty"`

	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Top    float64 `yaml:"top"`
	Aspect float64 `yaml:"aspect,omitempty"`

	GoalBottom        float64 `yaml:"goal_bottom,omitempty"`
	GoalTop           float64 `yaml:"goal_top,omitempty"`
	SixYardLeft       float64 `yaml:"six_yard_left,omitempty"`
	SixYardRight      float64 `yaml:"six_yard_right,omitempty"`
	SixYardBottom     float64 `yaml:"six_yard_bottom,omitempty"`
	SixYardTop        float64 `yaml:"six_yard_top,omitempty"`
	PenaltyLeft       float64 `yaml:"penalty_left,omitempty"`
	PenaltyRight      float64 `yaml:"penalty_right,omitempty"`
	PenaltyAreaLeft   float64 `yaml:"penalty_area_left,omitempty"`
	PenaltyAreaRight  float64 `yaml:"penalty_area_right,omitempty"`
	PenaltyAreaBottom float64 `yaml:"penalty_area_bottom,omitempty"`
	PenaltyAreaTop    float64 `yaml:"penalty_area_top,omitempty"`
	CenterWidth       float64 `yaml:"center_width,omitempty"`
	CenterLength      float64 `yaml:"center_length,omitempty"`
}

// LoadSpec reads a YAML dimension spec for a provider not covered by
// the builtin catalog. The YAML must contain the axis extents and the
// marking measurements; marking positions are derived when omitted:
//
//	type: mytracker
//	left: 0
//	right: 1
//	bottom: 0
//	top: 1
//	pitch_width: 68
//	pitch_length: 105
//	goal_width: 0.0697
//	goal_length: 0.019
//	six_yard_width: 0.1745
//	six_yard_length: 0.0524
//	penalty_area_width: 0.384
//	penalty_area_length: 0.1571
//	penalty_spot_distance: 0.1048
//	circle_diameter: 0.1743
//	corner_diameter: 0.019
func LoadSpec(r io.Reader) (*Spec, error) {
	var cfg specConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Annotate(err, "decoding dimension spec")
	}
	d := cfg.spec()
	if err := d.Init(); err != nil {
		return nil, errors.Annotatef(err, "dimension spec %q", d.Type)
	}
	tracer().Infof("loaded dimension spec %q", d.Type)
	return d, nil
}

// LoadSpecFile reads a YAML dimension spec from the given file.
func LoadSpecFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	d, err := LoadSpec(f)
	return d, errors.Annotatef(err, "file %q", path)
}

// spec copies the configuration into a Spec, filling in defaults.
func (cfg specConfig) spec() *Spec {
	d := &Spec{
		Type:                cfg.Type,
		PitchWidth:          cfg.PitchWidth,
		PitchLength:         cfg.PitchLength,
		GoalWidth:           cfg.GoalWidth,
		GoalLength:          cfg.GoalLength,
		SixYardWidth:        cfg.SixYardWidth,
		SixYardLength:       cfg.SixYardLength,
		PenaltyAreaWidth:    cfg.PenaltyAreaWidth,
		PenaltyAreaLength:   cfg.PenaltyAreaLength,
		PenaltySpotDistance: cfg.PenaltySpotDistance,
		CircleDiameter:      cfg.CircleDiameter,
		CornerDiameter:      cfg.CornerDiameter,
		Arc:                 cfg.Arc,
		InvertY:             cfg.InvertY,
		OriginCenter:        cfg.OriginCenter,
		AspectEqual:         cfg.AspectEqual,
		PadDefault:          cfg.PadDefault,
		PadMultiplier:       cfg.PadMultiplier,
		Left:                cfg.Left,
		Right:               cfg.Right,
		Bottom:              cfg.Bottom,
		Top:                 cfg.Top,
		Aspect:              cfg.Aspect,
		GoalBottom:          cfg.GoalBottom,
		GoalTop:             cfg.GoalTop,
		SixYardLeft:         cfg.SixYardLeft,
		SixYardRight:        cfg.SixYardRight,
		SixYardBottom:       cfg.SixYardBottom,
		SixYardTop:          cfg.SixYardTop,
		PenaltyLeft:         cfg.PenaltyLeft,
		PenaltyRight:        cfg.PenaltyRight,
		PenaltyAreaLeft:     cfg.PenaltyAreaLeft,
		PenaltyAreaRight:    cfg.PenaltyAreaRight,
		PenaltyAreaBottom:   cfg.PenaltyAreaBottom,
		PenaltyAreaTop:      cfg.PenaltyAreaTop,
		CenterWidth:         cfg.CenterWidth,
		CenterLength:        cfg.CenterLength,
	}
	if d.Type == "" {
		d.Type = Custom
	}
	if d.PadDefault == 0 {
		d.PadDefault = 4
	}
	if d.PadMultiplier == 0 {
		d.PadMultiplier = 1
	}
	return d
}
