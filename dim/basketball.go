package dim

import "math"

// Court describes a basketball court coordinate system. The landmark
// set differs from soccer: the key, the three point line, the hoop and
// the hash marks. All positions are in court units, PitchWidth and
// PitchLength are the real court size in meters.
type Court struct {
	Type string

	PitchWidth  float64
	PitchLength float64

	Left, Right   float64
	Bottom, Top   float64
	Width, Length float64
	Aspect        float64

	InvertY      bool
	OriginCenter bool
	AspectEqual  bool

	PadDefault    float64
	PadMultiplier float64

	CenterWidth, CenterLength float64

	KeyWidth, KeyLength float64
	KeyLeft, KeyRight   float64
	KeyBottom, KeyTop   float64

	HoopLeft, HoopRight float64
	HoopDiameterLength  float64
	HoopDiameterWidth   float64

	CenterCircleDiameterLength   float64
	CenterCircleDiameterWidth    float64
	RestrictedAreaDiameterLength float64
	RestrictedAreaDiameterWidth  float64

	// The three point line: two straight segments along the sidelines
	// up to ThreePointLeft/Right, joined by an arc around the hoop. The
	// theta pairs are the visual start and end angles of the two arcs
	// in degrees, counterclockwise from the positive x direction.
	ThreePointLeft, ThreePointRight float64
	ThreePointBottom, ThreePointTop float64
	ThreePointDiameterLength        float64
	ThreePointDiameterWidth         float64
	Arc1Theta1, Arc1Theta2          float64
	Arc2Theta1, Arc2Theta2          float64

	HashSidelineLeft, HashSidelineRight float64
	HashSidelineBottom, HashSidelineTop float64
	HashSubstitutionLeft                float64
	HashSubstitutionRight               float64
	HashSubstitutionTop                 float64
}

// NBA returns the court dimensions for 'nba' data: a 0-100 by 0-100
// space with an inverted y-axis over a real court of 94 by 50 feet
// (28.6512 by 15.24 meters). Marking positions follow the NBA rule
// book, converted from feet into the court space.
func NBA() *Court {
	// feet into court units
	fx := func(ft float64) float64 { return ft / 94 * 100 }
	fy := func(ft float64) float64 { return ft / 50 * 100 }

	c := &Court{Type: "nba",
		Left: 0, Right: 100, Bottom: 100, Top: 0, Aspect: 50. / 94.,
		Width: 100, Length: 100, PitchWidth: 15.24, PitchLength: 28.6512,
		CenterWidth: 50, CenterLength: 50,
		InvertY: true, OriginCenter: false, AspectEqual: false,
		PadDefault: 4, PadMultiplier: 1,

		KeyWidth: 32, KeyLength: fx(19), KeyLeft: fx(19),
		KeyRight: 100 - fx(19), KeyBottom: 34, KeyTop: 66,

		HoopLeft: fx(5.25), HoopRight: 100 - fx(5.25),
		HoopDiameterLength: fx(1.5), HoopDiameterWidth: fy(1.5),

		CenterCircleDiameterLength: fx(12), CenterCircleDiameterWidth: fy(12),

		RestrictedAreaDiameterLength: fx(8), RestrictedAreaDiameterWidth: fy(8),

		ThreePointLeft: fx(14), ThreePointRight: 100 - fx(14),
		ThreePointBottom: 100 - fy(3), ThreePointTop: fy(3),
		ThreePointDiameterLength: fx(47.5), ThreePointDiameterWidth: fy(47.5),

		HashSidelineLeft: fx(28), HashSidelineRight: 100 - fx(28),
		HashSidelineBottom: 100 - fy(3), HashSidelineTop: fy(3),
		HashSubstitutionLeft:  50 - fx(4),
		HashSubstitutionRight: 50 + fx(4),
		HashSubstitutionTop:   fy(3),
	}

	// the three point arcs start where the arc meets the straight bits
	theta := ArcIntersectionAngle(c.ThreePointDiameterLength,
		c.ThreePointDiameterWidth, c.HoopLeft, c.CenterWidth, c.ThreePointLeft)
	c.Arc1Theta1, c.Arc1Theta2 = 360-theta, theta
	c.Arc2Theta1, c.Arc2Theta2 = 180-theta, 180+theta
	return c
}

// ArcIntersectionAngle returns the absolute angle in degrees between
// the ellipse center and the point where the ellipse crosses the
// vertical line at lineX below the center. The ellipse is centered at
// (centerX, centerY) with the given axis diameters. Used to find where
// a curved marking hands over to a straight one.
func ArcIntersectionAngle(diamLength, diamWidth, centerX, centerY, lineX float64) float64 {
	rl := diamLength / 2
	rw := diamWidth / 2
	adjacent := lineX - centerX
	opposite := rw * math.Sqrt(rl*rl-adjacent*adjacent) / rl
	return math.Abs(rad2Deg(math.Atan(opposite / adjacent)))
}

func rad2Deg(rad float64) float64 { return rad * 180 / math.Pi }

// Extent returns the coordinate range of the court as xmin, xmax,
// ymin, ymax.
func (c *Court) Extent() (xmin, xmax, ymin, ymax float64) {
	if c.InvertY {
		return c.Left, c.Right, c.Top, c.Bottom
	}
	return c.Left, c.Right, c.Bottom, c.Top
}

// AspectRatio returns the y/x unit scale used to draw the court to
// proportion.
func (c *Court) AspectRatio() float64 {
	if c.AspectEqual || c.Aspect == 0 {
		return 1
	}
	return c.Aspect
}
