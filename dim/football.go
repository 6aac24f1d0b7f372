package dim

// Field describes an American football field coordinate system. The
// landmark set is the gridiron: yard lines every yard, numbers every
// ten yards, inbound hash marks and conversion marks. Positions are in
// yards, the x-axis covers both end zones.
type Field struct {
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

	GoalLineLeft, GoalLineRight float64
	GoalWidth                   float64
	GoalBottom, GoalTop         float64

	// Yard lines between the goal lines. Major lines cross the whole
	// field, minor lines are short ticks of YardLineMinorSize near the
	// sidelines and at the hash mark rows.
	YardLineMinorSize float64
	YardNumberBottom  float64 // baseline of the bottom row of numbers
	YardNumberTop     float64 // baseline of the top row of numbers

	ConversionLeft  float64
	ConversionRight float64
	ConversionSize  float64

	HashMarkBottom float64
	HashMarkTop    float64
	HashMarkSize   float64

	// Derived from the goal line positions.
	NumberMarks    []float64 // x of the yard numbers, every 10 yards
	YardLinesMajor []float64 // full height lines, every 5 yards
	YardLinesMinor []float64 // tick lines, all other yards
}

// Gridiron returns the field dimensions for 'statsbomb' American
// football data: 0-100 between the goal lines with ten yard end zones
// on either side and an inverted y-axis over a 53.33 yard wide field.
func Gridiron() *Field {
	f := &Field{Type: StatsBomb,
		Left: -10, Right: 110, Bottom: 53.33, Top: 0,
		PitchWidth: 53.33, PitchLength: 120,
		Width: 53.33, Length: 120,
		InvertY: true, OriginCenter: false,
		Aspect: 1, AspectEqual: true,
		PadDefault: 4, PadMultiplier: 1,
		CenterWidth: 26.67, CenterLength: 50,
		GoalLineLeft: 0, GoalLineRight: 100, GoalWidth: 18.5 / 3,
		YardNumberTop: 10, YardNumberBottom: 43.33,
		HashMarkBottom: 53.33 - 70.75/3, HashMarkTop: 70.75 / 3,
		YardLineMinorSize: 2. / 3., HashMarkSize: 2. / 3.,
		ConversionLeft: 2, ConversionRight: 98, ConversionSize: 3,
	}
	f.GoalBottom = f.CenterWidth - f.GoalWidth/2
	f.GoalTop = f.CenterWidth + f.GoalWidth/2

	// one line per yard between the goal lines
	span := f.GoalLineRight - f.GoalLineLeft
	for i := 0; i <= 100; i++ {
		yd := f.GoalLineLeft + span*float64(i)/100
		switch {
		case i%10 == 0 && i != 0 && i != 100:
			f.NumberMarks = append(f.NumberMarks, yd)
			f.YardLinesMajor = append(f.YardLinesMajor, yd)
		case i%5 == 0 && i != 0 && i != 100:
			f.YardLinesMajor = append(f.YardLinesMajor, yd)
		case i%5 != 0:
			f.YardLinesMinor = append(f.YardLinesMinor, yd)
		}
	}
	return f
}

// Extent returns the coordinate range of the field as xmin, xmax,
// ymin, ymax.
func (f *Field) Extent() (xmin, xmax, ymin, ymax float64) {
	if f.InvertY {
		return f.Left, f.Right, f.Top, f.Bottom
	}
	return f.Left, f.Right, f.Bottom, f.Top
}

// AspectRatio returns the y/x unit scale used to draw the field to
// proportion.
func (f *Field) AspectRatio() float64 {
	if f.AspectEqual || f.Aspect == 0 {
		return 1
	}
	return f.Aspect
}
