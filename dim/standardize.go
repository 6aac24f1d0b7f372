package dim

import (
	"math"

	"github.com/juju/errors"
	"gonum.org/v1/gonum/interp"
)

// -------------------------------------------------------------------------
// Standardizer

// Standardizer converts coordinates from one provider space to another.
// The conversion is piecewise linear between corresponding landmarks, so
// a point on a pitch marking in the source space lands on the same
// marking in the target space even when the providers disagree about
// where that marking sits.
//
//	from, _ := dim.New(dim.StatsBomb, 0, 0)
//	to, _ := dim.New(dim.Custom, 68, 105)
//	std, _ := dim.NewStandardizer(from, to)
//	x, y := std.Transform(20, 50)
//
// Coordinates outside the source pitch extent are clipped to the extent
// before converting. NaN coordinates stay NaN.
type Standardizer struct {
	From *Spec
	To   *Spec

	fx, fy interp.PiecewiseLinear // source landmarks to target landmarks
	rx, ry interp.PiecewiseLinear // target landmarks back to source
}

// NewStandardizer creates a Standardizer between the two dimension
// specs. It fails if a spec is nil, not initialized, or has landmark
// arrays which are not ascending.
func NewStandardizer(from, to *Spec) (*Standardizer, error) {
	if from == nil || to == nil {
		return nil, errors.NotValidf("nil pitch dimensions")
	}
	s := &Standardizer{From: from, To: to}
	var err error
	if s.fx, err = fitLandmarks(from.xMarkings, to.xMarkings); err != nil {
		return nil, errors.Annotatef(err, "x landmarks of %q to %q", from.Type, to.Type)
	}
	if s.fy, err = fitLandmarks(from.yMarkings, to.yMarkings); err != nil {
		return nil, errors.Annotatef(err, "y landmarks of %q to %q", from.Type, to.Type)
	}
	if s.rx, err = fitLandmarks(to.xMarkings, from.xMarkings); err != nil {
		return nil, errors.Annotatef(err, "x landmarks of %q to %q", to.Type, from.Type)
	}
	if s.ry, err = fitLandmarks(to.yMarkings, from.yMarkings); err != nil {
		return nil, errors.Annotatef(err, "y landmarks of %q to %q", to.Type, from.Type)
	}
	tracer().Debugf("standardizer from %q to %q", from.Type, to.Type)
	return s, nil
}

// fitLandmarks fits a piecewise linear interpolation mapping the from
// landmarks to the to landmarks.
func fitLandmarks(from, to []float64) (interp.PiecewiseLinear, error) {
	var pl interp.PiecewiseLinear
	if len(from) < 2 || len(from) != len(to) {
		return pl, errors.NotValidf("landmark arrays of length %d and %d",
			len(from), len(to))
	}
	if !ascending(from) || !ascending(to) {
		return pl, errors.NotValidf("unsorted landmark array")
	}
	xs, ys := dedupPairs(from, to)
	if err := pl.Fit(xs, ys); err != nil {
		return pl, errors.Trace(err)
	}
	return pl, nil
}

func ascending(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return false
		}
	}
	return true
}

// dedupPairs drops pairs whose source value repeats the previous one.
// Small pitches can collapse neighboring landmarks, on a 33m long
// custom pitch the penalty area edge sits on the halfway line.
func dedupPairs(xs, ys []float64) ([]float64, []float64) {
	outX := make([]float64, 0, len(xs))
	outY := make([]float64, 0, len(ys))
	for i := range xs {
		if i > 0 && xs[i] == xs[i-1] {
			continue
		}
		outX = append(outX, xs[i])
		outY = append(outY, ys[i])
	}
	return outX, outY
}

// Transform converts the point (x, y) from the source to the target
// space. Points outside the source pitch are clipped to its extent
// first. A NaN coordinate is returned unchanged, with the other
// coordinate still converted.
func (s *Standardizer) Transform(x, y float64) (float64, float64) {
	return convert(s.From, s.To, s.fx, s.fy, x, y)
}

// Reverse converts the point (x, y) from the target back to the source
// space. It is the counterpart of Transform, not its exact inverse:
// clipping and collapsed landmarks lose information.
func (s *Standardizer) Reverse(x, y float64) (float64, float64) {
	return convert(s.To, s.From, s.rx, s.ry, x, y)
}

// TransformAll converts the coordinate slices from the source to the
// target space and returns the converted coordinates in new slices.
// TransformAll panics if the slices have different lengths.
func (s *Standardizer) TransformAll(x, y []float64) ([]float64, []float64) {
	return convertAll(s.From, s.To, s.fx, s.fy, x, y)
}

// ReverseAll converts the coordinate slices from the target back to the
// source space. ReverseAll panics if the slices have different lengths.
func (s *Standardizer) ReverseAll(x, y []float64) ([]float64, []float64) {
	return convertAll(s.To, s.From, s.rx, s.ry, x, y)
}

func convert(from, to *Spec, px, py interp.PiecewiseLinear, x, y float64) (float64, float64) {
	xmin, xmax, ymin, ymax := from.Extent()
	if !math.IsNaN(x) {
		x = px.Predict(clamp(x, xmin, xmax))
	}
	if !math.IsNaN(y) {
		y = clamp(y, ymin, ymax)
		// flip inverted axes so that the y landmarks are ascending
		if from.InvertY {
			y = from.Bottom - y
		}
		y = py.Predict(y)
		if to.InvertY {
			y = to.Bottom - y
		}
	}
	return x, y
}

func convertAll(from, to *Spec, px, py interp.PiecewiseLinear, x, y []float64) ([]float64, []float64) {
	if len(x) != len(y) {
		panic("dim: coordinate slices of different length")
	}
	outX := make([]float64, len(x))
	outY := make([]float64, len(y))
	for i := range x {
		outX[i], outY[i] = convert(from, to, px, py, x[i], y[i])
	}
	return outX, outY
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
