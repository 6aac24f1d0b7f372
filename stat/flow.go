package stat

import (
	"math"

	"github.com/juju/errors"
	"github.com/vdobler/pitch/dim"
)

// ---------------------------------------------------------------------------
// Flow

// Arrow length modes understood by Flow.
const (
	ArrowSame    = "same"    // every arrow is arrowLength long
	ArrowScale   = "scale"   // proportional to the mean distance, longest is arrowLength
	ArrowAverage = "average" // the mean distance itself
)

// FlowArrows are the arrows of a flow map, one per grid cell with at
// least one movement starting in it. Each arrow runs from the cell
// center along the mean direction of the cell's movements, and Count
// holds how many there were.
type FlowArrows struct {
	X, Y       []float64
	EndX, EndY []float64
	Count      []float64
}

// Flow summarizes movements as one arrow per cell of an nx by ny grid
// over the pitch. Movements are grouped by their start location, the
// arrow direction is the circular mean of their angles and the arrow
// length is set by the mode: ArrowSame draws every arrow arrowLength
// long, ArrowScale scales them so the cell with the largest mean
// distance gets arrowLength, ArrowAverage draws the mean distance
// itself.
//
// On specs with unequal axis scaling the movements are standardized to
// uefa coordinates for binning, so angles mean the same in every cell,
// and the arrows are mapped back afterwards.
func Flow(xstart, ystart, xend, yend []float64, d *dim.Spec, nx, ny int, arrowType string, arrowLength float64) (*FlowArrows, error) {
	switch arrowType {
	case ArrowSame, ArrowScale, ArrowAverage:
	default:
		return nil, errors.NotValidf("arrow type %q, should be %q, %q or %q",
			arrowType, ArrowSame, ArrowScale, ArrowAverage)
	}
	sx, sy, ex, ey := xstart, ystart, xend, yend
	binSpec := d
	var std *dim.Standardizer
	if d.AspectRatio() != 1 {
		uefa, err := dim.New(dim.UEFA, 0, 0)
		if err != nil {
			return nil, errors.Trace(err)
		}
		std, err = dim.NewStandardizer(d, uefa)
		if err != nil {
			return nil, errors.Trace(err)
		}
		sx, sy = std.TransformAll(xstart, ystart)
		ex, ey = std.TransformAll(xend, yend)
		binSpec = uefa
	}

	angle, distance, err := AngleAndDistance(sx, sy, ex, ey, binSpec, false)
	if err != nil {
		return nil, errors.Trace(err)
	}
	binDist, err := Bin2D(sx, sy, distance, binSpec, Mean, nx, ny)
	if err != nil {
		return nil, errors.Trace(err)
	}
	binAngle, err := Bin2D(sx, sy, angle, binSpec, CircMean, nx, ny)
	if err != nil {
		return nil, errors.Trace(err)
	}
	binCount, err := Bin2D(sx, sy, nil, binSpec, Count, nx, ny)
	if err != nil {
		return nil, errors.Trace(err)
	}

	// Arrow lengths are in pitch units, which are centimeters on
	// tracab pitches.
	arrowLength *= d.PadMultiplier
	var longest float64
	if arrowType == ArrowScale {
		for _, row := range binDist.Stat {
			for _, v := range row {
				if !math.IsNaN(v) && v > longest {
					longest = v
				}
			}
		}
	}

	f := &FlowArrows{}
	for r, row := range binAngle.Stat {
		for c, a := range row {
			if math.IsNaN(a) {
				continue
			}
			var length float64
			switch arrowType {
			case ArrowSame:
				length = arrowLength
			case ArrowScale:
				length = binDist.Stat[r][c] * arrowLength / longest
			case ArrowAverage:
				length = binDist.Stat[r][c]
			}
			cx, cy := binAngle.CX[c], binAngle.CY[r]
			endx := cx + math.Cos(a)*length
			endy := cy + math.Sin(a)*length
			if binSpec.InvertY {
				endy = cy - math.Sin(a)*length
			}
			if std != nil {
				cx, cy = std.Reverse(cx, cy)
				endx, endy = std.Reverse(endx, endy)
			}
			f.X = append(f.X, cx)
			f.Y = append(f.Y, cy)
			f.EndX = append(f.EndX, endx)
			f.EndY = append(f.EndY, endy)
			f.Count = append(f.Count, binCount.Stat[r][c])
		}
	}
	tracer().Debugf("flow of %d movements into %d arrows", len(xstart), len(f.X))
	return f, nil
}
