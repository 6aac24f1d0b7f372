package stat

import (
	"github.com/juju/errors"
	"github.com/vdobler/pitch/dim"
	"github.com/vdobler/pitch/geom"
)

// ---------------------------------------------------------------------------
// AngleAndDistance

// AngleAndDistance computes the direction and length of the movements
// from start to end locations, for example passes or carries.
//
// Angles are in radians between 0 and 2*pi, counterclockwise with zero
// along the positive x axis, and follow the pitch as displayed: on a
// spec with an inverted y axis an angle below pi points to the side
// with the smaller y coordinates. With degrees set the angle is
// instead reported clockwise in degrees between 0 and 360.
func AngleAndDistance(xstart, ystart, xend, yend []float64, d *dim.Spec, degrees bool) (angle, distance []float64, err error) {
	if len(xstart) != len(ystart) {
		return nil, nil, errors.NotValidf("%d x against %d y start coordinates", len(xstart), len(ystart))
	}
	if len(xend) != len(yend) {
		return nil, nil, errors.NotValidf("%d x against %d y end coordinates", len(xend), len(yend))
	}
	if len(xstart) != len(xend) {
		return nil, nil, errors.NotValidf("%d start against %d end locations", len(xstart), len(xend))
	}
	angle = make([]float64, len(xstart))
	distance = make([]float64, len(xstart))
	for i := range xstart {
		y0, y1 := ystart[i], yend[i]
		if d.InvertY {
			y0, y1 = y1, y0
		}
		a := geom.Angle(xstart[i], y0, xend[i], y1)
		if degrees {
			a = geom.ClockwiseDeg(a)
		}
		angle[i] = a
		distance[i] = geom.Distance(xstart[i], ystart[i], xend[i], yend[i])
	}
	return angle, distance, nil
}
