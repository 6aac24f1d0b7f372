package geom

import (
	"math"

	"github.com/npillmayer/arithm"
)

// ---------------------------------------------------------------------------
// Angles and distances

// Distance returns the euclidean distance between two points.
func Distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// Angle returns the direction from the first to the second point in
// radians counter-clockwise from the positive x axis, in [0, 2pi).
func Angle(x0, y0, x1, y1 float64) float64 {
	a := math.Atan2(y1-y0, x1-x0)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// ClockwiseDeg converts a counter-clockwise angle in radians to a
// clockwise angle in degrees in [0, 360).
func ClockwiseDeg(rad float64) float64 {
	deg := math.Mod(-rad/arithm.Deg2Rad, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ShotTriangle is the polygon between a shot location and the two goal
// posts.
func ShotTriangle(x, y float64, post1, post2 arithm.Pair) Polygon {
	return Polygon{arithm.P(x, y), post1, post2}
}

// ---------------------------------------------------------------------------
// Elliptical arcs

// ParamAngle converts the direction theta of a ray leaving the center
// of an ellipse with radii rx and ry into the parameter t at which the
// ellipse point (cx + rx cos t, cy + ry sin t) lies on that ray. For
// circles t equals theta. Both angles are in radians.
//
// Arc angles on a pitch are given as ray directions in pitch
// coordinates. When the two radii differ, as they do on pitches whose
// coordinates are not to scale, the ellipse parameter differs from the
// ray angle and arcs must be sampled in t.
func ParamAngle(rx, ry, theta float64) float64 {
	if rx == ry {
		return theta
	}
	return math.Atan2(rx*math.Sin(theta), ry*math.Cos(theta))
}

// ArcPoints samples the arc of the ellipse around (cx, cy) with radii
// rx and ry, running counter-clockwise from ray angle theta1 to ray
// angle theta2, both in degrees. Equal angles give the full ellipse.
// The sample contains n points including both arc ends.
func ArcPoints(cx, cy, rx, ry, theta1, theta2 float64, n int) []arithm.Pair {
	if n < 2 {
		n = 2
	}
	t1 := ParamAngle(rx, ry, theta1*arithm.Deg2Rad)
	t2 := ParamAngle(rx, ry, theta2*arithm.Deg2Rad)
	if t2 <= t1 {
		t2 += 2 * math.Pi
	}
	pts := make([]arithm.Pair, n)
	for i := range pts {
		t := t1 + (t2-t1)*float64(i)/float64(n-1)
		pts[i] = arithm.P(cx+rx*math.Cos(t), cy+ry*math.Sin(t))
	}
	return pts
}
