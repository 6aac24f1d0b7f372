/*
Package stat computes the binned summaries behind pitch charts:
rectangular and positional-zone heatmap grids, hexagonal binning,
kernel density estimates and flow maps of movement vectors.

All operations work in the coordinates of a dimension spec and handle
its axis inversion, so a statsbomb data set and a wyscout data set bin
the same way visually.
*/
package stat

import (
	"math"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/vdobler/pitch/dim"
	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// tracer writes to trace with key 'pitch.stat'
func tracer() tracing.Trace {
	return tracing.Select("pitch.stat")
}

// Statistics understood by Bin2D and Positional.
const (
	Count    = "count"
	Sum      = "sum"
	Mean     = "mean"
	Std      = "std"
	Median   = "median"
	Min      = "min"
	Max      = "max"
	CircMean = "circmean"
)

var validStatistics = dim.NewStringSetFrom([]string{
	Count, Sum, Mean, Std, Median, Min, Max, CircMean,
})

// aggregate reduces the values of one bin. Empty bins yield zero for
// count and sum and NaN for everything else.
func aggregate(statistic string, vals []float64) float64 {
	if len(vals) == 0 {
		if statistic == Count || statistic == Sum {
			return 0
		}
		return math.NaN()
	}
	switch statistic {
	case Count:
		return float64(len(vals))
	case Sum:
		return floats.Sum(vals)
	case Mean:
		return gstat.Mean(vals, nil)
	case Std:
		// Population deviation, not the sample estimate.
		m := gstat.Mean(vals, nil)
		return math.Sqrt(gstat.MomentAbout(2, vals, m, nil))
	case Median:
		return median(vals)
	case Min:
		return floats.Min(vals)
	case Max:
		return floats.Max(vals)
	case CircMean:
		m := gstat.CircularMean(vals, nil)
		if m < 0 {
			m += 2 * math.Pi
		}
		return m
	}
	return math.NaN()
}

func median(vals []float64) float64 {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
