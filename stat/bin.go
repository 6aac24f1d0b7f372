package stat

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/juju/errors"
	"github.com/vdobler/pitch/dim"
)

// ---------------------------------------------------------------------------
// Bin2D

// BinnedStatistic is a statistic over a 2d grid of pitch cells
// together with the cell geometry. Rows follow ascending YEdges,
// columns ascending XEdges, so Stat[0][0] is the cell at the lowest
// x and y coordinates regardless of the spec's axis direction.
//
// The Dims, X, Y and Z methods implement the grid interface of the
// gonum plotters. They report cell centers and are only meaningful for
// evenly spaced edges; mesh renderers should work from the edges,
// which stay correct for the uneven positional-zone grids.
type BinnedStatistic struct {
	Stat   [][]float64 // Stat[row][col]
	XEdges []float64   // len cols+1
	YEdges []float64   // len rows+1
	CX     []float64   // cell center x values, len cols
	CY     []float64   // cell center y values, len rows
}

func (b *BinnedStatistic) Dims() (c, r int) { return len(b.CX), len(b.CY) }

func (b *BinnedStatistic) X(c int) float64 { return b.CX[c] }

func (b *BinnedStatistic) Y(r int) float64 { return b.CY[r] }

func (b *BinnedStatistic) Z(c, r int) float64 { return b.Stat[r][c] }

// Bin2D bins locations into nx by ny equal cells over the pitch
// extent and reduces the values that fall into each cell with the
// named statistic. For Count the values may be nil. Locations outside
// the extent and locations with NaN coordinates are dropped.
//
// A location on an interior cell edge counts for the cell visually
// above it: on inverted pitches the raw coordinates are flipped before
// binning and the finished grid is flipped back.
func Bin2D(x, y, values []float64, d *dim.Spec, statistic string, nx, ny int) (*BinnedStatistic, error) {
	if nx < 1 || ny < 1 {
		return nil, errors.NotValidf("bin grid %dx%d", nx, ny)
	}
	xmin, xmax, ymin, ymax := d.Extent()
	xedges := vec.Linspace(xmin, xmax, nx+1)
	yedges := vec.Linspace(ymin, ymax, ny+1)
	return Bin2DEdges(x, y, values, d, statistic, xedges, yedges)
}

// Bin2DEdges is Bin2D with explicit, ascending cell edges. On inverted
// pitches the y edges should be symmetric to the pitch center, as the
// landmark based zone edges are.
func Bin2DEdges(x, y, values []float64, d *dim.Spec, statistic string, xedges, yedges []float64) (*BinnedStatistic, error) {
	if len(x) != len(y) {
		return nil, errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	if !validStatistics.Contains(statistic) {
		return nil, errors.NotValidf("statistic %q, should be in %v", statistic, validStatistics.Elements())
	}
	if values == nil && statistic == Count {
		values = x
	}
	if values == nil {
		return nil, errors.NotValidf("statistic %q without values", statistic)
	}
	if len(values) != len(x) {
		return nil, errors.NotValidf("%d values against %d coordinates", len(values), len(x))
	}
	if len(xedges) < 2 || len(yedges) < 2 {
		return nil, errors.NotValidf("bin edges %v x %v", xedges, yedges)
	}
	if !sort.Float64sAreSorted(xedges) || !sort.Float64sAreSorted(yedges) {
		return nil, errors.NotValidf("unsorted bin edges")
	}

	nx, ny := len(xedges)-1, len(yedges)-1
	cells := make([][][]float64, ny)
	for r := range cells {
		cells[r] = make([][]float64, nx)
	}
	for i := range x {
		yb := y[i]
		if d.InvertY {
			yb = d.Bottom - yb
		}
		c := binIndex(xedges, x[i])
		r := binIndex(yedges, yb)
		if c < 0 || r < 0 {
			continue
		}
		cells[r][c] = append(cells[r][c], values[i])
	}

	grid := make([][]float64, ny)
	for r := range grid {
		src := cells[r]
		if d.InvertY {
			src = cells[ny-1-r]
		}
		row := make([]float64, nx)
		for c := range row {
			row[c] = aggregate(statistic, src[c])
		}
		grid[r] = row
	}
	tracer().Debugf("%s of %d locations in %dx%d cells", statistic, len(x), nx, ny)

	return &BinnedStatistic{
		Stat:   grid,
		XEdges: xedges,
		YEdges: yedges,
		CX:     centers(xedges),
		CY:     centers(yedges),
	}, nil
}

// binIndex returns the left closed bin of v, with the last bin closed
// on both sides. Out of range and NaN values return -1.
func binIndex(edges []float64, v float64) int {
	if math.IsNaN(v) || v < edges[0] || v > edges[len(edges)-1] {
		return -1
	}
	if v == edges[len(edges)-1] {
		return len(edges) - 2
	}
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		return i
	}
	return i - 1
}

func centers(edges []float64) []float64 {
	c := make([]float64, len(edges)-1)
	for i := range c {
		c[i] = edges[i] + (edges[i+1]-edges[i])/2
	}
	return c
}
