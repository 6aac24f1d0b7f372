package stat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/juju/errors"
	"github.com/vdobler/pitch/geom"
)

// ---------------------------------------------------------------------------
// KDE2D

// KDE2D estimates a bivariate probability density from locations using
// a gaussian product kernel with per axis bandwidths.
type KDE2D struct {
	// N is the number of grid points per axis at which to evaluate
	// the density. If N is 0, a default of 200 is used.
	N int

	// Cut controls how far the evaluation window extends past the
	// extreme locations, in bandwidths. If Cut is 0, a default of 3
	// is used. The window never extends past the clip rectangle.
	Cut float64

	// BandwidthX and BandwidthY are the kernel bandwidths. A zero
	// bandwidth is estimated from the locations by Scott's rule for
	// two dimensions, the standard deviation times n^(-1/6).
	BandwidthX, BandwidthY float64
}

// DensityGrid is a density estimate evaluated on a regular grid, with
// Density[row][col] taken at x GridX[col] and y GridY[row].
//
// The Dims, X, Y and Z methods implement the grid interface of the
// gonum plotters.
type DensityGrid struct {
	Density [][]float64
	GridX   []float64
	GridY   []float64
}

func (d *DensityGrid) Dims() (c, r int) { return len(d.GridX), len(d.GridY) }

func (d *DensityGrid) X(c int) float64 { return d.GridX[c] }

func (d *DensityGrid) Y(r int) float64 { return d.GridY[r] }

func (d *DensityGrid) Z(c, r int) float64 { return d.Density[r][c] }

// Grid evaluates the density of the locations inside clip, usually the
// pitch extent. Locations with a NaN coordinate are skipped, at least
// two must remain.
func (k KDE2D) Grid(x, y []float64, clip geom.Rect) (*DensityGrid, error) {
	if len(x) != len(y) {
		return nil, errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return nil, errors.NotValidf("density estimate from %d locations", len(xs))
	}

	n := k.N
	if n <= 0 {
		n = 200
	}
	cut := k.Cut
	if cut == 0 {
		cut = 3
	}
	m := float64(len(xs))
	bwx, bwy := k.BandwidthX, k.BandwidthY
	if bwx == 0 {
		bwx = stats.Sample{Xs: xs}.StdDev() * math.Pow(m, -1.0/6)
	}
	if bwy == 0 {
		bwy = stats.Sample{Xs: ys}.StdDev() * math.Pow(m, -1.0/6)
	}
	if math.IsNaN(bwx) || math.IsNaN(bwy) || bwx <= 0 || bwy <= 0 {
		return nil, errors.NotValidf("bandwidths %v x %v", bwx, bwy)
	}

	gx := axisGrid(xs, cut*bwx, clip.MinX, clip.MaxX, n)
	gy := axisGrid(ys, cut*bwy, clip.MinY, clip.MaxY, n)
	tracer().Debugf("density of %d locations on %dx%d grid, bandwidths %.4g x %.4g",
		len(xs), n, n, bwx, bwy)

	// The product kernel separates, so the one dimensional kernel
	// values are computed once per axis and combined per cell.
	kx := kernelTable(gx, xs, bwx)
	ky := kernelTable(gy, ys, bwy)
	den := make([][]float64, len(gy))
	for r := range den {
		row := make([]float64, len(gx))
		for c := range row {
			s := 0.0
			for i := range xs {
				s += kx[c][i] * ky[r][i]
			}
			row[c] = s / m
		}
		den[r] = row
	}
	return &DensityGrid{Density: den, GridX: gx, GridY: gy}, nil
}

// axisGrid spans the locations plus reach on both sides, cut back to
// the lo to hi window.
func axisGrid(v []float64, reach, lo, hi float64, n int) []float64 {
	min, max := (stats.Sample{Xs: v}).Bounds()
	return vec.Linspace(math.Max(min-reach, lo), math.Min(max+reach, hi), n)
}

// kernelTable evaluates the scaled gaussian kernel of every location
// at every grid point.
func kernelTable(grid, locs []float64, bw float64) [][]float64 {
	norm := bw * math.Sqrt(2*math.Pi)
	t := make([][]float64, len(grid))
	for g, gv := range grid {
		row := make([]float64, len(locs))
		for i, l := range locs {
			u := (gv - l) / bw
			row[i] = math.Exp(-0.5*u*u) / norm
		}
		t[g] = row
	}
	return t
}
