package stat

import (
	"github.com/juju/errors"
	"github.com/vdobler/pitch/dim"
)

// ---------------------------------------------------------------------------
// Positional

// Layouts understood by Positional.
const (
	PositionalFull       = "full"
	PositionalHorizontal = "horizontal"
	PositionalVertical   = "vertical"
)

// Positional bins locations into the Juego de Posicion zones of the
// spec and reduces the values per zone with the named statistic.
//
// The full layout covers the pitch with twenty zones in five grids:
// one band along each touchline, a three by two grid between the
// penalty areas, and one zone per penalty area. The horizontal layout
// is a single grid of five full length bands, the vertical layout one
// of six full width columns.
//
// Points on a zone edge must land in exactly one zone, which rules out
// binning the zones one by one. Each grid is instead cut from a larger
// binning that runs to the pitch boundary, with guard rows and columns
// around the wanted cells.
func Positional(x, y, values []float64, d *dim.Spec, layout, statistic string) ([]*BinnedStatistic, error) {
	px := d.PositionalX()
	py := d.PositionalY()
	switch layout {
	case PositionalFull:
		// The touchline bands are the outer rows of a three row
		// grid. Its middle row is thrown away.
		b, err := Bin2DEdges(x, y, values, d, statistic, px, pick(py, 0, 1, 4, 5))
		if err != nil {
			return nil, errors.Trace(err)
		}
		low := b.sliceRows(0, 1)
		high := b.sliceRows(2, 3)

		b, err = Bin2DEdges(x, y, values, d, statistic, pick(px, 0, 1, 3, 5, 6), py)
		if err != nil {
			return nil, errors.Trace(err)
		}
		middle := b.sliceRows(1, 4).sliceCols(1, 3)

		b, err = Bin2DEdges(x, y, values, d, statistic, pick(px, 0, 1, 2, 5, 6), pick(py, 0, 1, 4, 5))
		if err != nil {
			return nil, errors.Trace(err)
		}
		b = b.sliceRows(1, 2)
		left := b.sliceCols(0, 1)
		right := b.sliceCols(3, 4)

		return []*BinnedStatistic{low, high, middle, left, right}, nil
	case PositionalHorizontal:
		b, err := Bin2DEdges(x, y, values, d, statistic, pick(px, 0, 6), py)
		if err != nil {
			return nil, errors.Trace(err)
		}
		return []*BinnedStatistic{b}, nil
	case PositionalVertical:
		b, err := Bin2DEdges(x, y, values, d, statistic, px, pick(py, 0, 5))
		if err != nil {
			return nil, errors.Trace(err)
		}
		return []*BinnedStatistic{b}, nil
	}
	return nil, errors.NotValidf("layout %q, should be %q, %q or %q",
		layout, PositionalFull, PositionalHorizontal, PositionalVertical)
}

// sliceRows cuts rows r0 to r1 out of the grid, keeping the enclosing
// edges.
func (b *BinnedStatistic) sliceRows(r0, r1 int) *BinnedStatistic {
	return &BinnedStatistic{
		Stat:   b.Stat[r0:r1],
		XEdges: b.XEdges,
		YEdges: b.YEdges[r0 : r1+1],
		CX:     b.CX,
		CY:     b.CY[r0:r1],
	}
}

// sliceCols cuts columns c0 to c1 out of the grid, keeping the
// enclosing edges.
func (b *BinnedStatistic) sliceCols(c0, c1 int) *BinnedStatistic {
	rows := make([][]float64, len(b.Stat))
	for r := range rows {
		rows[r] = b.Stat[r][c0:c1]
	}
	return &BinnedStatistic{
		Stat:   rows,
		XEdges: b.XEdges[c0 : c1+1],
		YEdges: b.YEdges,
		CX:     b.CX[c0:c1],
		CY:     b.CY,
	}
}

func pick(v []float64, idx ...int) []float64 {
	p := make([]float64, len(idx))
	for i, j := range idx {
		p[i] = v[j]
	}
	return p
}
