package stat

import (
	"math"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"github.com/vdobler/pitch/geom"
)

// ---------------------------------------------------------------------------
// Hexbin

// HexBin is one hexagonal cell, identified by its center.
type HexBin struct {
	X, Y  float64
	Count float64
}

// HexGrid is the outcome of hexagonal binning. SX and SY are the
// lattice spacings: hexagons are SX wide and 2*SY/3 tall and overlap
// vertically by SY/6 on each side.
type HexGrid struct {
	Bins   []HexBin
	SX, SY float64
}

// Hexagon returns the outline of bin i, a flat topped hexagon around
// its center.
func (g *HexGrid) Hexagon(i int) geom.Polygon {
	b := g.Bins[i]
	return geom.Polygon{
		arithm.P(b.X+g.SX/2, b.Y-g.SY/6),
		arithm.P(b.X+g.SX/2, b.Y+g.SY/6),
		arithm.P(b.X, b.Y+g.SY/3),
		arithm.P(b.X-g.SX/2, b.Y+g.SY/6),
		arithm.P(b.X-g.SX/2, b.Y-g.SY/6),
		arithm.P(b.X, b.Y-g.SY/3),
	}
}

// Hexbin counts locations per cell of a hexagonal tiling of ext with
// nx hexagons across and ny down. Bins with fewer than mincnt points
// are left out, so mincnt 0 reports the full tiling including empty
// bins. NaN locations are skipped.
//
// The tiling is made of two staggered rectangular lattices of centers,
// nx+1 by ny+1 on integer lattice coordinates and nx by ny on half
// integer ones. Each location goes to the nearest center, nearest in
// lattice coordinates with the y distance weighted triple. Locations
// that land outside their nearest lattice are dropped.
func Hexbin(x, y []float64, ext geom.Rect, nx, ny, mincnt int) (*HexGrid, error) {
	if len(x) != len(y) {
		return nil, errors.NotValidf("%d x against %d y coordinates", len(x), len(y))
	}
	if nx < 1 || ny < 1 {
		return nil, errors.NotValidf("hexagon grid %dx%d", nx, ny)
	}
	if ext.Width() == 0 || ext.Height() == 0 {
		return nil, errors.NotValidf("hexagon extent %+v", ext)
	}

	// Pad the x limits a little, otherwise roundoff can push points
	// on the right edge off the lattice.
	padding := 1e-9 * (ext.MaxX - ext.MinX)
	xmin := ext.MinX - padding
	xmax := ext.MaxX + padding
	sx := (xmax - xmin) / float64(nx)
	sy := (ext.MaxY - ext.MinY) / float64(ny)

	counts1 := make([]float64, (nx+1)*(ny+1))
	counts2 := make([]float64, nx*ny)
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		tx := (x[i] - xmin) / sx
		ty := (y[i] - ext.MinY) / sy
		ix1, iy1 := math.RoundToEven(tx), math.RoundToEven(ty)
		ix2, iy2 := math.Floor(tx), math.Floor(ty)
		d1 := (tx-ix1)*(tx-ix1) + 3*(ty-iy1)*(ty-iy1)
		d2 := (tx-ix2-0.5)*(tx-ix2-0.5) + 3*(ty-iy2-0.5)*(ty-iy2-0.5)
		if d1 < d2 {
			if ix1 < 0 || ix1 > float64(nx) || iy1 < 0 || iy1 > float64(ny) {
				continue
			}
			counts1[int(ix1)*(ny+1)+int(iy1)]++
		} else {
			if ix2 < 0 || ix2 >= float64(nx) || iy2 < 0 || iy2 >= float64(ny) {
				continue
			}
			counts2[int(ix2)*ny+int(iy2)]++
		}
	}

	g := &HexGrid{SX: sx, SY: sy}
	for i := 0; i <= nx; i++ {
		for j := 0; j <= ny; j++ {
			if c := counts1[i*(ny+1)+j]; c >= float64(mincnt) {
				bin := HexBin{X: xmin + float64(i)*sx, Y: ext.MinY + float64(j)*sy, Count: c}
				g.Bins = append(g.Bins, bin)
			}
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if c := counts2[i*ny+j]; c >= float64(mincnt) {
				bin := HexBin{X: xmin + (float64(i)+0.5)*sx, Y: ext.MinY + (float64(j)+0.5)*sy, Count: c}
				g.Bins = append(g.Bins, bin)
			}
		}
	}
	tracer().Debugf("hexbin of %d locations: %d of %d bins at least %d",
		len(x), len(g.Bins), (nx+1)*(ny+1)+nx*ny, mincnt)
	return g, nil
}
