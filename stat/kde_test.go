package stat

import (
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/vdobler/pitch/geom"
)

func TestKDE2DWindow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := KDE2D{N: 101, BandwidthX: 10, BandwidthY: 10}
	x := []float64{30, 60, 90}
	y := []float64{20, 40, 60}
	g, err := k.Grid(x, y, geom.NewRect(-1000, 1000, -1000, 1000))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	c, r := g.Dims()
	if c != 101 || r != 101 {
		t.Fatalf("Dims() = %d, %d, want 101, 101", c, r)
	}
	// window is the data range plus three bandwidths on each side
	assert.InDelta(t, 0, g.GridX[0], 1e-9)
	assert.InDelta(t, 120, g.GridX[c-1], 1e-9)
	assert.InDelta(t, -10, g.GridY[0], 1e-9)
	assert.InDelta(t, 90, g.GridY[r-1], 1e-9)

	// the clip rectangle caps the window
	g, err = k.Grid(x, y, geom.NewRect(0, 105, 0, 68))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	assert.InDelta(t, 0, g.GridX[0], 1e-9)
	assert.InDelta(t, 105, g.GridX[100], 1e-9)
	assert.InDelta(t, 0, g.GridY[0], 1e-9)
	assert.InDelta(t, 68, g.GridY[100], 1e-9)
}

func TestKDE2DDensity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := KDE2D{N: 101, BandwidthX: 10, BandwidthY: 10}
	g, err := k.Grid([]float64{40, 80}, []float64{40, 40}, geom.NewRect(-1000, 1000, -1000, 1000))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	c, r := g.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if g.Density[i][j] <= 0 {
				t.Fatalf("Density[%d][%d] = %g, want positive", i, j, g.Density[i][j])
			}
			// the two locations mirror the window, so must the estimate
			assert.InDelta(t, g.Density[i][c-1-j], g.Density[i][j], 1e-12)
		}
	}
	if z := g.Z(0, 0); z != g.Density[0][0] {
		t.Errorf("Z(0,0) = %g, want %g", z, g.Density[0][0])
	}
}

func TestKDE2DIntegral(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := KDE2D{N: 101, BandwidthX: 10, BandwidthY: 10}
	g, err := k.Grid([]float64{30, 60, 90}, []float64{20, 40, 60}, geom.NewRect(-1000, 1000, -1000, 1000))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	dx := g.GridX[1] - g.GridX[0]
	dy := g.GridY[1] - g.GridY[0]
	total := 0.0
	for r := 0; r < len(g.GridY)-1; r++ {
		for c := 0; c < len(g.GridX)-1; c++ {
			total += (g.Density[r][c] + g.Density[r][c+1] +
				g.Density[r+1][c] + g.Density[r+1][c+1]) / 4 * dx * dy
		}
	}
	assert.InDelta(t, 1, total, 0.01)
}

func TestKDE2DDefaultBandwidth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Scott's rule: std * n^(-1/6) = sqrt(50) * 2^(-1/6)
	g, err := KDE2D{N: 51}.Grid([]float64{0, 10}, []float64{0, 10}, geom.NewRect(-100, 110, -100, 110))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	assert.InDelta(t, -18.898815748423097, g.GridX[0], 1e-9)
	assert.InDelta(t, 28.898815748423097, g.GridX[50], 1e-9)
	assert.InDelta(t, -18.898815748423097, g.GridY[0], 1e-9)
}

func TestKDE2DSkipsNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	k := KDE2D{N: 11, BandwidthX: 10, BandwidthY: 10}
	g, err := k.Grid([]float64{math.NaN(), 40, 80}, []float64{40, 40, 40}, geom.NewRect(-1000, 1000, -1000, 1000))
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	assert.InDelta(t, 10, g.GridX[0], 1e-9)
	assert.InDelta(t, 110, g.GridX[10], 1e-9)
}

func TestKDE2DValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clip := geom.NewRect(0, 105, 0, 68)
	check := func(name string, err error) {
		t.Helper()
		if !errors.IsNotValid(err) {
			t.Errorf("%s: err = %v, want NotValid", name, err)
		}
	}

	_, err := KDE2D{}.Grid([]float64{1}, []float64{1, 2}, clip)
	check("size mismatch", err)
	_, err = KDE2D{}.Grid([]float64{5, math.NaN()}, []float64{5, 5}, clip)
	check("single location", err)
	_, err = KDE2D{}.Grid([]float64{5, 5}, []float64{1, 2}, clip)
	check("no spread", err)
	_, err = KDE2D{BandwidthX: -1, BandwidthY: 1}.Grid([]float64{1, 2}, []float64{1, 2}, clip)
	check("negative bandwidth", err)
}
