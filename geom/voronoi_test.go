package geom

import (
	"testing"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestVoronoiTwoSites(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ext := NewRect(0, 120, 0, 80)
	cells, err := VoronoiCells([]float64{30, 90}, []float64{40, 40}, ext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	// The bisector is the vertical line x=60, splitting the pitch in half.
	assert.InDelta(t, 4800, cells[0].Area(), 1e-9)
	assert.InDelta(t, 4800, cells[1].Area(), 1e-9)
	if !cells[0].Contains(arithm.P(30, 40)) {
		t.Errorf("left cell does not contain its own site")
	}
	if cells[0].Contains(arithm.P(90, 40)) {
		t.Errorf("left cell contains the other site")
	}
}

func TestVoronoiQuadrants(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x := []float64{25, 75, 25, 75}
	y := []float64{25, 25, 75, 75}
	cells, err := VoronoiCells(x, y, NewRect(0, 100, 0, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range cells {
		assert.InDelta(t, 2500, cells[i].Area(), 1e-9, "cell %d", i)
		if !cells[i].Contains(arithm.P(x[i], y[i])) {
			t.Errorf("cell %d does not contain its site", i)
		}
	}

	first, second := SplitByTeam(cells, []bool{true, false, true, false})
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("got team split %d/%d, want 2/2", len(first), len(second))
	}
	if len(first) == 2 && !first[1].Contains(arithm.P(25, 75)) {
		t.Errorf("first team got the wrong cells")
	}
}

func TestVoronoiTilesExtent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x := []float64{10, 50, 90, 30, 70, 100, 5, 60}
	y := []float64{10, 30, 60, 50, 20, 10, 60, 40}
	cells, err := VoronoiCells(x, y, NewRect(0, 105, 0, 68))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sum float64
	for i := range cells {
		a := cells[i].Area()
		if a <= 0 {
			t.Errorf("cell %d has area %g, want positive", i, a)
		}
		sum += a
		if !cells[i].Contains(arithm.P(x[i], y[i])) {
			t.Errorf("cell %d does not contain its site", i)
		}
	}
	assert.InDelta(t, 105*68, sum, 1e-6)
}

func TestVoronoiClampsOutsideSites(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// The first site stands beyond the right goal line and is treated
	// as standing on it, at (120,40).
	cells, err := VoronoiCells([]float64{130, 60}, []float64{40, 40}, NewRect(0, 120, 0, 80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cells[0].Contains(arithm.P(110, 40)) {
		t.Errorf("clamped site lost its cell near the goal line")
	}
	if cells[0].Contains(arithm.P(80, 40)) {
		t.Errorf("clamped site's cell reaches past the bisector")
	}
}

func TestVoronoiSingleSite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cells, err := VoronoiCells([]float64{60}, []float64{40}, NewRect(0, 120, 0, 80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cells) != 1 || len(cells[0]) != 4 {
		t.Fatalf("got %d cells, want the full pitch rectangle", len(cells))
	}
	assert.InDelta(t, 9600, cells[0].Area(), 1e-9)
}

func TestVoronoiCoincidentSites(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cells, err := VoronoiCells([]float64{50, 50, 100}, []float64{40, 40, 40}, NewRect(0, 120, 0, 80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two players on the same spot share the cell left of x=75.
	assert.InDelta(t, 75*80, cells[0].Area(), 1e-9)
	assert.InDelta(t, 75*80, cells[1].Area(), 1e-9)
	assert.InDelta(t, 45*80, cells[2].Area(), 1e-9)
}

func TestVoronoiSizeMismatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := VoronoiCells([]float64{1, 2}, []float64{1}, NewRect(0, 120, 0, 80))
	if !errors.IsNotValid(err) {
		t.Errorf("got %v, want not valid error", err)
	}
}

func TestVoronoiCellsConvex(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x := []float64{20, 40, 60, 80, 100, 55, 65}
	y := []float64{15, 65, 25, 55, 35, 45, 10}
	cells, err := VoronoiCells(x, y, NewRect(0, 120, 0, 80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, cell := range cells {
		for j := range cell {
			a := cell[j]
			b := cell[(j+1)%len(cell)]
			c := cell[(j+2)%len(cell)]
			if crossz(a, b, c) < -1e-9 {
				t.Errorf("cell %d is not convex at vertex %d", i, (j+1)%len(cell))
			}
		}
	}
}
