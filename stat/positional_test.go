package stat

import (
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/vdobler/pitch/dim"
)

func countAll(grids []*BinnedStatistic) float64 {
	total := 0.0
	for _, g := range grids {
		for _, row := range g.Stat {
			for _, v := range row {
				total += v
			}
		}
	}
	return total
}

func TestPositionalFullLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.StatsBomb, 0, 0)
	grids, err := Positional([]float64{10}, []float64{40}, nil, d, PositionalFull, Count)
	if err != nil {
		t.Fatalf("Positional: %v", err)
	}
	if len(grids) != 5 {
		t.Fatalf("got %d grids, want 5", len(grids))
	}
	shapes := []struct{ cols, rows int }{{6, 1}, {6, 1}, {2, 3}, {1, 1}, {1, 1}}
	for i, s := range shapes {
		c, r := grids[i].Dims()
		if c != s.cols || r != s.rows {
			t.Errorf("grid %d is %dx%d, want %dx%d", i, c, r, s.cols, s.rows)
		}
	}

	// (10,40) lies in the penalty area on the left
	left := grids[3]
	assert.Equal(t, []float64{0, 18}, left.XEdges)
	assert.Equal(t, []float64{18, 62}, left.YEdges)
	if left.Stat[0][0] != 1 {
		t.Errorf("left penalty area count %g, want 1", left.Stat[0][0])
	}
	right := grids[4]
	assert.Equal(t, []float64{102, 120}, right.XEdges)
	if total := countAll(grids); total != 1 {
		t.Errorf("total count %g, want 1", total)
	}
}

// A point on the border of the penalty area belongs to the zone on its
// right, not to the penalty area.
func TestPositionalZoneEdges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.StatsBomb, 0, 0)
	grids, err := Positional([]float64{18}, []float64{40}, nil, d, PositionalFull, Count)
	if err != nil {
		t.Fatalf("Positional: %v", err)
	}
	middle := grids[2]
	if middle.Stat[1][0] != 1 {
		t.Errorf("middle grid %v, want the count in row 1, column 0", middle.Stat)
	}
	if grids[3].Stat[0][0] != 0 {
		t.Errorf("left penalty area count %g, want 0", grids[3].Stat[0][0])
	}
	if total := countAll(grids); total != 1 {
		t.Errorf("total count %g, want 1", total)
	}
}

// Every location must fall into exactly one of the twenty zones, also
// when it sits on a zone edge.
func TestPositionalCountsConserved(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.StatsBomb, 0, 0)
	var x, y []float64
	for i := 0; i < 60; i++ {
		x = append(x, math.Mod(float64(i)*37, 120))
		y = append(y, math.Mod(float64(i)*23, 80))
	}
	x = append(x, 0, 18, 39, 60, 81, 102, 120, 18, 102)
	y = append(y, 0, 18, 30, 50, 62, 80, 40, 40, 62)

	grids, err := Positional(x, y, nil, d, PositionalFull, Count)
	if err != nil {
		t.Fatalf("Positional: %v", err)
	}
	if total := countAll(grids); total != float64(len(x)) {
		t.Errorf("total count %g, want %d", total, len(x))
	}
}

func TestPositionalHorizontalVertical(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.StatsBomb, 0, 0)
	x := []float64{10, 60, 110}
	y := []float64{10, 40, 70}

	grids, err := Positional(x, y, nil, d, PositionalHorizontal, Count)
	if err != nil {
		t.Fatalf("Positional: %v", err)
	}
	if len(grids) != 1 {
		t.Fatalf("got %d grids, want 1", len(grids))
	}
	c, r := grids[0].Dims()
	if c != 1 || r != 5 {
		t.Errorf("horizontal grid is %dx%d, want 1x5", c, r)
	}
	assert.Equal(t, []float64{0, 120}, grids[0].XEdges)
	if total := countAll(grids); total != 3 {
		t.Errorf("total count %g, want 3", total)
	}

	grids, err = Positional(x, y, nil, d, PositionalVertical, Count)
	if err != nil {
		t.Fatalf("Positional: %v", err)
	}
	c, r = grids[0].Dims()
	if c != 6 || r != 1 {
		t.Errorf("vertical grid is %dx%d, want 6x1", c, r)
	}
	assert.Equal(t, []float64{0, 80}, grids[0].YEdges)
}

func TestPositionalBadLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.StatsBomb, 0, 0)
	_, err := Positional(nil, nil, nil, d, "diagonal", Count)
	if !errors.IsNotValid(err) {
		t.Errorf("err = %v, want NotValid", err)
	}
}
