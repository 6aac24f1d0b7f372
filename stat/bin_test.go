package stat

import (
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/vdobler/pitch/dim"
)

func mustSpec(t *testing.T, pitchType string, w, l float64) *dim.Spec {
	t.Helper()
	d, err := dim.New(pitchType, w, l)
	if err != nil {
		t.Fatalf("cannot create %s spec: %v", pitchType, err)
	}
	return d
}

func TestBin2DCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.StatsBomb, 0, 0)
	x := []float64{30, 100, 100, 100}
	y := []float64{10, 70, 70, 10}
	b, err := Bin2D(x, y, nil, d, Count, 2, 2)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	want := [][]float64{{1, 1}, {0, 2}}
	for r := range want {
		for c := range want[r] {
			if b.Stat[r][c] != want[r][c] {
				t.Errorf("Stat[%d][%d] = %g, want %g", r, c, b.Stat[r][c], want[r][c])
			}
		}
	}
	assert.Equal(t, []float64{0, 60, 120}, b.XEdges)
	assert.Equal(t, []float64{0, 40, 80}, b.YEdges)
	assert.Equal(t, []float64{30, 90}, b.CX)
	assert.Equal(t, []float64{20, 60}, b.CY)
}

func TestBin2DGridInterface(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.UEFA, 0, 0)
	b, err := Bin2D([]float64{10}, []float64{10}, nil, d, Count, 3, 2)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	c, r := b.Dims()
	if c != 3 || r != 2 {
		t.Fatalf("Dims() = %d, %d, want 3, 2", c, r)
	}
	assert.InDelta(t, 17.5, b.X(0), 1e-9)
	assert.InDelta(t, 51, b.Y(1), 1e-9)
	if b.Z(0, 0) != 1 {
		t.Errorf("Z(0,0) = %g, want 1", b.Z(0, 0))
	}
}

// A location on an interior edge belongs to the cell visually above
// it, on inverted specs the one with the smaller y coordinates.
func TestBin2DEdgeRule(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sb := mustSpec(t, dim.StatsBomb, 0, 0)
	b, err := Bin2D([]float64{10}, []float64{40}, nil, sb, Count, 2, 2)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	if b.Stat[0][0] != 1 || b.Stat[1][0] != 0 {
		t.Errorf("statsbomb edge row: got %v, want the count in row 0", b.Stat)
	}

	uefa := mustSpec(t, dim.UEFA, 0, 0)
	b, err = Bin2D([]float64{10}, []float64{34}, nil, uefa, Count, 2, 2)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	if b.Stat[1][0] != 1 || b.Stat[0][0] != 0 {
		t.Errorf("uefa edge row: got %v, want the count in row 1", b.Stat)
	}
}

func TestBin2DStatistics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.UEFA, 0, 0)
	x := []float64{10, 20, 30, 40}
	y := []float64{10, 20, 30, 40}
	vals := []float64{1, 2, 3, 4}
	cases := []struct {
		statistic string
		want      float64
	}{
		{Count, 4},
		{Sum, 10},
		{Mean, 2.5},
		{Std, 1.118033988749895},
		{Median, 2.5},
		{Min, 1},
		{Max, 4},
	}
	for _, c := range cases {
		b, err := Bin2D(x, y, vals, d, c.statistic, 1, 1)
		if err != nil {
			t.Fatalf("Bin2D %s: %v", c.statistic, err)
		}
		assert.InDelta(t, c.want, b.Stat[0][0], 1e-9, c.statistic)
	}

	b, err := Bin2D(x[:3], y[:3], []float64{9, 1, 5}, d, Median, 1, 1)
	if err != nil {
		t.Fatalf("Bin2D median: %v", err)
	}
	assert.InDelta(t, 5, b.Stat[0][0], 1e-9, "odd median")
}

func TestBin2DCircMean(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.UEFA, 0, 0)
	x := []float64{10, 20}
	y := []float64{10, 20}

	b, err := Bin2D(x, y, []float64{0, math.Pi / 2}, d, CircMean, 1, 1)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	assert.InDelta(t, math.Pi/4, b.Stat[0][0], 1e-9)

	// mean direction points down, the result must wrap into [0,2pi)
	b, err = Bin2D(x, y, []float64{3*math.Pi/2 - 0.2, 3*math.Pi/2 + 0.2}, d, CircMean, 1, 1)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	assert.InDelta(t, 4.71238898038469, b.Stat[0][0], 1e-9)
}

func TestBin2DDropsAndEmptyBins(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.StatsBomb, 0, 0)
	x := []float64{10, math.NaN(), 10, 130, 10}
	y := []float64{10, 10, math.NaN(), 40, 90}
	b, err := Bin2D(x, y, nil, d, Count, 2, 2)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	total := 0.0
	for _, row := range b.Stat {
		for _, v := range row {
			total += v
		}
	}
	if total != 1 {
		t.Errorf("kept %g locations, want 1", total)
	}

	b, err = Bin2D([]float64{10}, []float64{10}, []float64{7}, d, Mean, 2, 2)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	if b.Stat[0][0] != 7 {
		t.Errorf("Stat[0][0] = %g, want 7", b.Stat[0][0])
	}
	if !math.IsNaN(b.Stat[1][1]) {
		t.Errorf("empty mean bin = %g, want NaN", b.Stat[1][1])
	}
}

func TestBin2DEdgesNonUniform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.UEFA, 0, 0)
	x := []float64{15, 50}
	y := []float64{10, 50}
	b, err := Bin2DEdges(x, y, nil, d, Count, []float64{0, 30, 105}, []float64{0, 34, 68})
	if err != nil {
		t.Fatalf("Bin2DEdges: %v", err)
	}
	if b.Stat[0][0] != 1 || b.Stat[1][1] != 1 {
		t.Errorf("got %v, want counts on the diagonal", b.Stat)
	}
	assert.Equal(t, []float64{15, 67.5}, b.CX)
	assert.Equal(t, []float64{17, 51}, b.CY)
}

func TestBin2DValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := mustSpec(t, dim.UEFA, 0, 0)
	x, y := []float64{10, 20}, []float64{10, 20}
	check := func(name string, err error) {
		t.Helper()
		if !errors.IsNotValid(err) {
			t.Errorf("%s: err = %v, want NotValid", name, err)
		}
	}

	_, err := Bin2D(x, y[:1], nil, d, Count, 2, 2)
	check("size mismatch", err)
	_, err = Bin2D(x, y, nil, d, "variance", 2, 2)
	check("unknown statistic", err)
	_, err = Bin2D(x, y, nil, d, Mean, 2, 2)
	check("missing values", err)
	_, err = Bin2D(x, y, []float64{1}, d, Mean, 2, 2)
	check("values mismatch", err)
	_, err = Bin2D(x, y, nil, d, Count, 0, 2)
	check("zero bins", err)
	_, err = Bin2DEdges(x, y, nil, d, Count, []float64{0, 60, 30}, []float64{0, 68})
	check("unsorted edges", err)
	_, err = Bin2DEdges(x, y, nil, d, Count, []float64{0}, []float64{0, 68})
	check("single edge", err)
}
