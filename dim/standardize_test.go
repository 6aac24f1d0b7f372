package dim

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTransformKnownPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		from, to     string
		x, y         float64
		wantX, wantY float64
	}{
		// penalty spot, kickoff spot and corners between providers
		{"statsbomb", "uefa", 12, 40, 11, 34},
		{"statsbomb", "uefa", 60, 40, 52.5, 34},
		{"statsbomb", "uefa", 0, 0, 0, 68},
		{"statsbomb", "uefa", 120, 80, 105, 0},
		{"statsbomb", "opta", 12, 40, 11.5, 50},
		{"statsbomb", "wyscout", 60, 40, 50, 50},
		{"wyscout", "statsbomb", 50, 50, 60, 40},
		{"opta", "uefa", 50, 50, 52.5, 34},
		{"opta", "uefa", 11.5, 50, 11, 34},
		{"uefa", "statsbomb", 94, 34, 108, 40},
	}
	for _, tc := range cases {
		s, err := NewStandardizer(mustSpec(t, tc.from, 0, 0), mustSpec(t, tc.to, 0, 0))
		if err != nil {
			t.Fatalf("%s to %s: %v", tc.from, tc.to, err)
		}
		gotX, gotY := s.Transform(tc.x, tc.y)
		if !approxEq(gotX, tc.wantX, 1e-9) || !approxEq(gotY, tc.wantY, 1e-9) {
			t.Errorf("%s to %s: (%g, %g) became (%g, %g), want (%g, %g)",
				tc.from, tc.to, tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestTransformOriginCentered(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	from := mustSpec(t, StatsBomb, 0, 0)
	to, err := New(Tracab, 68, 105)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStandardizer(from, to)
	if err != nil {
		t.Fatal(err)
	}
	assertPoint := func(x, y, wantX, wantY float64) {
		t.Helper()
		gotX, gotY := s.Transform(x, y)
		assert.InDelta(t, wantX, gotX, 1e-9)
		assert.InDelta(t, wantY, gotY, 1e-9)
	}
	// kickoff spot, penalty spot and two corners
	assertPoint(60, 40, 0, 0)
	assertPoint(12, 40, -4150, 0)
	assertPoint(0, 0, -5250, 3400)
	assertPoint(120, 80, 5250, -3400)
}

func TestTransformClipsToExtent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := NewStandardizer(mustSpec(t, StatsBomb, 0, 0), mustSpec(t, UEFA, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	x, y := s.Transform(130, 90)
	assert.InDelta(t, 105, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	x, y = s.Transform(-5, -5)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 68, y, 1e-9)
}

func TestTransformNaN(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := NewStandardizer(mustSpec(t, StatsBomb, 0, 0), mustSpec(t, UEFA, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	x, y := s.Transform(math.NaN(), 40)
	if !math.IsNaN(x) {
		t.Errorf("got x = %g, want NaN", x)
	}
	assert.InDelta(t, 34, y, 1e-9)
	x, y = s.Transform(12, math.NaN())
	assert.InDelta(t, 11, x, 1e-9)
	if !math.IsNaN(y) {
		t.Errorf("got y = %g, want NaN", y)
	}
}

func TestRoundTrips(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	targets := []struct {
		pitchType     string
		width, length float64
	}{
		{"uefa", 0, 0},
		{"opta", 0, 0},
		{"wyscout", 0, 0},
		{"impect", 0, 0},
		{"tracab", 68, 105},
		{"metricasports", 68, 105},
		{"custom", 68, 105},
		{"skillcorner", 62, 98},
	}
	from := mustSpec(t, StatsBomb, 0, 0)
	for _, target := range targets {
		to, err := New(target.pitchType, target.width, target.length)
		if err != nil {
			t.Fatalf("New(%q): %v", target.pitchType, err)
		}
		s, err := NewStandardizer(from, to)
		if err != nil {
			t.Fatalf("standardizer to %q: %v", target.pitchType, err)
		}
		for x := 0.0; x <= 120; x += 7.5 {
			for y := 0.0; y <= 80; y += 5 {
				tx, ty := s.Transform(x, y)
				if !to.Contains(tx, ty) {
					t.Errorf("to %s: (%g, %g) became (%g, %g), outside the pitch",
						target.pitchType, x, y, tx, ty)
				}
				gotX, gotY := s.Reverse(tx, ty)
				if !approxEq(gotX, x, 1e-6) || !approxEq(gotY, y, 1e-6) {
					t.Errorf("to %s: (%g, %g) round-tripped to (%g, %g)",
						target.pitchType, x, y, gotX, gotY)
				}
			}
		}
	}
}

func TestTransformAll(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := NewStandardizer(mustSpec(t, StatsBomb, 0, 0), mustSpec(t, UEFA, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	xs := []float64{12, 60, 108}
	ys := []float64{40, 40, 40}
	gotX, gotY := s.TransformAll(xs, ys)
	wantX := []float64{11, 52.5, 94}
	for i := range wantX {
		assert.InDelta(t, wantX[i], gotX[i], 1e-9)
		assert.InDelta(t, 34.0, gotY[i], 1e-9)
	}
	backX, backY := s.ReverseAll(gotX, gotY)
	for i := range xs {
		assert.InDelta(t, xs[i], backX[i], 1e-9)
		assert.InDelta(t, ys[i], backY[i], 1e-9)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("TransformAll did not panic on mismatched lengths")
		}
	}()
	s.TransformAll([]float64{1, 2}, []float64{1})
}

func TestStandardizerValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, err := NewStandardizer(nil, mustSpec(t, UEFA, 0, 0)); err == nil {
		t.Errorf("nil source accepted")
	}
	if _, err := NewStandardizer(mustSpec(t, UEFA, 0, 0), &Spec{}); err == nil {
		t.Errorf("uninitialized target accepted")
	}
}

func TestTinyPitchCollapsedLandmarks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// on a 33m long pitch the penalty area edges sit exactly on the
	// halfway line, collapsing three x landmarks into one
	tiny, err := New(Custom, 68, 33)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewStandardizer(mustSpec(t, StatsBomb, 0, 0), tiny)
	if err != nil {
		t.Fatal(err)
	}
	x, y := s.Transform(60, 40)
	assert.InDelta(t, 16.5, x, 1e-9)
	assert.InDelta(t, 34, y, 1e-9)
	if math.IsNaN(x) || math.IsNaN(y) {
		t.Fatalf("collapsed landmarks produced NaN")
	}
}
