package pitch

import (
	"image/color"
	"math"
	"testing"

	"github.com/juju/errors"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/vdobler/pitch/dim"
	"github.com/vdobler/pitch/geom"
	"github.com/vdobler/pitch/stat"
)

func TestRampColors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cm := Colormap{color.Black, color.White}
	got := rampColors([]float64{0, 5, 10}, cm)
	want := []color.Color{color.Black, color.White, color.White}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d: got %v, want %v", i, got[i], want[i])
		}
	}
	// a single distinct value maps to the palette start
	got = rampColors([]float64{7, 7}, cm)
	if got[0] != color.Black || got[1] != color.Black {
		t.Errorf("got %v for equal values, want all black", got)
	}
	got = rampColors([]float64{math.NaN(), 3, 9}, cm)
	if got[0] != color.Black {
		t.Errorf("got %v for NaN, want the first color", got[0])
	}
}

func TestTranspose(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	got := transpose([][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Errorf("cell %d,%d: got %g, want %g", r, c, got[r][c], want[r][c])
			}
		}
	}
	if transpose(nil) != nil {
		t.Errorf("transposing nothing should stay nothing")
	}
}

func TestGridEdges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	got := gridEdges([]float64{10, 20, 30})
	want := []float64{5, 15, 25, 35}
	if len(got) != len(want) {
		t.Fatalf("got %d edges, want %d", len(got), len(want))
	}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
	got = gridEdges([]float64{7})
	assert.InDelta(t, 6.5, got[0], 1e-12)
	assert.InDelta(t, 7.5, got[1], 1e-12)
	if got := gridEdges(nil); len(got) != 0 {
		t.Errorf("got %v for no centers, want no edges", got)
	}
}

func TestMeshOrientation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := &stat.BinnedStatistic{
		Stat:   [][]float64{{1, 2}, {3, 4}},
		XEdges: []float64{0, 60, 120},
		YEdges: []float64{0, 40, 80},
		CX:     []float64{30, 90},
		CY:     []float64{20, 60},
	}
	p := mustPitch(t, Options{})
	m := p.mesh(b, Viridis())
	if m.vals[1][0] != 3 || m.xEdges[1] != 60 || m.yEdges[1] != 40 {
		t.Errorf("horizontal mesh should keep the statistic's layout")
	}
	v := mustPitch(t, Options{Vertical: true})
	m = v.mesh(b, Viridis())
	// rows and columns swap on a vertical pitch
	if m.vals[1][0] != 2 || m.xEdges[1] != 40 || m.yEdges[1] != 60 {
		t.Errorf("vertical mesh should transpose the statistic")
	}
}

func TestHeatmap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	plt, err := p.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := p.Heatmap(plt, nil, HeatmapOptions{}); !errors.IsNotValid(err) {
		t.Errorf("got %v for a nil statistic, want a NotValid", err)
	}
	x := []float64{10, 10, 70, 110}
	y := []float64{10, 30, 40, 70}
	b, err := stat.Bin2D(x, y, nil, p.Spec, stat.Count, 6, 4)
	if err != nil {
		t.Fatalf("Bin2D: %v", err)
	}
	if err := p.Heatmap(plt, b, HeatmapOptions{Edge: color.White}); err != nil {
		t.Errorf("Heatmap: %v", err)
	}

	bs, err := stat.Positional(x, y, nil, p.Spec, stat.PositionalFull, stat.Count)
	if err != nil {
		t.Fatalf("Positional: %v", err)
	}
	if err := p.HeatmapPositional(plt, bs, HeatmapOptions{}); err != nil {
		t.Errorf("HeatmapPositional: %v", err)
	}
	if err := p.LabelHeatmap(plt, bs, LabelOptions{ExcludeZeros: true}); err != nil {
		t.Errorf("LabelHeatmap: %v", err)
	}
	if err := p.HeatmapPositional(plt, nil, HeatmapOptions{}); !errors.IsNotValid(err) {
		t.Errorf("got %v for no statistics, want a NotValid", err)
	}
}

func TestArrowsAndFlow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	plt, err := p.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	xs := []float64{10, 40, 60}
	ys := []float64{20, 30, 70}
	xe := []float64{30, 80, 90}
	ye := []float64{20, 50, 60}
	if err := p.Arrows(plt, xs, ys, xe, ye, ArrowOptions{}); err != nil {
		t.Errorf("Arrows: %v", err)
	}
	if err := p.Arrows(plt, xs, ys, xe, []float64{1}, ArrowOptions{}); !errors.IsNotValid(err) {
		t.Errorf("got %v for mismatched slices, want a NotValid", err)
	}
	if err := p.Flow(plt, xs, ys, xe, ye, FlowOptions{}); err != nil {
		t.Errorf("Flow: %v", err)
	}
	if err := p.Flow(plt, xs, ys, xe, ye, FlowOptions{
		ArrowType: stat.ArrowScale, Color: color.Black, BinsX: 2, BinsY: 2,
	}); err != nil {
		t.Errorf("Flow scale: %v", err)
	}
}

func TestArrowDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := ArrowOptions{}.marks([]float64{0}, []float64{0}, []float64{1}, []float64{1})
	assert.InDelta(t, 4, float64(a.width), 1e-9)
	assert.InDelta(t, 3, a.headWidth, 1e-9)
	assert.InDelta(t, 5, a.headLength, 1e-9)
	assert.InDelta(t, 4.5, a.headAxisLength, 1e-9)
	if len(a.colors) != 1 || a.colors[0] != defaultChartColor {
		t.Errorf("got colors %v, want the chart blue", a.colors)
	}
	if a.fill(0) != defaultChartColor {
		t.Errorf("a single color should fill every arrow")
	}
	b := ArrowOptions{Colors: []color.Color{color.Black, color.White}}.marks(
		[]float64{0, 0}, []float64{0, 0}, []float64{1, 1}, []float64{1, 1})
	if b.fill(1) != color.White {
		t.Errorf("per arrow colors should be kept")
	}
}

func TestHexbin(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	plt, err := p.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := p.Hexbin(plt, []float64{1}, []float64{1, 2}, HexbinOptions{}); !errors.IsNotValid(err) {
		t.Errorf("got %v for mismatched slices, want a NotValid", err)
	}
	x := []float64{20, 22, 24, 60, 61, 100, math.NaN()}
	y := []float64{20, 21, 22, 40, 41, 60, 10}
	if err := p.Hexbin(plt, x, y, HexbinOptions{Edge: color.White}); err != nil {
		t.Errorf("Hexbin: %v", err)
	}
	v := mustPitch(t, Options{Vertical: true})
	vplt, err := v.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := v.Hexbin(vplt, x, y, HexbinOptions{GridX: 10, GridY: 10}); err != nil {
		t.Errorf("vertical Hexbin: %v", err)
	}
}

func TestPolygonAndHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	plt, err := p.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	x := []float64{20, 40, 60, 40, 30}
	y := []float64{20, 10, 30, 60, 30}
	hull, err := p.ConvexHull(x, y)
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	if len(hull) != 4 {
		t.Errorf("got a hull of %d vertices, want 4", len(hull))
	}
	if !hull.Contains(arithm.P(30, 30)) {
		t.Errorf("the hull should contain the interior point")
	}
	p.Polygon(plt, []geom.Polygon{hull}, PolygonOptions{Alpha: 0.3, Edge: color.Black})
	if _, err := p.ConvexHull(x, y[:2]); !errors.IsNotValid(err) {
		t.Errorf("got %v for mismatched slices, want a NotValid", err)
	}
}

func TestVoronoi(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	x := []float64{30, 90, 60, 60}
	y := []float64{40, 40, 20, 60}
	team := []bool{true, false, true, false}
	first, second, err := p.Voronoi(x, y, team)
	if err != nil {
		t.Fatalf("Voronoi: %v", err)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("got %d and %d cells, want 2 and 2", len(first), len(second))
	}
	if !first[0].Contains(arithm.P(30, 40)) {
		t.Errorf("the first cell should contain its player")
	}
	if _, _, err := p.Voronoi(x, y, team[:2]); !errors.IsNotValid(err) {
		t.Errorf("got %v for mismatched teams, want a NotValid", err)
	}

	// opta units are not to scale, the cells are computed on the
	// standardized pitch and mapped back
	o := mustPitch(t, Options{Type: dim.Opta})
	first, _, err = o.Voronoi([]float64{30, 70}, []float64{50, 50}, []bool{true, false})
	if err != nil {
		t.Fatalf("Voronoi: %v", err)
	}
	if len(first) != 1 || !first[0].Contains(arithm.P(30, 50)) {
		t.Errorf("the standardized cell should still contain its player")
	}
}

func TestGoalAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	plt, err := p.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := p.GoalAngle(plt, []float64{100}, []float64{40}, "right", PolygonOptions{}); err != nil {
		t.Errorf("GoalAngle: %v", err)
	}
	if err := p.GoalAngle(plt, []float64{20}, []float64{40}, "left", PolygonOptions{}); err != nil {
		t.Errorf("GoalAngle left: %v", err)
	}
	if err := p.GoalAngle(plt, []float64{1}, []float64{1}, "top", PolygonOptions{}); !errors.IsNotValid(err) {
		t.Errorf("got %v for goal top, want a NotValid", err)
	}
}

func TestKDE(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	plt, err := p.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := p.KDE(plt, []float64{1}, []float64{1, 2}, KDEOptions{}); !errors.IsNotValid(err) {
		t.Errorf("got %v for mismatched slices, want a NotValid", err)
	}
	x := []float64{30, 35, 40, 42, 50, 55}
	y := []float64{30, 40, 35, 45, 40, 38}
	if err := p.KDE(plt, x, y, KDEOptions{
		KDE:  stat.KDE2D{N: 40},
		Fill: true,
	}); err != nil {
		t.Errorf("KDE: %v", err)
	}
}

func TestAnnotate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	plt, err := p.Draw()
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := p.Annotate(plt, "kickoff", 60, 40, TextOptions{}); err != nil {
		t.Errorf("Annotate: %v", err)
	}
}
