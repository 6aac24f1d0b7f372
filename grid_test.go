package pitch

import (
	"testing"

	"github.com/juju/errors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func checkRect(t *testing.T, name string, got, want FigRect) {
	t.Helper()
	if !approxEq(got.Left, want.Left, 1e-9) || !approxEq(got.Bottom, want.Bottom, 1e-9) ||
		!approxEq(got.Width, want.Width, 1e-9) || !approxEq(got.Height, want.Height, 1e-9) {
		t.Errorf("%s: got %+v, want %+v", name, got, want)
	}
}

func TestDefaultGridLayout(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := mustPitch(t, Options{})
	l, err := p.Grid(DefaultGrid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 9.852631578947369, float64(l.FigWidth)/float64(vg.Inch), 1e-9)
	if got, want := float64(l.FigHeight)/float64(vg.Inch), 9.0; got != want {
		t.Errorf("got figure height %g, want %g", got, want)
	}
	if l.Rows != 1 || l.Cols != 1 || len(l.Cells) != 1 {
		t.Fatalf("got %dx%d with %d cells, want a single cell", l.Rows, l.Cols, len(l.Cells))
	}
	// a single column spans the full grid width
	checkRect(t, "cell", l.Cell(0, 0), FigRect{0.025, 0.1, 0.95, 0.715})
	checkRect(t, "title", l.Title, FigRect{0.025, 0.825, 0.95, 0.15})
	checkRect(t, "endnote", l.Endnote, FigRect{0.025, 0.025, 0.95, 0.065})

	// the cells keep the pitch's drawing aspect
	c := l.Cell(0, 0)
	ratio := c.Width * float64(l.FigWidth) / (c.Height * float64(l.FigHeight))
	assert.InDelta(t, p.AspectRatio(), ratio, 1e-9)
}

func TestGridDimensions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	spec := DefaultGrid
	spec.Rows, spec.Cols = 2, 3
	l, err := GridDimensions(1.5, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 15.15611842105263, float64(l.FigWidth)/float64(vg.Inch), 1e-9)
	checkRect(t, "2x3 top left", l.Cell(0, 0),
		FigRect{0.025, 0.475375, 0.3025139664804469, 0.339625})
	checkRect(t, "2x3 top right", l.Cell(0, 2),
		FigRect{0.672486033519553, 0.475375, 0.3025139664804469, 0.339625})
	checkRect(t, "2x3 bottom left", l.Cell(1, 0),
		FigRect{0.025, 0.1, 0.3025139664804469, 0.339625})
	if l.Cell(1, 2) != l.Cells[5] {
		t.Errorf("cells are row major with row 0 on top")
	}

	spec = DefaultGrid
	spec.Rows = 3
	l, err = GridDimensions(128.0/88.0, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 3.12, float64(l.FigWidth)/float64(vg.Inch), 1e-9)
	checkRect(t, "3x1 top", l.Cell(0, 0),
		FigRect{0.025, 0.1 + 2*(0.22641666666666666+0.017875), 0.95, 0.22641666666666666})
	checkRect(t, "3x1 bottom", l.Cell(2, 0),
		FigRect{0.025, 0.1, 0.95, 0.22641666666666666})

	spec = DefaultGrid
	spec.Cols = 4
	l, err = GridDimensions(0.8, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 22.014473684210525, float64(l.FigWidth)/float64(vg.Inch), 1e-9)
	checkRect(t, "1x4 second column", l.Cell(0, 1),
		FigRect{0.025 + 0.23384615384615384 + 0.004871794871794872, 0.1,
			0.23384615384615384, 0.715})
}

func TestGridWithoutPanels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := DefaultGrid
	spec.TitleHeight, spec.EndnoteHeight = 0, 0
	l, err := GridDimensions(1, spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.InDelta(t, 6.773684210526316, float64(l.FigWidth)/float64(vg.Inch), 1e-9)
	if l.Title.Height != 0 || l.Endnote.Height != 0 {
		t.Errorf("got title %+v and endnote %+v, want both left out", l.Title, l.Endnote)
	}
	// without panels the centered grid moves down
	checkRect(t, "cell", l.Cell(0, 0), FigRect{0.025, 0.1425, 0.95, 0.715})
}

func TestGridValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		name   string
		change func(*GridSpec)
	}{
		{"panels sum over one", func(s *GridSpec) { s.GridHeight = 0.9 }},
		{"grid past the right edge", func(s *GridSpec) { s.Left = 0.5 }},
		{"panels past the top edge", func(s *GridSpec) { s.Bottom = 0.5 }},
	}
	for _, tc := range cases {
		spec := DefaultGrid
		tc.change(&spec)
		if _, err := GridDimensions(1.5, spec); !errors.IsNotValid(err) {
			t.Errorf("%s: got %v, want a not valid error", tc.name, err)
		}
	}
}

func TestFigRectCanvas(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dc := draw.Canvas{
		Rectangle: vg.Rectangle{Max: vg.Point{X: 100, Y: 200}},
	}
	c := FigRect{Left: 0.25, Bottom: 0.1, Width: 0.5, Height: 0.4}.Canvas(dc)
	if !approxEq(float64(c.Min.X), 25, 1e-9) || !approxEq(float64(c.Min.Y), 20, 1e-9) ||
		!approxEq(float64(c.Max.X), 75, 1e-9) || !approxEq(float64(c.Max.Y), 100, 1e-9) {
		t.Errorf("got %v to %v, want the 25,20 to 75,100 cutout", c.Min, c.Max)
	}
}
