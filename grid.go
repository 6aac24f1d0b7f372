package pitch

import (
	"github.com/juju/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GridSpec lays out a grid of pitch plots with an optional title
// panel above and endnote panel below. Heights, widths and positions
// are fractions of the figure, the figure width follows from the
// layout so that the pitches keep their proportions. Start from
// DefaultGrid and override what differs:
//
//	spec := pitch.DefaultGrid
//	spec.Rows, spec.Cols = 2, 3
//	layout, err := p.Grid(spec)
type GridSpec struct {
	Rows, Cols int

	// FigHeight is the figure height, default 9 inch.
	FigHeight vg.Length

	// GridHeight is the height of the plot grid in fractions of the
	// figure height, default 0.715, and GridWidth its width in
	// fractions of the figure width, default 0.95.
	GridHeight float64
	GridWidth  float64

	// Space is the fraction of the grid height kept free between the
	// rows, default 0.05. The space between columns is chosen to
	// match it.
	Space float64

	// Left places the grid's left edge, Bottom the bottom of the
	// lowest panel. Negative values center the layout.
	Left   float64
	Bottom float64

	// Panel heights in fractions of the figure height, zero leaves
	// the panel out. The spaces sit between the panel and the grid.
	EndnoteHeight float64
	EndnoteSpace  float64
	TitleHeight   float64
	TitleSpace    float64

	// LeftPad and RightPad indent the title and endnote panels from
	// the grid edges, in fractions of the figure width.
	LeftPad, RightPad float64
}

// DefaultGrid is a single pitch with a title and an endnote.
var DefaultGrid = GridSpec{
	Rows: 1, Cols: 1,
	FigHeight:  9 * vg.Inch,
	GridHeight: 0.715, GridWidth: 0.95,
	Space: 0.05,
	Left:  -1, Bottom: -1,
	EndnoteHeight: 0.065, EndnoteSpace: 0.01,
	TitleHeight: 0.15, TitleSpace: 0.01,
}

// FigRect is a rectangle in figure fractions, origin bottom left.
type FigRect struct {
	Left, Bottom  float64
	Width, Height float64
}

// Canvas cuts the rectangle's part out of a drawing canvas, for
// drawing one plot of a grid:
//
//	img := vgimg.New(layout.FigWidth, layout.FigHeight)
//	dc := draw.New(img)
//	plt.Draw(layout.Cell(0, 0).Canvas(dc))
func (r FigRect) Canvas(dc draw.Canvas) draw.Canvas {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{
				X: dc.Min.X + vg.Length(r.Left)*w,
				Y: dc.Min.Y + vg.Length(r.Bottom)*h,
			},
			Max: vg.Point{
				X: dc.Min.X + vg.Length(r.Left+r.Width)*w,
				Y: dc.Min.Y + vg.Length(r.Bottom+r.Height)*h,
			},
		},
	}
}

// GridLayout is a computed grid layout. Cells are in row major order
// with row 0 at the top. Title and Endnote have zero Height when the
// spec left them out.
type GridLayout struct {
	FigWidth  vg.Length
	FigHeight vg.Length

	Rows, Cols int
	Cells      []FigRect
	Title      FigRect
	Endnote    FigRect
}

// Cell returns the rectangle of the plot at row and col, row 0 at the
// top.
func (l *GridLayout) Cell(row, col int) FigRect {
	return l.Cells[row*l.Cols+col]
}

// Grid computes the layout for a grid of this pitch's plots, using
// the pitch's drawing aspect for the cells.
func (c *chart) Grid(spec GridSpec) (*GridLayout, error) {
	return GridDimensions(c.axAspect, spec)
}

// GridDimensions computes a grid layout for plots with the given
// width over height aspect. The figure width is derived so that the
// cells have exactly that aspect and the column spacing matches the
// row spacing.
func GridDimensions(axAspect float64, spec GridSpec) (*GridLayout, error) {
	nrows, ncols := spec.Rows, spec.Cols
	if nrows < 1 {
		nrows = 1
	}
	if ncols < 1 {
		ncols = 1
	}
	figheight := float64(spec.FigHeight)
	if figheight <= 0 {
		figheight = float64(9 * vg.Inch)
	}
	gh, gw, space := spec.GridHeight, spec.GridWidth, spec.Space

	left := spec.Left
	if left < 0 {
		left = (1 - gw) / 2
	}
	titleSpace, endnoteSpace := spec.TitleSpace, spec.EndnoteSpace
	if spec.TitleHeight == 0 {
		titleSpace = 0
	}
	if spec.EndnoteHeight == 0 {
		endnoteSpace = 0
	}
	axesHeight := spec.EndnoteHeight + endnoteSpace + gh + spec.TitleHeight + titleSpace
	if axesHeight > 1 {
		return nil, errors.NotValidf("panels covering %g of the figure height", axesHeight)
	}
	bottom := spec.Bottom
	if bottom < 0 {
		bottom = (1 - axesHeight) / 2
	}
	if bottom+axesHeight > 1 {
		return nil, errors.NotValidf("panels reaching %g of the figure height", bottom+axesHeight)
	}
	if left+gw > 1 {
		return nil, errors.NotValidf("grid reaching %g of the figure width", left+gw)
	}

	var figwidth, spaceheight, spacewidth, axheight float64
	switch {
	case nrows > 1 && ncols > 1:
		figwidth = figheight * gh / gw * ((1-space)*axAspect*float64(ncols)/float64(nrows) +
			space*float64(ncols-1)/float64(nrows-1))
		spaceheight = gh * space / float64(nrows-1)
		spacewidth = spaceheight * figheight / figwidth
		axheight = gh * (1 - space) / float64(nrows)
	case nrows > 1:
		figwidth = figheight * gh / gw * (1 - space) * axAspect / float64(nrows)
		spaceheight = gh * space / float64(nrows-1)
		axheight = gh * (1 - space) / float64(nrows)
	case ncols > 1:
		figwidth = figheight * gh / gw * (space + axAspect*float64(ncols))
		spacewidth = gh * space * figheight / figwidth / float64(ncols-1)
		axheight = gh
	default:
		figwidth = figheight * gh * axAspect / gw
		axheight = gh
	}
	axwidth := axheight * axAspect * figheight / figwidth

	gridBottom := bottom + spec.EndnoteHeight + endnoteSpace
	l := &GridLayout{
		FigWidth:  vg.Length(figwidth),
		FigHeight: vg.Length(figheight),
		Rows:      nrows,
		Cols:      ncols,
		Cells:     make([]FigRect, nrows*ncols),
	}
	for row := 0; row < nrows; row++ {
		cb := gridBottom + float64(nrows-1-row)*(axheight+spaceheight)
		for col := 0; col < ncols; col++ {
			l.Cells[row*ncols+col] = FigRect{
				Left:   left + float64(col)*(axwidth+spacewidth),
				Bottom: cb,
				Width:  axwidth,
				Height: axheight,
			}
		}
	}
	panelLeft := left + spec.LeftPad
	panelWidth := gw - spec.LeftPad - spec.RightPad
	if spec.TitleHeight > 0 {
		l.Title = FigRect{
			Left: panelLeft, Bottom: gridBottom + gh + titleSpace,
			Width: panelWidth, Height: spec.TitleHeight,
		}
	}
	if spec.EndnoteHeight > 0 {
		l.Endnote = FigRect{
			Left: panelLeft, Bottom: bottom,
			Width: panelWidth, Height: spec.EndnoteHeight,
		}
	}
	tracer().Debugf("grid %dx%d, figure %.1fx%.1f inch",
		nrows, ncols, figwidth/float64(vg.Inch), figheight/float64(vg.Inch))
	return l, nil
}
