package pitch

import (
	"image/color"
	"math"

	"github.com/juju/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/pitch/dim"
	"github.com/vdobler/pitch/geom"
)

// ---------------------------------------------------------------------------
// chart

// frame is the sport independent part of a dimension set, the values
// the drawing layout needs.
type frame struct {
	left, right, bottom, top float64
	length, width            float64
	centerLength             float64
	aspect                   float64
	invertY                  bool
	aspectEqual              bool
}

func specFrame(d *dim.Spec) frame {
	return frame{
		left: d.Left, right: d.Right, bottom: d.Bottom, top: d.Top,
		length: d.Length, width: d.Width,
		centerLength: d.CenterLength,
		aspect:       d.Aspect,
		invertY:      d.InvertY,
		aspectEqual:  d.AspectEqual,
	}
}

func courtFrame(d *dim.Court) frame {
	return frame{
		left: d.Left, right: d.Right, bottom: d.Bottom, top: d.Top,
		length: d.Length, width: d.Width,
		centerLength: d.CenterLength,
		aspect:       d.Aspect,
		invertY:      d.InvertY,
		aspectEqual:  d.AspectEqual,
	}
}

func fieldFrame(d *dim.Field) frame {
	return frame{
		left: d.Left, right: d.Right, bottom: d.Bottom, top: d.Top,
		length: d.Length, width: d.Width,
		centerLength: d.CenterLength,
		aspect:       d.Aspect,
		invertY:      d.InvertY,
		aspectEqual:  d.AspectEqual,
	}
}

// chart is the drawing state shared by Pitch, Court and Field: the
// orientation, the axis extents derived from dimensions and padding,
// and the defaults of the chart overlays. The overlay methods that do
// not touch sport specific landmarks are defined on chart so that
// every pitch variant offers them.
type chart struct {
	vertical bool
	half     bool

	pad      Pad     // padding after provider and aspect scaling
	aspect   float64 // y over x unit scale of the drawing
	axAspect float64 // width over height of the drawing area
	extent   [4]float64
	visible  [4]float64

	rect      geom.Rect // the playing area in pitch coordinates
	hexGridX  int
	hexGridY  int
	hexExtent geom.Rect
	kdeClip   geom.Rect
}

// layout derives the drawing aspect and the axis extents from the
// dimensions, the orientation and the padding.
func (c *chart) layout(f frame) {
	c.aspect = 1
	if !f.aspectEqual {
		// Scale the aspect corrected axis so that equal padding on all
		// sides looks equal in the drawing.
		if c.vertical {
			c.aspect = 1 / f.aspect
			c.pad.Bottom *= f.aspect
			c.pad.Top *= f.aspect
		} else {
			c.aspect = f.aspect
			c.pad.Left *= f.aspect
			c.pad.Right *= f.aspect
		}
	}
	if c.vertical {
		c.setExtentVertical(f)
	} else {
		c.setExtentHorizontal(f)
	}
	c.axAspect = math.Abs(c.extent[1]-c.extent[0]) /
		(math.Abs(c.extent[3]-c.extent[2]) * c.aspect)
	c.rect = geom.NewRect(f.left, f.right, f.bottom, f.top)
}

// setExtentHorizontal computes the drawing extent of a horizontal
// pitch: x runs along the pitch from left to right goal, y across it,
// flipped for providers with an inverted y axis.
func (c *chart) setExtentHorizontal(f frame) {
	ext := [4]float64{f.left, f.right, f.bottom, f.top}
	pad := [4]float64{-c.pad.Left, c.pad.Right, -c.pad.Bottom, c.pad.Top}
	vis := [4]float64{
		-math.Min(c.pad.Left, 0), math.Min(c.pad.Right, 0),
		-math.Min(c.pad.Bottom, 0), math.Min(c.pad.Top, 0),
	}
	if c.half {
		ext[0] = f.centerLength
		vis[0] = -c.pad.Left // keep padding into the other half visible
	}
	if f.invertY {
		pad[2], pad[3] = -pad[2], -pad[3]
		vis[2], vis[3] = -vis[2], -vis[3]
	}
	for i := range ext {
		c.extent[i] = ext[i] + pad[i]
		c.visible[i] = ext[i] + vis[i]
	}

	c.hexGridX, c.hexGridY = 17, 8
	c.hexExtent = geom.NewRect(f.left, f.right, f.bottom, f.top)
	c.kdeClip = geom.NewRect(f.left, f.right, f.bottom, f.top)
}

// setExtentVertical computes the drawing extent of a vertical pitch.
// The pitch's y axis becomes the drawing's x axis with its direction
// mirrored, the pitch's x axis runs up the drawing.
func (c *chart) setExtentVertical(f frame) {
	ext := [4]float64{f.top, f.bottom, f.left, f.right}
	pad := [4]float64{c.pad.Left, -c.pad.Right, -c.pad.Bottom, c.pad.Top}
	vis := [4]float64{
		math.Min(c.pad.Left, 0), -math.Min(c.pad.Right, 0),
		-math.Min(c.pad.Bottom, 0), math.Min(c.pad.Top, 0),
	}
	if c.half {
		ext[2] = f.centerLength
		vis[2] = -c.pad.Bottom // keep padding into the other half visible
	}
	if f.invertY {
		pad[0], pad[1] = -pad[0], -pad[1]
		vis[0], vis[1] = -vis[0], -vis[1]
	}
	for i := range ext {
		c.extent[i] = ext[i] + pad[i]
		c.visible[i] = ext[i] + vis[i]
	}

	c.hexGridX, c.hexGridY = 17, 17
	c.hexExtent = geom.NewRect(math.Min(f.bottom, f.top), math.Max(f.bottom, f.top),
		f.left, f.right)
	c.kdeClip = geom.NewRect(f.top, f.bottom, f.left, f.right)
}

// validatePad rejects negative padding that leaves no pitch to draw.
func (c *chart) validatePad(f frame) error {
	padX := math.Abs(math.Min(c.pad.Left, 0) + math.Min(c.pad.Right, 0))
	padY := math.Abs(math.Min(c.pad.Bottom, 0) + math.Min(c.pad.Top, 0))
	length, width := f.length, f.width
	if c.half {
		length /= 2
	}
	alongLength, acrossPitch := padX, padY
	if c.vertical {
		alongLength, acrossPitch = padY, padX
	}
	if alongLength >= length {
		return errors.NotValidf("padding %g too negative for the pitch length %g",
			alongLength, length)
	}
	if acrossPitch >= width {
		return errors.NotValidf("padding %g too negative for the pitch width %g",
			acrossPitch, width)
	}
	return nil
}

// newPlot creates an empty plot with hidden axes whose ranges are
// pinned to the drawing extent, mirrored where the coordinate system
// requires it.
func (c *chart) newPlot(background color.Color) (*plot.Plot, error) {
	plt, err := plot.New()
	if err != nil {
		return nil, errors.Trace(err)
	}
	plt.HideAxes()
	plt.X.Padding, plt.Y.Padding = 0, 0
	plt.X.Min, plt.X.Max = c.extent[0], c.extent[1]
	plt.Y.Min, plt.Y.Max = c.extent[2], c.extent[3]
	plt.BackgroundColor = background
	return plt, nil
}

// ---------------------------------------------------------------------------
// Accessors

// Vertical reports whether play runs up the drawing.
func (c *chart) Vertical() bool { return c.vertical }

// Half reports whether only the half with the right hand goal is
// drawn.
func (c *chart) Half() bool { return c.half }

// Extent returns the axis ranges of the drawing including padding, in
// drawing order: x0 is the left edge value and may exceed x1 when an
// axis is mirrored.
func (c *chart) Extent() (x0, x1, y0, y1 float64) {
	return c.extent[0], c.extent[1], c.extent[2], c.extent[3]
}

// VisiblePitch returns the part of the pitch that stays visible after
// negative padding, in the same drawing order as Extent.
func (c *chart) VisiblePitch() (x0, x1, y0, y1 float64) {
	return c.visible[0], c.visible[1], c.visible[2], c.visible[3]
}

// AspectRatio returns width over height of the drawing area.
func (c *chart) AspectRatio() float64 { return c.axAspect }

// FigSize returns the canvas size for the given height with the
// drawing area in proportion, so that circles come out round.
func (c *chart) FigSize(height vg.Length) (w, h vg.Length) {
	return vg.Length(float64(height) * c.axAspect), height
}

// ---------------------------------------------------------------------------
// Orientation helpers

// toDisplay maps a point from pitch coordinates to drawing
// coordinates.
func (c *chart) toDisplay(x, y float64) (float64, float64) {
	if c.vertical {
		return y, x
	}
	return x, y
}

// displayXY maps coordinate slices to drawing coordinates. The slices
// are swapped, not copied.
func (c *chart) displayXY(x, y []float64) ([]float64, []float64) {
	if c.vertical {
		return y, x
	}
	return x, y
}

// displayPolygon maps a polygon to drawing coordinates.
func (c *chart) displayPolygon(pg geom.Polygon) geom.Polygon {
	if c.vertical {
		return pg.Swapped()
	}
	return pg
}
