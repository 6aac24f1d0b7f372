package pitch

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// String2Color parses a color given as "#rrggbb", "#rrggbbaa" or as an
// SVG 1.1 color name like "white" or "tomato". Unknown colors yield a
// garish fallback so they stand out in the drawing.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := colornames.Map[strings.ToLower(s)]; ok {
		return col
	}
	if col, ok := extraColors[s]; ok {
		return col
	}
	tracer().Infof("unknown color %q", s)
	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}

// Gray steps not part of the SVG names.
var extraColors = map[string]color.NRGBA{
	"gray20": {0x33, 0x33, 0x33, 0xff},
	"gray40": {0x66, 0x66, 0x66, 0xff},
	"gray60": {0x99, 0x99, 0x99, 0xff},
	"gray80": {0xcc, 0xcc, 0xcc, 0xff},
}

// SetAlpha returns c with its alpha scaled by a in [0, 1]. The color
// keeps its own transparency, so a equal to 1 is a no-op.
func SetAlpha(c color.Color, a float64) color.Color {
	if c == nil {
		return nil
	}
	r, g, b, ca := c.RGBA()
	a = clamp01(a)
	if ca == 0 {
		return color.NRGBA{0, 0, 0, 0}
	}
	// un-premultiply before scaling alpha
	nr := uint8(uint32(0xff) * r / ca)
	ng := uint8(uint32(0xff) * g / ca)
	nb := uint8(uint32(0xff) * b / ca)
	na := uint8(a * float64(ca>>8))
	return color.NRGBA{nr, ng, nb, na}
}

// defaultChartColor is the blue that overlays fall back to when no
// color is given.
var defaultChartColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// lineStyle builds the gonum line style for color, width, alpha and
// dash pattern. A nil color or non-positive width gives a style that
// strokes nothing.
func lineStyle(c color.Color, w vg.Length, alpha float64, dashes []vg.Length) draw.LineStyle {
	if c == nil || w <= 0 {
		return draw.LineStyle{}
	}
	return draw.LineStyle{
		Color:  SetAlpha(c, alpha),
		Width:  w,
		Dashes: dashes,
	}
}
