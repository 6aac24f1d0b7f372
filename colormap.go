package pitch

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// ---------------------------------------------------------------------------
// Colormap

// Colormap is a fixed list of colors that doubles as a gonum palette.
// The overlay options accept any palette.Palette; a Colormap adds
// indexed lookup for per segment line coloring and alpha ramps.
type Colormap []color.Color

var _ palette.Palette = Colormap{}

// Colors implements palette.Palette.
func (cm Colormap) Colors() []color.Color { return cm }

// At returns the color for t in [0, 1]. Like the palette itself the
// lookup is discrete: t selects one of the list entries.
func (cm Colormap) At(t float64) color.Color {
	return paletteAt(cm, t)
}

// Reversed returns the colormap in reverse order.
func (cm Colormap) Reversed() Colormap {
	rev := make(Colormap, len(cm))
	for i, c := range cm {
		rev[len(cm)-1-i] = c
	}
	return rev
}

// NewColormap interpolates n colors linearly between the given stops.
func NewColormap(n int, stops ...color.Color) Colormap {
	if n < 2 || len(stops) == 0 {
		return nil
	}
	if len(stops) == 1 {
		stops = append(stops, stops[0])
	}
	cm := make(Colormap, n)
	segments := float64(len(stops) - 1)
	for i := range cm {
		t := float64(i) / float64(n-1) * segments
		s := int(t)
		if s >= len(stops)-1 {
			s = len(stops) - 2
		}
		cm[i] = lerpColor(stops[s], stops[s+1], t-float64(s))
	}
	return cm
}

// paletteAt selects the palette entry for t in [0, 1]. Values outside
// the range pick the nearest end, NaN the first entry.
func paletteAt(pal palette.Palette, t float64) color.Color {
	cols := pal.Colors()
	if len(cols) == 0 {
		return color.Black
	}
	i := int(clamp01(t) * float64(len(cols)))
	if i >= len(cols) {
		i = len(cols) - 1
	}
	if i < 0 {
		i = 0
	}
	return cols[i]
}

func lerpColor(a, b color.Color, t float64) color.Color {
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(lerp(float64(x), float64(y), t)))
	}
	return color.NRGBA{
		R: ch(ca.R, cb.R),
		G: ch(ca.G, cb.G),
		B: ch(ca.B, cb.B),
		A: ch(ca.A, cb.A),
	}
}

func withAlpha(c color.Color, a float64) color.NRGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(math.Round(clamp01(a) * 0xff))
	return nc
}

// ---------------------------------------------------------------------------
// Stock colormaps

// Grass is the mowed lawn colormap: thirty colors running from dark to
// light green, with the first ten repeated in reverse at the start so
// that a ramp across the pitch folds back on itself.
func Grass() Colormap {
	base := NewColormap(30,
		color.NRGBA{R: 64, G: 112, B: 31, A: 255},
		color.NRGBA{R: 98, G: 197, B: 95, A: 255})
	cm := make(Colormap, 0, 40)
	for i := 9; i >= 0; i-- {
		cm = append(cm, base[i])
	}
	return append(cm, base...)
}

// Transparent repeats color c n times with the alpha channel rising
// linearly from alphaStart to alphaEnd. It is the fade used by comet
// lines; their defaults are 100 segments from 0.01 to 1.
func Transparent(c color.Color, n int, alphaStart, alphaEnd float64) Colormap {
	if n < 1 {
		return nil
	}
	cm := make(Colormap, n)
	for i := range cm {
		cm[i] = withAlpha(c, alphaRampAt(i, n, alphaStart, alphaEnd))
	}
	return cm
}

// TransparentOf samples pal n times and applies the same alpha ramp as
// Transparent.
func TransparentOf(pal palette.Palette, n int, alphaStart, alphaEnd float64) Colormap {
	if n < 1 {
		return nil
	}
	cm := make(Colormap, n)
	for i := range cm {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cm[i] = withAlpha(paletteAt(pal, t), alphaRampAt(i, n, alphaStart, alphaEnd))
	}
	return cm
}

func alphaRampAt(i, n int, a0, a1 float64) float64 {
	if n == 1 {
		return a1
	}
	return lerp(a0, a1, float64(i)/float64(n-1))
}

// Viridis is the default palette for charts colored by value. The
// anchors are sampled from the matplotlib colormap of the same name.
func Viridis() Colormap {
	return NewColormap(256,
		color.NRGBA{0x44, 0x01, 0x54, 0xff},
		color.NRGBA{0x48, 0x28, 0x78, 0xff},
		color.NRGBA{0x3e, 0x49, 0x89, 0xff},
		color.NRGBA{0x31, 0x68, 0x8e, 0xff},
		color.NRGBA{0x26, 0x82, 0x8e, 0xff},
		color.NRGBA{0x1f, 0x9e, 0x89, 0xff},
		color.NRGBA{0x35, 0xb7, 0x79, 0xff},
		color.NRGBA{0x6e, 0xce, 0x58, 0xff},
		color.NRGBA{0xb5, 0xde, 0x2b, 0xff},
		color.NRGBA{0xfd, 0xe7, 0x25, 0xff},
	)
}
