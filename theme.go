package pitch

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Theme holds the colors and stroke widths of the pitch elements.
// Options.Theme selects one; the zero value draws nothing visible, so
// start from one of the stock themes and change fields as needed.
type Theme struct {
	PitchColor color.Color // background fill, nil keeps the canvas color

	LineColor  color.Color // pitch markings
	LineWidth  vg.Length
	LineAlpha  float64
	LineDashes []vg.Length

	GoalAlpha  float64 // goals take the line color with their own alpha
	GoalDashes []vg.Length

	StripeColor color.Color // mowed stripes, drawn when Options.Stripe

	PositionalColor  color.Color // Juego de Posicion zone lines
	PositionalWidth  vg.Length
	PositionalAlpha  float64
	PositionalDashes []vg.Length

	ShadeColor color.Color // middle third shading
	ShadeAlpha float64
}

// DefaultTheme is a white pitch with light gray markings.
var DefaultTheme = Theme{
	PitchColor:      color.White,
	LineColor:       color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff},
	LineWidth:       vg.Points(2),
	LineAlpha:       1,
	GoalAlpha:       1,
	StripeColor:     String2Color("#c2d59d"),
	PositionalColor: String2Color("#eadddd"),
	PositionalWidth: vg.Points(2),
	PositionalAlpha: 1,
	ShadeColor:      String2Color("#f2f2f2"),
	ShadeAlpha:      1,
}

// GrassTheme is a green pitch with white markings. Its two greens are
// samples of the Grass colormap; pair it with Options.Stripe for the
// mowed look.
var GrassTheme = Theme{
	PitchColor:      Grass().At(0.35),
	LineColor:       color.White,
	LineWidth:       vg.Points(2),
	LineAlpha:       1,
	GoalAlpha:       1,
	StripeColor:     Grass().At(0.6),
	PositionalColor: String2Color("#eadddd"),
	PositionalWidth: vg.Points(2),
	PositionalAlpha: 1,
	ShadeColor:      SetAlpha(color.White, 0.3),
	ShadeAlpha:      1,
}
