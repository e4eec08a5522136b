// Package colorx holds the sampled color value and its text forms.
package colorx

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit device RGB triple.
type Color struct {
	R, G, B uint8
}

// FromNormalized builds a Color from channels in [0,1], rounding each to the
// nearest 8-bit value. Out-of-range input is clamped.
func FromNormalized(r, g, b float64) Color {
	cr, cg, cb := colorful.Color{R: r, G: g, B: b}.Clamped().RGB255()
	return Color{R: cr, G: cg, B: cb}
}

// FromColor converts any image/color value, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ParseHex accepts "#RRGGBB" or "RRGGBB" in either case.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q: want #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return FromNormalized(c.R, c.G, c.B), nil
}

// Normalized returns the channels scaled to [0,1].
func (c Color) Normalized() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Hex formats the color as uppercase #RRGGBB.
func (c Color) Hex() string {
	return strings.ToUpper(c.toColorful().Hex())
}

// HSL returns hue in degrees and saturation/lightness in [0,1].
func (c Color) HSL() (h, s, l float64) {
	return c.toColorful().Hsl()
}

// RGBA implements color.Color so a Color can be drawn directly.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Luminance is the relative luminance, used to pick readable label colors.
func (c Color) Luminance() float64 {
	r, g, b := c.toColorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Luminance() > 0.179 {
		return Color{}
	}
	return Color{R: 0xff, G: 0xff, B: 0xff}
}

func (c Color) String() string { return c.Hex() }

func (c Color) toColorful() colorful.Color {
	r, g, b := c.Normalized()
	return colorful.Color{R: r, G: g, B: b}
}
