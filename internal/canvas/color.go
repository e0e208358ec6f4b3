package canvas

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA builds a color from hue in degrees (any range), saturation and
// lightness in [0, 1] and alpha in [0, 1]. Out of range values are clamped.
func HSLA(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, unit(s), unit(l)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// RGBA builds a color from 8-bit channels and a fractional alpha.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// Hex parses "#rrggbb" into an opaque color. Malformed input yields black.
func Hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha scaled by f.
func WithAlpha(c color.NRGBA, f float64) color.NRGBA {
	c.A = alpha8(float64(c.A) / 255 * f)
	return c
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(unit(a) * 255))
}

func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
