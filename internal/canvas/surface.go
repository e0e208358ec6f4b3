package canvas

import (
	"image"
	"image/color"
	"math"
)

type Point struct {
	X, Y float64
}

func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Blend selects how new pixels combine with the existing frame.
type Blend int

const (
	// Over is ordinary source-over compositing.
	Over Blend = iota
	// Lighter adds source to destination, saturating per channel.
	Lighter
)

func (b Blend) String() string {
	if b == Lighter {
		return "lighter"
	}
	return "over"
}

// Stop is one color stop of a radial gradient, Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Clear(c color.Color)
	SetBlend(b Blend)
	// SetGlow makes later primitives bleed a halo of the given radius.
	// A radius of zero turns it off.
	SetGlow(radius float64, c color.Color)
	StrokeLine(a, b Point, width float64, c color.Color)
	StrokePath(pts []Point, closed bool, width float64, c color.Color)
	FillPolygon(pts []Point, c color.Color)
	FillCircle(center Point, r float64, c color.Color)
	// FillRadial fills the disk of radius r1 with a gradient running from
	// r0 to r1. Points inside r0 take the first stop.
	FillRadial(center Point, r0, r1 float64, stops []Stop)
	// DrawScaled stretches img over the whole surface.
	DrawScaled(img image.Image)
}

func allFinite(pts []Point) bool {
	for _, p := range pts {
		if !p.Finite() {
			return false
		}
	}
	return true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// GradientAt samples stops at t. Colors are interpolated unpremultiplied.
func GradientAt(stops []Stop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, f),
			G: lerp8(a.Color.G, b.Color.G, f),
			B: lerp8(a.Color.B, b.Color.B, f),
			A: lerp8(a.Color.A, b.Color.A, f),
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
