package wonders

import (
	"image"
	"image/color"
	"math"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/projection"
)

var mandelbrotInterior = color.RGBA{2, 4, 8, 255}

const (
	mandelbrotMinScale = 1
	mandelbrotMaxScale = 1e15
)

// Escape iterates z = z^2 + c from zero until |z| > 2 or maxIter is
// reached. It returns the iteration count and |z|^2 at exit.
func Escape(cx, cy float64, maxIter int) (int, float64) {
	var x, y, x2, y2 float64
	iter := 0
	for x2+y2 <= 4 && iter < maxIter {
		y = 2*x*y + cy
		x = x2 - y2 + cx
		x2 = x * x
		y2 = y * y
		iter++
	}
	return iter, x2 + y2
}

// EscapeColor maps an escape result to the gallery palette. Points that
// never escaped are painted a fixed deep blue.
func EscapeColor(iter, maxIter int, mag2 float64) color.RGBA {
	if iter >= maxIter {
		return mandelbrotInterior
	}
	mu := float64(iter) + 1 - math.Log(math.Log(math.Sqrt(mag2)))/math.Ln2
	r := math.Sin(0.05*mu+0.5)*60 + 80
	g := math.Sin(0.03*mu+1.2)*50 + 60
	b := math.Sin(0.02*mu+2.5)*100 + 130
	bright := math.Min(1, float64(iter)/30)
	return color.RGBA{byteOf(r * bright * 0.4), byteOf(g * bright * 0.5), byteOf(b * bright * 0.8), 255}
}

func byteOf(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Mandelbrot renders the escape-time fractal into a reduced buffer that
// is stretched over the surface each frame.
type Mandelbrot struct {
	View projection.PlaneView

	maxIter, renderScale float64
	buf                  *image.RGBA
	params               paramSet
}

func NewMandelbrot() *Mandelbrot {
	m := &Mandelbrot{
		View:        projection.PlaneView{CenterX: -0.5, CenterY: 0, Scale: 200},
		maxIter:     120,
		renderScale: 0.5,
	}
	m.params = paramSet{
		"maxiter":     {ptr: &m.maxIter, min: 1, max: 5000},
		"renderscale": {ptr: &m.renderScale, min: 0.05, max: 1},
		"centerx":     {ptr: &m.View.CenterX, min: -4, max: 4},
		"centery":     {ptr: &m.View.CenterY, min: -4, max: 4},
		"scale":       {ptr: &m.View.Scale, min: mandelbrotMinScale, max: mandelbrotMaxScale},
	}
	return m
}

func (m *Mandelbrot) ID() string                            { return "mandelbrot" }
func (m *Mandelbrot) GetParams() map[string]float64         { return m.params.GetParams() }
func (m *Mandelbrot) SetParam(name string, v float64) error { return m.params.SetParam(name, v) }

// Step does nothing: the fractal holds no state between frames.
func (m *Mandelbrot) Step(Clock) {}

// Wheel zooms around the cursor, in full surface pixels. The scale stays
// within the bounds of the scale parameter.
func (m *Mandelbrot) Wheel(x, y, deltaY float64, w, h int) {
	m.View = m.View.ZoomWithin(x, y, deltaY, w, h, mandelbrotMinScale, mandelbrotMaxScale)
}

// Buffer returns the reduced-resolution frame from the last Draw.
func (m *Mandelbrot) Buffer() *image.RGBA { return m.buf }

func (m *Mandelbrot) Draw(s canvas.Surface) {
	w, h := s.Size()
	bw := int(math.Floor(float64(w) * m.renderScale))
	bh := int(math.Floor(float64(h) * m.renderScale))
	if bw < 1 || bh < 1 {
		return
	}
	if m.buf == nil || m.buf.Bounds().Dx() != bw || m.buf.Bounds().Dy() != bh {
		m.buf = image.NewRGBA(image.Rect(0, 0, bw, bh))
	}
	m.render()
	s.SetBlend(canvas.Over)
	s.DrawScaled(m.buf)
}

func (m *Mandelbrot) render() {
	b := m.buf.Bounds()
	bw, bh := float64(b.Dx()), float64(b.Dy())
	unit := m.View.Scale * m.renderScale
	maxIter := whole(m.maxIter)
	for py := 0; py < b.Dy(); py++ {
		y0 := (float64(py)-bh/2)/unit + m.View.CenterY
		for px := 0; px < b.Dx(); px++ {
			x0 := (float64(px)-bw/2)/unit + m.View.CenterX
			iter, mag2 := Escape(x0, y0, maxIter)
			m.buf.SetRGBA(px, py, EscapeColor(iter, maxIter, mag2))
		}
	}
}
