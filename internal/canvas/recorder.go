package canvas

import (
	"image"
	"image/color"
)

// Recorder is a Surface that draws nothing. It counts primitives and keeps
// every coordinate it was handed so callers can inspect a frame.
type Recorder struct {
	W, H int

	Clears, Lines, Paths, Polygons, Circles, Radials, Blits int
	// Additive counts primitives issued while the blend was Lighter.
	Additive int
	Glowing  int
	Points   []Point
	Blend    Blend
	Last     color.Color

	glow float64
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (int, int) { return r.W, r.H }
func (r *Recorder) Resize(w, h int)  { r.W, r.H = w, h }
func (r *Recorder) SetBlend(b Blend) { r.Blend = b }

func (r *Recorder) Clear(c color.Color) {
	r.Clears++
	r.Last = c
}

func (r *Recorder) SetGlow(radius float64, _ color.Color) { r.glow = radius }

func (r *Recorder) note(c color.Color, pts ...Point) {
	if r.Blend == Lighter {
		r.Additive++
	}
	if r.glow > 0 {
		r.Glowing++
	}
	r.Last = c
	r.Points = append(r.Points, pts...)
}

func (r *Recorder) StrokeLine(a, b Point, _ float64, c color.Color) {
	r.Lines++
	r.note(c, a, b)
}

func (r *Recorder) StrokePath(pts []Point, _ bool, _ float64, c color.Color) {
	r.Paths++
	r.note(c, pts...)
}

func (r *Recorder) FillPolygon(pts []Point, c color.Color) {
	r.Polygons++
	r.note(c, pts...)
}

func (r *Recorder) FillCircle(center Point, _ float64, c color.Color) {
	r.Circles++
	r.note(c, center)
}

func (r *Recorder) FillRadial(center Point, _, _ float64, stops []Stop) {
	r.Radials++
	var c color.Color
	if len(stops) > 0 {
		c = stops[len(stops)-1].Color
	}
	r.note(c, center)
}

func (r *Recorder) DrawScaled(image.Image) { r.Blits++ }

// Primitives is the total number of drawing calls other than Clear.
func (r *Recorder) Primitives() int {
	return r.Lines + r.Paths + r.Polygons + r.Circles + r.Radials + r.Blits
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() { *r = Recorder{W: r.W, H: r.H} }
