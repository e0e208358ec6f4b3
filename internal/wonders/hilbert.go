package wonders

import (
	"image/color"
	"math"

	"github.com/san-kum/wonders/internal/canvas"
)

var (
	hilbertBackground = canvas.Hex("#020308")
	hilbertGlow       = canvas.RGBA(168, 85, 247, 0.4)
	tipColor          = canvas.Hex("#ffffff")
)

const (
	hilbertMargin = 160
	hilbertFade   = 50
)

// Hilbert traces the Hilbert curve a fraction of a segment per tick. The
// newest segments fade in behind a bright tip; once the curve is complete
// and a pause has elapsed it starts over.
type Hilbert struct {
	progress            float64
	order, speed, pause float64
	params              paramSet
}

func NewHilbert() *Hilbert {
	h := &Hilbert{order: 6, speed: 0.5, pause: 200}
	h.params = paramSet{
		"order": {ptr: &h.order, min: 1, max: 8, onSet: h.restart},
		"speed": {ptr: &h.speed, min: 0, max: 1000},
		"pause": {ptr: &h.pause, min: 0, max: 10000},
	}
	return h
}

func (h *Hilbert) ID() string                            { return "hilbert" }
func (h *Hilbert) GetParams() map[string]float64         { return h.params.GetParams() }
func (h *Hilbert) SetParam(name string, v float64) error { return h.params.SetParam(name, v) }

func (h *Hilbert) restart() { h.progress = 0 }

// Total is the number of points on the curve.
func (h *Hilbert) Total() int { return ipow(4, whole(h.order)) }

// Progress returns the cursor position along the curve.
func (h *Hilbert) Progress() float64 { return h.progress }

func (h *Hilbert) Step(Clock) {
	h.progress += h.speed
	if h.progress > float64(h.Total())+h.pause {
		h.progress = 0
	}
}

func (h *Hilbert) Trace() []canvas.Point {
	return gridCurve(h.Total(), whole(h.order), HilbertPoint)
}

func (h *Hilbert) Draw(s canvas.Surface) {
	w, ht := s.Size()
	s.SetBlend(canvas.Over)
	s.Clear(hilbertBackground)

	order := whole(h.order)
	n := 1 << order
	total := n * n
	size := math.Min(float64(w), float64(ht)) - hilbertMargin
	if size <= 0 {
		return
	}
	step := size
	if n > 1 {
		step = size / float64(n-1)
	}
	ox, oy := (float64(w)-size)/2, (float64(ht)-size)/2
	at := func(i int) canvas.Point {
		x, y := HilbertPoint(i, order)
		return canvas.Point{X: ox + float64(x)*step, Y: oy + float64(y)*step}
	}

	limit := int(math.Floor(h.progress))
	segs := min(limit, total-1)
	s.SetGlow(10, hilbertGlow)
	strokeTrail(s, at, limit, segs, hilbertFade, 2.5, func(opacity float64) color.Color {
		return canvas.HSLA(270, 0.7, 0.65, opacity*0.8)
	})
	if limit < total {
		s.SetGlow(20, hilbertGlow)
		s.FillCircle(at(limit), 5, tipColor)
	}
	s.SetGlow(0, nil)
}
