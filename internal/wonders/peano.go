package wonders

import (
	"image/color"
	"math"

	"github.com/san-kum/wonders/internal/canvas"
)

var (
	peanoBackground = canvas.Hex("#05070a")
	peanoStroke     = canvas.Hex("#0ea5e9")
	peanoGlow       = canvas.RGBA(14, 165, 233, 0.5)
)

const (
	peanoMargin = 100
	peanoFade   = 30
)

// Peano grows the Peano curve up to the cursor, its newest segments
// fading in behind the tip.
type Peano struct {
	progress            float64
	order, speed, pause float64
	params              paramSet
}

func NewPeano() *Peano {
	p := &Peano{order: 3, speed: 0.4, pause: 300}
	p.params = paramSet{
		"order": {ptr: &p.order, min: 1, max: 5, onSet: p.restart},
		"speed": {ptr: &p.speed, min: 0, max: 1000},
		"pause": {ptr: &p.pause, min: 0, max: 10000},
	}
	return p
}

func (p *Peano) ID() string                            { return "peano" }
func (p *Peano) GetParams() map[string]float64         { return p.params.GetParams() }
func (p *Peano) SetParam(name string, v float64) error { return p.params.SetParam(name, v) }

func (p *Peano) restart() { p.progress = 0 }

func (p *Peano) Total() int        { return ipow(9, whole(p.order)) }
func (p *Peano) Progress() float64 { return p.progress }

func (p *Peano) Step(Clock) {
	p.progress += p.speed
	if p.progress > float64(p.Total())+p.pause {
		p.progress = 0
	}
}

func (p *Peano) Trace() []canvas.Point {
	return gridCurve(p.Total(), whole(p.order), PeanoPoint)
}

func (p *Peano) Draw(s canvas.Surface) {
	w, h := s.Size()
	s.SetBlend(canvas.Over)
	s.Clear(peanoBackground)

	order := whole(p.order)
	n := ipow(3, order)
	total := n * n
	size := math.Min(float64(w), float64(h)) - 2*peanoMargin
	if size <= 0 {
		return
	}
	step := size / float64(n-1)
	ox, oy := (float64(w)-size)/2, (float64(h)-size)/2
	at := func(i int) canvas.Point {
		x, y := PeanoPoint(i, order)
		return canvas.Point{X: ox + float64(x)*step, Y: oy + float64(y)*step}
	}

	limit := int(math.Floor(p.progress))
	s.SetGlow(15, peanoGlow)
	strokeTrail(s, at, limit, min(limit, total-1), peanoFade, 2.5, func(opacity float64) color.Color {
		c := peanoStroke
		c.A = uint8(math.Round(float64(c.A) * opacity))
		return c
	})
	if p.progress < float64(total) {
		s.SetGlow(10, tipColor)
		s.FillCircle(at(limit), 4, tipColor)
	}
	s.SetGlow(0, nil)
}
