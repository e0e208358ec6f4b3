package wonders

import (
	"math"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/projection"
)

var riemannBackground = canvas.Hex("#010206")

// RiemannHeight is the height of a sheet of sqrt(z) at polar angle a.
// Sheets are offset by π so that each one continues into the other after
// a full turn.
func RiemannHeight(a, offset, phase float64) float64 {
	return math.Sin(a/2+offset+phase) * 100
}

type riemannSheet struct {
	offset, hue float64
}

var riemannSheets = [...]riemannSheet{{0, 165}, {math.Pi, 280}}

// Riemann draws both sheets as rings of translucent quads, outermost
// last. There is no depth sort; translucency hides the ordering.
type Riemann struct {
	*projection.Orbit

	lens                  projection.Lens
	clock                 Clock
	rings, spokes, radius float64
	speed                 float64
	params                paramSet
}

func NewRiemann() *Riemann {
	r := &Riemann{
		Orbit:  projection.NewOrbit(0.6, 0.7, projection.OrbitConfig{KX: 0.005, KY: 0.005}),
		lens:   projection.Lens{Focal: 900},
		rings:  12,
		spokes: 45,
		radius: 300,
		speed:  0.0006,
	}
	r.params = paramSet{
		"rings":  {ptr: &r.rings, min: 1, max: 60},
		"spokes": {ptr: &r.spokes, min: 3, max: 180},
		"radius": {ptr: &r.radius, min: 10, max: 800},
		"speed":  {ptr: &r.speed, min: 0, max: 0.01},
	}
	return r
}

func (r *Riemann) ID() string                            { return "riemann" }
func (r *Riemann) GetParams() map[string]float64         { return r.params.GetParams() }
func (r *Riemann) SetParam(name string, v float64) error { return r.params.SetParam(name, v) }
func (r *Riemann) Step(c Clock)                          { r.clock = c }

func (r *Riemann) Draw(s canvas.Surface) {
	w, h := s.Size()
	cam := r.Camera.Centered(w, h)
	s.SetBlend(canvas.Over)
	s.Clear(riemannBackground)

	phase := r.clock.Millis() * r.speed * 0.5
	for _, sh := range riemannSheets {
		r.drawSheet(s, cam, sh, phase)
	}
}

func (r *Riemann) drawSheet(s canvas.Surface, cam projection.Camera, sh riemannSheet, phase float64) {
	rings, spokes := whole(r.rings), whole(r.spokes)
	seam := canvas.HSLA(sh.hue, 1, 0.8, 0.05)
	quad := make([]canvas.Point, 4)
	corner := func(rad, a, y float64) canvas.Point {
		pr := r.lens.Project(projection.Vec3{X: rad * math.Cos(a), Y: y, Z: rad * math.Sin(a)}, cam)
		return canvas.Point{X: pr.X, Y: pr.Y}
	}
	for ri := 0; ri < rings; ri++ {
		r1 := float64(ri) / float64(rings) * r.radius
		r2 := float64(ri+1) / float64(rings) * r.radius
		op := 0.3 + float64(ri)/float64(rings)*0.5
		for ai := 0; ai < spokes; ai++ {
			a1 := float64(ai) / float64(spokes) * 2 * math.Pi
			a2 := float64(ai+1) / float64(spokes) * 2 * math.Pi
			y1 := RiemannHeight(a1, sh.offset, phase)
			y2 := RiemannHeight(a2, sh.offset, phase)
			quad[0] = corner(r1, a1, y1)
			quad[1] = corner(r2, a1, y1)
			quad[2] = corner(r2, a2, y2)
			quad[3] = corner(r1, a2, y2)

			bright := 35 + (1-math.Abs(y2-y1)/30)*35
			s.FillPolygon(quad, canvas.HSLA(sh.hue, 0.8, bright/100, op))
			s.StrokePath(quad, true, 0.5, seam)
		}
	}
}
