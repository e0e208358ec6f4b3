package wonders

import (
	"math"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/projection"
)

const (
	coveringBase = 250
	coveringGrid = 300
	coveringRise = 50
)

var (
	coveringBackground = canvas.Hex("#010205")
	coveringGridColor  = canvas.RGBA(0, 150, 255, 0.04)
)

// CoveringPoint lifts parameter t in [-8, 8] onto sheet s of an n-sheeted
// helix of the given radius. Every sheet projects onto the same circle;
// moving t by 2 returns to the same spot on the circle one level higher.
func CoveringPoint(t float64, s, n int, radius, phase float64) projection.Vec3 {
	a := t*math.Pi + phase + float64(s)*2*math.Pi/float64(n)
	return projection.Vec3{X: radius * math.Cos(a), Y: t * coveringRise, Z: radius * math.Sin(a)}
}

// Covering draws helical sheets winding above a base grid, with energy
// pulses travelling along them.
type Covering struct {
	*projection.Orbit

	lens                     projection.Lens
	clock                    Clock
	sheets, segments, radius float64
	params                   paramSet
}

func NewCovering() *Covering {
	c := &Covering{
		Orbit:    projection.NewOrbit(0.6, 0.8, projection.OrbitConfig{KX: 0.003, KY: 0.003}),
		lens:     projection.Lens{Focal: 1200},
		sheets:   3,
		segments: 400,
		radius:   180,
	}
	c.params = paramSet{
		"sheets":   {ptr: &c.sheets, min: 1, max: 12},
		"segments": {ptr: &c.segments, min: 20, max: 4000},
		"radius":   {ptr: &c.radius, min: 10, max: 600},
	}
	return c
}

func (c *Covering) ID() string                            { return "covering" }
func (c *Covering) GetParams() map[string]float64         { return c.params.GetParams() }
func (c *Covering) SetParam(name string, v float64) error { return c.params.SetParam(name, v) }
func (c *Covering) Step(clk Clock)                        { c.clock = clk }

func (c *Covering) Draw(s canvas.Surface) {
	w, h := s.Size()
	cam := c.Camera.Centered(w, h)
	at := func(p projection.Vec3) (canvas.Point, float64) {
		pr := c.lens.Project(p, cam)
		return canvas.Point{X: pr.X, Y: pr.Y}, pr.Scale
	}

	s.SetBlend(canvas.Over)
	s.Clear(coveringBackground)
	const steps = 12
	for i := -steps; i <= steps; i++ {
		off := float64(i) / steps * coveringGrid
		a, _ := at(projection.Vec3{X: -coveringGrid, Y: coveringBase, Z: off})
		b, _ := at(projection.Vec3{X: coveringGrid, Y: coveringBase, Z: off})
		s.StrokeLine(a, b, 0.5, coveringGridColor)
		a, _ = at(projection.Vec3{X: off, Y: coveringBase, Z: -coveringGrid})
		b, _ = at(projection.Vec3{X: off, Y: coveringBase, Z: coveringGrid})
		s.StrokeLine(a, b, 0.5, coveringGridColor)
	}

	t := c.clock.Millis() * 0.001
	n, segs := whole(c.sheets), whole(c.segments)
	s.SetBlend(canvas.Lighter)
	for sh := 0; sh < n; sh++ {
		hue := math.Mod(195+float64(sh)*45, 360)
		for i := 0; i < segs-1; i++ {
			t1 := float64(i)/float64(segs)*16 - 8
			t2 := float64(i+1)/float64(segs)*16 - 8
			p1 := CoveringPoint(t1, sh, n, c.radius, t)
			a, scale := at(p1)
			b, _ := at(CoveringPoint(t2, sh, n, c.radius, t))

			pulse := math.Pow(math.Sin(t1*0.5-t*2), 8)
			opacity := (0.2 + pulse*0.6) * (1 - math.Abs(t1/9)) * scale
			s.StrokeLine(a, b, 1+pulse*3, canvas.HSLA(hue, 0.9, 0.65, opacity))

			if i%20 == 0 {
				base, _ := at(projection.Vec3{X: p1.X, Y: coveringBase, Z: p1.Z})
				s.StrokeLine(a, base, 0.5, canvas.HSLA(hue, 1, 0.7, opacity*0.2))
			}
		}
	}
	s.SetBlend(canvas.Over)
}
