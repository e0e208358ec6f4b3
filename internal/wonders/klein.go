package wonders

import (
	"math"
	"math/rand"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/projection"
)

const (
	kleinScale    = 130
	kleinSkeleton = 20
)

var (
	kleinBackground = canvas.Hex("#010206")
	kleinWire       = canvas.RGBA(244, 63, 94, 0.05)
)

// KleinPoint evaluates the figure-eight immersion of the Klein bottle
// with tube radius 2. Going once around u flips v:
// KleinPoint(u+2π, v) == KleinPoint(u, -v).
func KleinPoint(u, v float64) projection.Vec3 {
	const a = 2
	cu, su := math.Cos(u/2), math.Sin(u/2)
	r := a + cu*math.Sin(v) - su*math.Sin(2*v)
	return projection.Vec3{
		X: r * math.Cos(u),
		Y: r * math.Sin(u),
		Z: su*math.Sin(v) + cu*math.Sin(2*v),
	}
}

type kleinParticle struct {
	u, v, speed, size, hue float64
}

// Klein streams particles along u over the bottle's surface.
type Klein struct {
	*projection.Orbit

	lens      projection.Lens
	particles []kleinParticle
	clock     Clock
	flow      float64
	params    paramSet
}

func NewKlein(rng *rand.Rand) *Klein {
	k := &Klein{
		Orbit:     projection.NewOrbit(0.6, 0.5, projection.OrbitConfig{KX: 0.005, KY: 0.005}),
		lens:      projection.Lens{Focal: 1100},
		particles: make([]kleinParticle, 2500),
		flow:      1,
	}
	for i := range k.particles {
		k.particles[i] = kleinParticle{
			u:     rng.Float64() * 2 * math.Pi,
			v:     rng.Float64() * 2 * math.Pi,
			speed: 0.003 + rng.Float64()*0.01,
			size:  0.7 + rng.Float64()*1.5,
			hue:   330 + rng.Float64()*40,
		}
	}
	k.params = paramSet{"flow": {ptr: &k.flow, min: 0, max: 20}}
	return k
}

func (k *Klein) ID() string                            { return "klein" }
func (k *Klein) GetParams() map[string]float64         { return k.params.GetParams() }
func (k *Klein) SetParam(name string, v float64) error { return k.params.SetParam(name, v) }

func (k *Klein) Step(c Clock) {
	k.clock = c
	for i := range k.particles {
		p := &k.particles[i]
		p.u += p.speed * k.flow
		if p.u > 2*math.Pi {
			p.u -= 2 * math.Pi
		}
	}
}

func (k *Klein) Draw(s canvas.Surface) {
	w, h := s.Size()
	cam := k.Camera.Centered(w, h)
	project := func(u, v float64) projection.Projected {
		return k.lens.Project(KleinPoint(u, v).Scale(kleinScale), cam)
	}

	s.SetBlend(canvas.Over)
	s.Clear(kleinBackground)

	line := make([]canvas.Point, kleinSkeleton+1)
	for i := 0; i <= kleinSkeleton; i++ {
		u := float64(i) / kleinSkeleton * 2 * math.Pi
		for j := 0; j <= kleinSkeleton; j++ {
			pr := project(u, float64(j)/kleinSkeleton*2*math.Pi)
			line[j] = canvas.Point{X: pr.X, Y: pr.Y}
		}
		s.StrokePath(line, false, 0.3, kleinWire)
	}

	s.SetBlend(canvas.Lighter)
	t := k.clock.Millis() * 0.001
	for _, p := range k.particles {
		pr := project(p.u, p.v)
		depthAlpha := (pr.Depth + 500) / 1000
		if depthAlpha <= 0 {
			continue
		}
		glow := math.Sin(p.u+t)*0.5 + 0.5
		hue := p.hue
		if math.Abs(p.u-math.Pi) < 0.5 {
			// brighter through the neck
			hue += 40
		}
		s.FillCircle(canvas.Point{X: pr.X, Y: pr.Y}, p.size*pr.Scale*1.5,
			canvas.HSLA(hue, 0.9, 0.6+glow*0.2, depthAlpha*0.5))
	}
	s.SetBlend(canvas.Over)
}
