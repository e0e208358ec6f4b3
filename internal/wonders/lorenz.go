package wonders

import (
	"math"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/dynamo"
	"github.com/san-kum/wonders/internal/integrators"
	"github.com/san-kum/wonders/internal/physics"
	"github.com/san-kum/wonders/internal/projection"
	"github.com/san-kum/wonders/internal/ring"
)

const (
	lorenzCapacity = 2500
	lorenzScale    = 16
	lorenzLift     = 100
)

var lorenzBackground = canvas.Hex("#020306")

// Lorenz integrates the Lorenz system a few sub-steps per tick and draws
// the trail orthographically, rotated z pointing up the screen.
type Lorenz struct {
	*projection.Orbit

	sys   *physics.Lorenz
	integ dynamo.Integrator
	state dynamo.State
	t     float64
	trail *ring.Buffer[projection.Vec3]

	dt, steps, method float64
	params            paramSet
}

func NewLorenz() *Lorenz {
	l := &Lorenz{
		Orbit: projection.NewOrbit(0, 0, projection.OrbitConfig{KX: 0.005, KY: 0.005}),
		sys:   physics.NewLorenz(),
		integ: integrators.NewEuler(),
		trail: ring.New[projection.Vec3](lorenzCapacity),
		dt:    0.008,
		steps: 5,
	}
	l.state = l.sys.DefaultState()
	l.params = paramSet{
		"dt":         {ptr: &l.dt, min: 1e-5, max: 0.05},
		"steps":      {ptr: &l.steps, min: 1, max: 50},
		"integrator": {ptr: &l.method, min: 0, max: 1, onSet: l.pickIntegrator},
	}
	return l
}

func (l *Lorenz) ID() string { return "lorenz" }

func (l *Lorenz) pickIntegrator() {
	if whole(l.method) == 1 {
		l.integ = integrators.ByName("rk4")
		return
	}
	l.integ = integrators.NewEuler()
}

func (l *Lorenz) GetParams() map[string]float64 {
	out := l.params.GetParams()
	for k, v := range l.sys.GetParams() {
		out[k] = v
	}
	return out
}

func (l *Lorenz) SetParam(name string, value float64) error {
	if _, ok := l.params[name]; ok {
		return l.params.SetParam(name, value)
	}
	return l.sys.SetParam(name, value)
}

func (l *Lorenz) Step(Clock) {
	for i := 0; i < whole(l.steps); i++ {
		next := l.integ.Step(l.sys, l.state, nil, l.t, l.dt)
		if !next.IsValid() {
			// Diverged under an extreme parameter; start over.
			next = l.sys.DefaultState()
		}
		l.state = next
		l.t += l.dt
		l.trail.Push(projection.Vec3{X: next[0], Y: next[1], Z: next[2]})
	}
}

// Trail returns the trajectory history, oldest first.
func (l *Lorenz) Trail() []projection.Vec3 { return l.trail.Slice() }

func (l *Lorenz) Draw(s canvas.Surface) {
	w, h := s.Size()
	s.SetBlend(canvas.Over)
	s.Clear(lorenzBackground)

	pts := l.trail.Slice()
	if len(pts) < 2 {
		return
	}
	ox, oy := float64(w)/2, float64(h)/2+lorenzLift
	screen := func(p projection.Vec3) canvas.Point {
		r := projection.Rotate(p, l.Camera)
		return canvas.Point{X: ox + r.X*lorenzScale, Y: oy - r.Z*lorenzScale}
	}
	prev := screen(pts[0])
	for i := 1; i < len(pts); i++ {
		cur := screen(pts[i])
		progress := float64(i) / float64(len(pts))
		hue := math.Mod(pts[i-1].Z*4+180, 360)
		s.StrokeLine(prev, cur, 1.2, canvas.HSLA(hue, 0.7, 0.5, progress*0.8))
		prev = cur
	}
}
