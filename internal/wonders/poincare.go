package wonders

import (
	"math"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/projection"
)

var (
	poincareBackground = canvas.Hex("#02040a")
	poincareBoundary   = canvas.Hex("#8b5cf6")
)

// Geodesic returns the circle orthogonal to the unit circle through the
// boundary points at angles a1 and a2. ok is false when the two points
// are nearly antipodal, where the geodesic degenerates into a diameter.
func Geodesic(a1, a2 float64) (ox, oz, r float64, ok bool) {
	x1, z1 := math.Cos(a1), math.Sin(a1)
	x2, z2 := math.Cos(a2), math.Sin(a2)
	mx, mz := (x1+x2)/2, (z1+z2)/2
	if mx*mx+mz*mz < 0.001 {
		return 0, 0, 0, false
	}
	den := x1*x2 + z1*z2 + 1
	if math.Abs(den) < 1e-9 {
		return 0, 0, 0, false
	}
	ox, oz = (x1+x2)/den, (z1+z2)/den
	r2 := ox*ox + oz*oz - 1
	if r2 <= 0 {
		return 0, 0, 0, false
	}
	return ox, oz, math.Sqrt(r2), true
}

// GeodesicArc samples the geodesic between boundary angles a1 and a2 in
// unit-disk coordinates, taking the short way around the orthogonal
// circle. It returns nil for degenerate pairs.
func GeodesicArc(a1, a2 float64, segments int) []canvas.Point {
	ox, oz, r, ok := Geodesic(a1, a2)
	if !ok || segments < 1 {
		return nil
	}
	start := math.Atan2(math.Sin(a1)-oz, math.Cos(a1)-ox)
	end := math.Atan2(math.Sin(a2)-oz, math.Cos(a2)-ox)
	diff := end - start
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	pts := make([]canvas.Point, segments+1)
	for j := range pts {
		a := start + diff*float64(j)/float64(segments)
		pts[j] = canvas.Point{X: ox + math.Cos(a)*r, Y: oz + math.Sin(a)*r}
	}
	return pts
}

// Poincare draws a drifting family of geodesics inside the hyperbolic
// disk, laid flat in the x/z plane and viewed through the orbit camera.
type Poincare struct {
	*projection.Orbit

	lens                   projection.Lens
	clock                  Clock
	count, segments, drift float64
	params                 paramSet
}

func NewPoincare() *Poincare {
	p := &Poincare{
		Orbit:    projection.NewOrbit(0.3, 0, projection.OrbitConfig{KX: 0.005, KY: 0.005}),
		lens:     projection.Lens{Focal: 1200},
		count:    60,
		segments: 20,
		drift:    0.0004,
	}
	p.params = paramSet{
		"geodesics": {ptr: &p.count, min: 1, max: 500},
		"segments":  {ptr: &p.segments, min: 2, max: 200},
		"drift":     {ptr: &p.drift, min: 0, max: 0.01},
	}
	return p
}

func (p *Poincare) ID() string                            { return "poincare" }
func (p *Poincare) GetParams() map[string]float64         { return p.params.GetParams() }
func (p *Poincare) SetParam(name string, v float64) error { return p.params.SetParam(name, v) }
func (p *Poincare) Step(c Clock)                          { p.clock = c }

func (p *Poincare) Draw(s canvas.Surface) {
	w, h := s.Size()
	s.SetBlend(canvas.Over)
	s.Clear(poincareBackground)

	cam := p.Camera.Centered(w, h)
	radius := math.Min(float64(w), float64(h)) * 0.4
	flat := func(x, z float64) canvas.Point {
		pr := p.lens.Project(projection.Vec3{X: x * radius, Z: z * radius}, cam)
		return canvas.Point{X: pr.X, Y: pr.Y}
	}

	t := p.clock.Millis() * p.drift
	n := whole(p.count)
	for i := 0; i < n; i++ {
		a1 := float64(i)/float64(n)*2*math.Pi + t
		a2 := a1 + math.Sin(t+float64(i))*0.5 + 0.8
		arc := GeodesicArc(a1, a2, whole(p.segments))
		if arc == nil {
			continue
		}
		for j, q := range arc {
			arc[j] = flat(q.X, q.Y)
		}
		hue := math.Mod(260+math.Sin(float64(i)*0.1)*40, 360)
		s.StrokePath(arc, false, 1, canvas.HSLA(hue, 0.7, 0.6, 0.25))
	}

	var rim []canvas.Point
	for a := 0.0; a <= 2*math.Pi+0.1; a += 0.1 {
		rim = append(rim, flat(math.Cos(a), math.Sin(a)))
	}
	s.StrokePath(rim, false, 2.5, poincareBoundary)
}
