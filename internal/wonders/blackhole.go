package wonders

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/projection"
)

const (
	horizonRadius   = 120
	diskPerspective = 700
)

var (
	ringStops = []canvas.Stop{
		{Offset: 0, Color: color.NRGBA{}},
		{Offset: 0.5, Color: canvas.RGBA(255, 200, 100, 0.95)},
		{Offset: 1, Color: canvas.RGBA(255, 50, 0, 0)},
	}
	coreStops = []canvas.Stop{
		{Offset: 0, Color: color.NRGBA{A: 255}},
		{Offset: 0.2, Color: canvas.RGBA(255, 80, 0, 0.25)},
		{Offset: 1, Color: color.NRGBA{}},
	}
)

// star orbits the hole on a fixed radius. Only angle changes after
// creation.
type star struct {
	r, angle, speed, size, hue float64
	cluster                    int
}

// BlackHole animates clusters of stars on Keplerian orbits around an
// event horizon, with the far side of the disk folded over the top.
type BlackHole struct {
	*projection.Orbit

	rng   *rand.Rand
	stars []star
	clock Clock

	lensing      projection.Lensing
	speed, flare float64
	params       paramSet
}

func NewBlackHole(rng *rand.Rand) *BlackHole {
	b := &BlackHole{
		Orbit: projection.NewOrbit(0.15, 0, projection.OrbitConfig{
			KX: 0.003, KY: 0.003, Clamp: true, MinX: -0.4, MaxX: 0.4,
		}),
		rng:     rng,
		lensing: projection.Lensing{K: 16000, Epsilon: 20, Norm: 100},
		speed:   0.7,
		flare:   0.05,
	}
	for c := 0; c < 12; c++ {
		baseR := 140 + rng.Float64()*400
		baseAngle := rng.Float64() * 2 * math.Pi
		n := 40 + rng.Float64()*80
		for i := 0; float64(i) < n; i++ {
			r := baseR + (rng.Float64()-0.5)*60
			b.stars = append(b.stars, star{
				r:       r,
				angle:   baseAngle + (rng.Float64()-0.5)*0.4,
				speed:   OrbitalSpeed(r),
				size:    0.3 + rng.Float64()*1.5,
				hue:     10 + rng.Float64()*45,
				cluster: c,
			})
		}
	}
	b.params = paramSet{
		"speed":   {ptr: &b.speed, min: 0, max: 10},
		"lensing": {ptr: &b.lensing.K, min: 0, max: 100000},
		"flare":   {ptr: &b.flare, min: 0, max: 1},
	}
	return b
}

// OrbitalSpeed is the angular speed of a star at radius r, proportional
// to 1/sqrt(r).
func OrbitalSpeed(r float64) float64 {
	return 1.8 / math.Sqrt(r) * 1.5
}

func (b *BlackHole) ID() string                            { return "blackhole" }
func (b *BlackHole) GetParams() map[string]float64         { return b.params.GetParams() }
func (b *BlackHole) SetParam(name string, v float64) error { return b.params.SetParam(name, v) }

// Stars returns the number of stars in the disk.
func (b *BlackHole) Stars() int { return len(b.stars) }

func (b *BlackHole) Step(c Clock) {
	b.clock = c
	for i := range b.stars {
		b.stars[i].angle += b.stars[i].speed * b.speed
	}
}

func (b *BlackHole) Draw(s canvas.Surface) {
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2
	center := canvas.Point{X: cx, Y: cy}
	ms := b.clock.Millis()

	s.SetBlend(canvas.Over)
	s.Clear(color.Black)
	s.SetBlend(canvas.Lighter)
	for _, st := range b.stars {
		p := projection.Vec3{X: math.Cos(st.angle) * st.r, Z: math.Sin(st.angle) * st.r}
		r := projection.Rotate(p, b.Camera)
		pos := canvas.Point{X: cx + r.X, Y: cy + b.lensing.Apply(r)}
		pulse := math.Sin(ms*0.002+float64(st.cluster))*0.1 + 0.9
		opacity := math.Min(1, 400/(st.r+20)) * 0.4 * pulse
		size := st.size * (diskPerspective / (diskPerspective + r.Z))
		fill := canvas.HSLA(st.hue, 1, 0.75, opacity)
		s.FillCircle(pos, size, fill)
		if st.r < 180 && b.rng.Float64() < b.flare {
			s.SetGlow(15, canvas.HSLA(st.hue, 1, 0.8, 0.8))
			s.FillCircle(pos, size, fill)
			s.SetGlow(0, nil)
		}
	}
	s.FillRadial(center, horizonRadius-5, horizonRadius+12, ringStops)

	s.SetBlend(canvas.Over)
	s.FillCircle(center, horizonRadius, color.Black)
	s.FillRadial(center, horizonRadius, horizonRadius+60, coreStops)
}
