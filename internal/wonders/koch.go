package wonders

import (
	"math"

	"github.com/san-kum/wonders/internal/canvas"
)

var (
	kochBackground = canvas.Hex("#05070a")
	kochStroke     = canvas.Hex("#60a5fa")
	kochGlow       = canvas.RGBA(96, 165, 250, 0.5)
)

// KochEdge subdivides the edge a-b depth times and appends every vertex
// after a to out. At the deepest level the middle peak is raised by morph
// (0 flat, 1 full), so that depth d at morph 1 passes through exactly
// the points depth d+1 reaches at morph 0.
func KochEdge(out []canvas.Point, a, b canvas.Point, depth int, morph float64) []canvas.Point {
	dx, dy := (b.X-a.X)/3, (b.Y-a.Y)/3
	p1 := canvas.Point{X: a.X + dx, Y: a.Y + dy}
	p3 := canvas.Point{X: a.X + 2*dx, Y: a.Y + 2*dy}
	angle := math.Atan2(b.Y-a.Y, b.X-a.X) - math.Pi/3
	dist := math.Hypot(dx, dy)
	if depth <= 0 {
		dist *= morph
	}
	p2 := canvas.Point{X: p1.X + math.Cos(angle)*dist, Y: p1.Y + math.Sin(angle)*dist}
	if depth <= 0 {
		return append(out, p1, p2, p3, b)
	}
	out = KochEdge(out, a, p1, depth-1, morph)
	out = KochEdge(out, p1, p2, depth-1, morph)
	out = KochEdge(out, p2, p3, depth-1, morph)
	return KochEdge(out, p3, b, depth-1, morph)
}

// Snowflake returns the closed outline of a snowflake of the given size
// centered on (cx, cy), starting and ending at the lower left corner.
func Snowflake(cx, cy, size float64, depth int, morph float64) []canvas.Point {
	cy += size * 0.15
	a := canvas.Point{X: cx - size/2, Y: cy + size*0.28}
	b := canvas.Point{X: cx + size/2, Y: cy + size*0.28}
	c := canvas.Point{X: cx, Y: cy - size*0.58}
	out := make([]canvas.Point, 0, 1+3*4*ipow(4, max(depth, 0)))
	out = append(out, a)
	out = KochEdge(out, a, b, depth, morph)
	out = KochEdge(out, b, c, depth, morph)
	return KochEdge(out, c, a, depth, morph)
}

// Koch grows the snowflake continuously: elapsed time runs through a
// cycle whose integer part is the depth and whose fraction is the morph.
type Koch struct {
	clock          Clock
	period, levels float64
	params         paramSet
}

func NewKoch() *Koch {
	k := &Koch{period: 2500, levels: 5}
	k.params = paramSet{
		"period": {ptr: &k.period, min: 100, max: 60000},
		"levels": {ptr: &k.levels, min: 1, max: 7},
	}
	return k
}

func (k *Koch) ID() string                            { return "koch" }
func (k *Koch) GetParams() map[string]float64         { return k.params.GetParams() }
func (k *Koch) SetParam(name string, v float64) error { return k.params.SetParam(name, v) }
func (k *Koch) Step(c Clock)                          { k.clock = c }

// Phase returns the current depth and morph.
func (k *Koch) Phase() (int, float64) {
	cycle := math.Mod(k.clock.Millis()/k.period, float64(whole(k.levels)))
	depth := math.Floor(cycle)
	return int(depth), cycle - depth
}

// Trace returns the fully grown outline, the last depth of the cycle at
// full morph, in a unit-sized frame.
func (k *Koch) Trace() []canvas.Point {
	return Snowflake(0.5, 0.5, 1, whole(k.levels)-1, 1)
}

func (k *Koch) Draw(s canvas.Surface) {
	w, h := s.Size()
	s.SetBlend(canvas.Over)
	s.Clear(kochBackground)

	depth, morph := k.Phase()
	size := math.Min(float64(w), float64(h)) * 0.7
	pts := Snowflake(float64(w)/2, float64(h)/2, size, depth, morph)
	s.SetGlow(10, kochGlow)
	s.StrokePath(pts, false, 1.5, kochStroke)
	s.SetGlow(0, nil)
}
