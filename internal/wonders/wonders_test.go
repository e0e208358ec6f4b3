package wonders

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/dynamo"
	"github.com/san-kum/wonders/internal/integrators"
	"github.com/san-kum/wonders/internal/physics"
	"github.com/san-kum/wonders/internal/projection"
)

func clockAt(frame int) Clock {
	d := 16 * time.Millisecond
	return Clock{Elapsed: time.Duration(frame) * d, Delta: d, Frame: frame}
}

func TestCatalogMatchesRegistry(t *testing.T) {
	ids := IDs()
	if len(ids) != 10 {
		t.Fatalf("expected 10 wonders, got %d", len(ids))
	}
	for _, id := range ids {
		if _, ok := registry[id]; !ok {
			t.Errorf("catalog entry %q has no visualizer", id)
		}
		m, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", id, err)
		}
		if m.Title == "" || m.Formula == "" || m.Color == "" || m.Category == "" {
			t.Errorf("incomplete metadata for %q: %+v", id, m)
		}
	}
	if _, err := Lookup("tesseract"); !errors.Is(err, ErrUnknownWonder) {
		t.Errorf("expected ErrUnknownWonder, got %v", err)
	}
}

func TestNew(t *testing.T) {
	for _, id := range IDs() {
		v, err := New(id, Options{Seed: 1})
		if err != nil {
			t.Fatalf("New(%q) failed: %v", id, err)
		}
		if v.ID() != id {
			t.Errorf("expected id %q, got %q", id, v.ID())
		}
	}
	if _, err := New("tesseract", Options{}); !errors.Is(err, ErrUnknownWonder) {
		t.Errorf("expected ErrUnknownWonder, got %v", err)
	}
}

func TestNewAppliesParams(t *testing.T) {
	v, err := New("lorenz", Options{Params: map[string]float64{"rho": 99.96, "steps": 8}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p := v.(dynamo.Configurable).GetParams()
	if p["rho"] != 99.96 || p["steps"] != 8 {
		t.Errorf("params not applied: %v", p)
	}
	if _, err := New("hilbert", Options{Params: map[string]float64{"order": 40}}); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected bounds error, got %v", err)
	}
	if _, err := New("koch", Options{Params: map[string]float64{"colour": 1}}); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected unknown param error, got %v", err)
	}
}

func TestNext(t *testing.T) {
	ids := IDs()
	if got := Next(ids[len(ids)-1], 1); got != ids[0] {
		t.Errorf("expected wrap to %q, got %q", ids[0], got)
	}
	if got := Next(ids[0], -1); got != ids[len(ids)-1] {
		t.Errorf("expected wrap to %q, got %q", ids[len(ids)-1], got)
	}
}

func TestLorenzFirstTick(t *testing.T) {
	l := NewLorenz()
	l.Step(clockAt(1))
	trail := l.Trail()
	if len(trail) != 5 {
		t.Fatalf("expected 5 points after one tick, got %d", len(trail))
	}
	want := []projection.Vec3{
		{X: 0.092, Y: 0.022400000000000003, Z: 0},
		{X: 0.086432, Y: 0.0428288, Z: 1.6486400000000002e-05},
		{X: 0.082943744, Y: 0.0618469262003798, Z: 4.574892086613333e-05},
		{X: 0.08125599857603039, Y: 0.07993151909008252, Z: 8.581146879926538e-05},
		{X: 0.08115004021715455, Y: 0.09749335483681996, Z: 0.00013594014734245725},
	}
	for i, w := range want {
		got := trail[i]
		if math.Abs(got.X-w.X) > 1e-15 || math.Abs(got.Y-w.Y) > 1e-15 || math.Abs(got.Z-w.Z) > 1e-15 {
			t.Errorf("sub-step %d: expected %v, got %v", i+1, w, got)
		}
	}
}

func TestLorenzTrailIsFIFO(t *testing.T) {
	l := NewLorenz()
	sys, euler := physics.NewLorenz(), integrators.NewEuler()
	state := sys.DefaultState()
	var all []projection.Vec3
	for tick := 0; tick < 700; tick++ {
		l.Step(clockAt(tick))
		for i := 0; i < 5; i++ {
			state = euler.Step(sys, state, nil, 0, 0.008)
			all = append(all, projection.Vec3{X: state[0], Y: state[1], Z: state[2]})
		}
	}
	trail := l.Trail()
	if len(trail) != lorenzCapacity {
		t.Fatalf("expected %d points, got %d", lorenzCapacity, len(trail))
	}
	recent := all[len(all)-lorenzCapacity:]
	for i := range trail {
		if trail[i] != recent[i] {
			t.Fatalf("index %d: expected %v, got %v", i, recent[i], trail[i])
		}
	}
}

func TestLorenzRK4Option(t *testing.T) {
	l := NewLorenz()
	if err := l.SetParam("integrator", 1); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	l.Step(clockAt(1))
	first := l.Trail()[0]
	if first.X == 0.092 {
		t.Error("expected RK4 to differ from the Euler step")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name    string
		cx, cy  float64
		maxIter int
		check   func(int) bool
	}{
		{"origin never escapes", 0, 0, 120, func(i int) bool { return i == 120 }},
		{"cardioid interior", -0.5, 0.1, 120, func(i int) bool { return i == 120 }},
		{"2+2i escapes at once", 2, 2, 120, func(i int) bool { return i <= 2 }},
		{"far point escapes", -3, 0, 120, func(i int) bool { return i == 1 }},
	}
	for _, tt := range tests {
		iter, _ := Escape(tt.cx, tt.cy, tt.maxIter)
		if !tt.check(iter) {
			t.Errorf("%s: unexpected iteration count %d", tt.name, iter)
		}
	}
}

func TestEscapeColor(t *testing.T) {
	if got := EscapeColor(120, 120, 0); got != mandelbrotInterior {
		t.Errorf("expected interior color, got %v", got)
	}
	iter, mag2 := Escape(0.3, 0.8, 120)
	c := EscapeColor(iter, 120, mag2)
	if c == mandelbrotInterior || c.A != 255 {
		t.Errorf("expected exterior color, got %v", c)
	}
}

func TestMandelbrotWheelKeepsCursor(t *testing.T) {
	m := NewMandelbrot()
	bx, by := m.View.ToPlane(123, 456, 800, 600)
	m.Wheel(123, 456, -500, 800, 600)
	m.Wheel(123, 456, -500, 800, 600)
	ax, ay := m.View.ToPlane(123, 456, 800, 600)
	if math.Abs(ax-bx) > 1e-12 || math.Abs(ay-by) > 1e-12 {
		t.Errorf("cursor point moved from (%v,%v) to (%v,%v)", bx, by, ax, ay)
	}
	if m.View.Scale <= 200 {
		t.Errorf("expected zoom in, scale %v", m.View.Scale)
	}
}

func TestMandelbrotWheelClampsScale(t *testing.T) {
	m := NewMandelbrot()
	bx, by := m.View.ToPlane(10, 20, 800, 600)
	m.Wheel(10, 20, 1e6, 800, 600)
	if m.View.Scale != mandelbrotMinScale {
		t.Errorf("expected scale %v, got %v", float64(mandelbrotMinScale), m.View.Scale)
	}
	ax, ay := m.View.ToPlane(10, 20, 800, 600)
	if math.Abs(ax-bx) > 1e-9 || math.Abs(ay-by) > 1e-9 {
		t.Errorf("cursor point moved from (%v,%v) to (%v,%v)", bx, by, ax, ay)
	}

	m.Wheel(10, 20, -1e6, 800, 600)
	if m.View.Scale != mandelbrotMaxScale {
		t.Errorf("expected scale %v, got %v", float64(mandelbrotMaxScale), m.View.Scale)
	}
	if _, err := Nudge(m, "scale", 0.5); err != nil {
		t.Errorf("nudge after deep zoom failed: %v", err)
	}
}

func TestMandelbrotBufferFollowsSize(t *testing.T) {
	m := NewMandelbrot()
	r := canvas.NewRecorder(101, 61)
	m.Draw(r)
	if b := m.Buffer().Bounds(); b.Dx() != 50 || b.Dy() != 30 {
		t.Errorf("expected 50x30 buffer, got %v", b)
	}
	if r.Blits != 1 {
		t.Errorf("expected one blit, got %d", r.Blits)
	}
	r.Resize(40, 40)
	m.Draw(r)
	if b := m.Buffer().Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Errorf("expected 20x20 buffer after resize, got %v", b)
	}
}

func TestGeodesicIsOrthogonal(t *testing.T) {
	for i := 0; i < 60; i++ {
		a1 := float64(i) / 60 * 2 * math.Pi
		a2 := a1 + 0.3 + float64(i%7)*0.25
		ox, oz, r, ok := Geodesic(a1, a2)
		if !ok {
			continue
		}
		if math.Abs(ox*ox+oz*oz-(1+r*r)) > 1e-9 {
			t.Errorf("circle %d is not orthogonal to the boundary", i)
		}
		for _, a := range []float64{a1, a2} {
			d := math.Hypot(math.Cos(a)-ox, math.Sin(a)-oz)
			if math.Abs(d-r) > 1e-9 {
				t.Errorf("circle %d misses endpoint at angle %v: %v != %v", i, a, d, r)
			}
		}
		for _, p := range GeodesicArc(a1, a2, 20) {
			if p.X*p.X+p.Y*p.Y > 1+1e-9 {
				t.Errorf("arc %d leaves the disk at %v", i, p)
			}
		}
	}
}

func TestGeodesicDegenerate(t *testing.T) {
	if _, _, _, ok := Geodesic(0.4, 0.4+math.Pi); ok {
		t.Error("expected antipodal endpoints to be skipped")
	}
	if arc := GeodesicArc(1, 1+math.Pi, 20); arc != nil {
		t.Errorf("expected no arc, got %d points", len(arc))
	}
}

func TestHilbertBijection(t *testing.T) {
	for order := 1; order <= 6; order++ {
		n := 1 << order
		checkCurve(t, "hilbert", order, n, HilbertPoint)
	}
}

func TestPeanoBijection(t *testing.T) {
	for order := 1; order <= 4; order++ {
		n := ipow(3, order)
		checkCurve(t, "peano", order, n, PeanoPoint)
	}
}

func checkCurve(t *testing.T, name string, order, n int, at func(int, int) (int, int)) {
	t.Helper()
	seen := make(map[[2]int]bool, n*n)
	px, py := at(0, order)
	for i := 0; i < n*n; i++ {
		x, y := at(i, order)
		if x < 0 || y < 0 || x >= n || y >= n {
			t.Fatalf("%s order %d: index %d maps outside the grid to (%d,%d)", name, order, i, x, y)
		}
		if seen[[2]int{x, y}] {
			t.Fatalf("%s order %d: cell (%d,%d) visited twice", name, order, x, y)
		}
		seen[[2]int{x, y}] = true
		if i > 0 {
			if d := abs(x-px) + abs(y-py); d != 1 {
				t.Fatalf("%s order %d: step %d jumps %d cells", name, order, i, d)
			}
		}
		px, py = x, y
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestKochMorphContinuity(t *testing.T) {
	a, b := canvas.Point{X: 10, Y: 300}, canvas.Point{X: 500, Y: 280}
	for depth := 0; depth < 4; depth++ {
		full := KochEdge(nil, a, b, depth, 1)
		next := KochEdge(nil, a, b, depth+1, 0)
		if len(next) != 4*len(full) {
			t.Fatalf("depth %d: expected %d points, got %d", depth, 4*len(full), len(next))
		}
		for k, p := range full {
			if q := next[4*k+3]; p != q {
				t.Fatalf("depth %d point %d: %v != %v", depth, k, p, q)
			}
		}
	}
}

func TestKochFlatMorph(t *testing.T) {
	a, b := canvas.Point{X: 0, Y: 0}, canvas.Point{X: 9, Y: 0}
	pts := KochEdge(nil, a, b, 0, 0)
	for _, p := range pts {
		if math.Abs(p.Y) > 1e-12 {
			t.Errorf("morph 0 should stay on the edge, got %v", p)
		}
	}
}

func TestKochPhase(t *testing.T) {
	k := NewKoch()
	k.Step(Clock{Elapsed: 3750 * time.Millisecond})
	if d, m := k.Phase(); d != 1 || math.Abs(m-0.5) > 1e-12 {
		t.Errorf("expected depth 1 morph 0.5, got %d %v", d, m)
	}
	k.Step(Clock{Elapsed: 5 * 2500 * time.Millisecond})
	if d, m := k.Phase(); d != 0 || m != 0 {
		t.Errorf("expected cycle to restart, got %d %v", d, m)
	}
}

func TestKleinGluing(t *testing.T) {
	for u := 0.0; u < 2*math.Pi; u += 0.37 {
		for v := 0.0; v < 2*math.Pi; v += 0.41 {
			p, q := KleinPoint(u+2*math.Pi, v), KleinPoint(u, -v)
			if p.Sub(q).Length() > 1e-9 {
				t.Fatalf("(%v,%v): %v != %v", u, v, p, q)
			}
		}
	}
}

func TestRiemannSheetsGlue(t *testing.T) {
	for phase := 0.0; phase < 3; phase += 0.7 {
		if d := RiemannHeight(2*math.Pi, 0, phase) - RiemannHeight(0, math.Pi, phase); math.Abs(d) > 1e-9 {
			t.Errorf("first sheet does not continue into the second: %v", d)
		}
		if d := RiemannHeight(2*math.Pi, math.Pi, phase) - RiemannHeight(0, 0, phase); math.Abs(d) > 1e-9 {
			t.Errorf("second sheet does not continue into the first: %v", d)
		}
	}
}

func TestCoveringPoint(t *testing.T) {
	for tt := -8.0; tt <= 8; tt += 0.9 {
		p := CoveringPoint(tt, 1, 3, 180, 0.4)
		if r := math.Hypot(p.X, p.Z); math.Abs(r-180) > 1e-9 {
			t.Errorf("point off the base circle: radius %v", r)
		}
		up := CoveringPoint(tt+2, 1, 3, 180, 0.4)
		if math.Abs(up.X-p.X) > 1e-9 || math.Abs(up.Z-p.Z) > 1e-9 || up.Y <= p.Y {
			t.Errorf("one turn should lift straight up: %v -> %v", p, up)
		}
		next := CoveringPoint(tt, 2, 3, 180, 0.4)
		shifted := CoveringPoint(tt+2.0/3, 1, 3, 180, 0.4)
		if math.Abs(next.X-shifted.X) > 1e-9 || math.Abs(next.Z-shifted.Z) > 1e-9 {
			t.Errorf("sheets should cover the same circle: %v vs %v", next, shifted)
		}
	}
}

func TestOrbitalSpeedFallsWithRadius(t *testing.T) {
	if OrbitalSpeed(140) <= OrbitalSpeed(540) {
		t.Error("inner stars should orbit faster")
	}
	if got := OrbitalSpeed(100) / OrbitalSpeed(400); math.Abs(got-2) > 1e-12 {
		t.Errorf("expected 1/sqrt(r) scaling, got ratio %v", got)
	}
}

func TestCursorsWrap(t *testing.T) {
	h := NewHilbert()
	_ = h.SetParam("order", 2)
	_ = h.SetParam("speed", 50)
	var wrapped bool
	for i := 0; i < 20; i++ {
		before := h.Progress()
		h.Step(clockAt(i))
		if h.Progress() < before {
			wrapped = true
			if h.Progress() != 0 {
				t.Errorf("expected wrap to 0, got %v", h.Progress())
			}
		}
	}
	if !wrapped {
		t.Error("hilbert cursor never wrapped")
	}

	p := NewPeano()
	_ = p.SetParam("order", 1)
	_ = p.SetParam("speed", 100)
	for i := 0; i < 5; i++ {
		p.Step(clockAt(i))
	}
	if p.Progress() > float64(p.Total())+300 {
		t.Errorf("peano cursor ran past the pause: %v", p.Progress())
	}
}

func TestParticlesPersistAcrossFrames(t *testing.T) {
	b := NewBlackHole(Options{Seed: 7}.rng())
	n := b.Stars()
	if n < 12*40 || n > 12*120 {
		t.Errorf("unexpected star count %d", n)
	}
	first := b.stars[0].angle
	b.Step(clockAt(1))
	if b.Stars() != n {
		t.Error("star set changed size")
	}
	if want := first + b.stars[0].speed*0.7; math.Abs(b.stars[0].angle-want) > 1e-12 {
		t.Errorf("expected angle %v, got %v", want, b.stars[0].angle)
	}
}

func TestBlackHoleClamp(t *testing.T) {
	b := NewBlackHole(Options{Seed: 1}.rng())
	b.PointerDown(0, 0)
	b.PointerMove(0, 10000)
	if b.Camera.RotX != 0.4 {
		t.Errorf("expected pitch clamped to 0.4, got %v", b.Camera.RotX)
	}
}

func TestDrawIsFinite(t *testing.T) {
	cams := [][2]float64{{0, 0}, {400, 120}, {-900, -700}}
	for _, id := range IDs() {
		v, err := New(id, Options{Seed: 42})
		if err != nil {
			t.Fatal(err)
		}
		rec := canvas.NewRecorder(800, 600)
		for i, d := range cams {
			if in, ok := v.(Interactive); ok {
				in.PointerDown(0, 0)
				in.PointerMove(d[0], d[1])
				in.PointerUp()
			}
			for f := 0; f < 3; f++ {
				v.Step(clockAt(i*3 + f + 400))
			}
			v.Draw(rec)
		}
		if rec.Clears+rec.Blits < len(cams) {
			t.Errorf("%s: expected every frame to repaint the background", id)
		}
		if rec.Primitives() == 0 {
			t.Errorf("%s: drew nothing", id)
		}
		for _, p := range rec.Points {
			if !p.Finite() {
				t.Fatalf("%s: non-finite point %v", id, p)
			}
		}
	}
}

func TestAdditiveLayers(t *testing.T) {
	for _, id := range []string{"blackhole", "klein", "covering"} {
		v, _ := New(id, Options{Seed: 3})
		v.Step(clockAt(1))
		rec := canvas.NewRecorder(640, 480)
		v.Draw(rec)
		if rec.Additive == 0 {
			t.Errorf("%s: expected additive primitives", id)
		}
		if rec.Blend != canvas.Over {
			t.Errorf("%s: blend left as %v", id, rec.Blend)
		}
	}
}

func TestTracers(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"hilbert", 4096},
		{"peano", 729},
		{"koch", 3073},
	}
	for _, tt := range tests {
		v, _ := New(tt.id, Options{})
		got := len(v.(Tracer).Trace())
		if got != tt.want {
			t.Errorf("%s: expected %d points, got %d", tt.id, tt.want, got)
		}
	}
}

func TestKochTraceIsFullyGrown(t *testing.T) {
	k := NewKoch()
	pts := k.Trace()
	turns := 0
	for i := 1; i+1 < len(pts); i++ {
		a, b, c := pts[i-1], pts[i], pts[i+1]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if math.Abs(cross) > 1e-12 {
			turns++
		}
	}
	// every segment of the grown outline bends at both ends
	if turns < len(pts)/2 {
		t.Errorf("expected raised peaks along the outline, got %d turns in %d points", turns, len(pts))
	}

	if err := k.SetParam("levels", 2); err != nil {
		t.Fatal(err)
	}
	if got := len(k.Trace()); got != 1+3*16 {
		t.Errorf("expected %d points at two levels, got %d", 1+3*16, got)
	}
}

func TestCurveTrailsFade(t *testing.T) {
	tests := []struct {
		v interface {
			Visualizer
			dynamo.Configurable
		}
		order float64
		fade  int
	}{
		{NewHilbert(), 4, hilbertFade},
		{NewPeano(), 3, peanoFade},
	}
	for _, tt := range tests {
		_ = tt.v.SetParam("order", tt.order)
		_ = tt.v.SetParam("speed", 45)
		tt.v.Step(clockAt(0))
		tt.v.Step(clockAt(1))

		rec := canvas.NewRecorder(640, 480)
		tt.v.Draw(rec)
		if rec.Paths != 1 {
			t.Errorf("%s: expected one opaque stroke for the old segments, got %d", tt.v.ID(), rec.Paths)
		}
		if rec.Lines != tt.fade-1 {
			t.Errorf("%s: expected %d fading segments, got %d", tt.v.ID(), tt.fade-1, rec.Lines)
		}
	}
}

func TestDrawOnTinySurface(t *testing.T) {
	for _, id := range IDs() {
		v, _ := New(id, Options{Seed: 5})
		v.Step(clockAt(1))
		v.Draw(canvas.NewRecorder(1, 1))
	}
}

func TestRasterFrame(t *testing.T) {
	r := canvas.NewRaster(160, 120)
	for _, id := range IDs() {
		v, _ := New(id, Options{Seed: 9})
		v.Step(clockAt(30))
		v.Draw(r)
	}
}

func TestParamNamesSorted(t *testing.T) {
	names := ParamNames(NewLorenz())
	want := []string{"beta", "dt", "integrator", "rho", "sigma", "steps"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestNudge(t *testing.T) {
	m := NewMandelbrot()
	got, err := Nudge(m, "renderscale", 2)
	if err != nil || got != 1 {
		t.Errorf("expected renderscale 1, got %v (%v)", got, err)
	}

	h := NewHilbert()
	if got, _ := Nudge(h, "order", 1.05); got != 7 {
		t.Errorf("expected whole-number param to move by one, got %v", got)
	}
	if got, _ := Nudge(h, "order", 0.95); got != 6 {
		t.Errorf("expected order back to 6, got %v", got)
	}

	l := NewLorenz()
	if _, err := Nudge(l, "integrator", 1.05); err != nil {
		t.Errorf("expected integrator switch to rk4, got %v", err)
	}
	if _, err := Nudge(l, "integrator", 1.05); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected bounds error past rk4, got %v", err)
	}
	if _, err := Nudge(l, "nope", 2); !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}
