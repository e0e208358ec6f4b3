package wonders

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/dynamo"
)

var ErrUnknownWonder = errors.New("wonders: unknown wonder")

// Clock is the accumulated time handed to each tick.
type Clock struct {
	Elapsed time.Duration
	Delta   time.Duration
	Frame   int
}

// Millis returns Elapsed in fractional milliseconds.
func (c Clock) Millis() float64 {
	return float64(c.Elapsed) / float64(time.Millisecond)
}

type Visualizer interface {
	ID() string
	// Step advances the simulation by one tick.
	Step(c Clock)
	// Draw renders the current state. It does not advance the simulation.
	Draw(s canvas.Surface)
}

// Interactive wonders rotate their camera while the pointer is dragged.
type Interactive interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
}

// Zoomable wonders rescale their view around the cursor on wheel input.
type Zoomable interface {
	Wheel(x, y, deltaY float64, w, h int)
}

// Tracer wonders expose the full curve they are drawing, in their own
// model coordinates.
type Tracer interface {
	Trace() []canvas.Point
}

type Options struct {
	// Seed drives every random attribute. Zero picks the wall clock.
	Seed   int64
	Params map[string]float64
}

func (o Options) rng() *rand.Rand {
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

type factory func(Options) Visualizer

var registry = map[string]factory{
	"lorenz":     func(o Options) Visualizer { return NewLorenz() },
	"poincare":   func(o Options) Visualizer { return NewPoincare() },
	"mandelbrot": func(o Options) Visualizer { return NewMandelbrot() },
	"blackhole":  func(o Options) Visualizer { return NewBlackHole(o.rng()) },
	"riemann":    func(o Options) Visualizer { return NewRiemann() },
	"covering":   func(o Options) Visualizer { return NewCovering() },
	"klein":      func(o Options) Visualizer { return NewKlein(o.rng()) },
	"peano":      func(o Options) Visualizer { return NewPeano() },
	"hilbert":    func(o Options) Visualizer { return NewHilbert() },
	"koch":       func(o Options) Visualizer { return NewKoch() },
}

// New mounts a fresh wonder. Params are applied in map order; the first
// rejected one aborts construction.
func New(id string, opts Options) (Visualizer, error) {
	f, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWonder, id)
	}
	v := f(opts)
	if len(opts.Params) == 0 {
		return v, nil
	}
	cfg, ok := v.(dynamo.Configurable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, dynamo.ErrUnknownParam)
	}
	for name, value := range opts.Params {
		if err := cfg.SetParam(name, value); err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
	}
	return v, nil
}

// IDs lists every wonder in catalog order.
func IDs() []string {
	cat := Catalog()
	ids := make([]string, 0, len(cat))
	for _, m := range cat {
		ids = append(ids, m.ID)
	}
	return ids
}

// Next returns the wonder after id in catalog order, wrapping around.
// A negative step walks backwards.
func Next(id string, step int) string {
	ids := IDs()
	for i, v := range ids {
		if v == id {
			n := len(ids)
			return ids[((i+step)%n+n)%n]
		}
	}
	return ids[0]
}
