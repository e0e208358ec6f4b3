// Package animation schedules one wonder against one drawing surface.
//
// A Driver is Idle until Start, Running until Cancel, and Cancelled for
// good afterwards. The host calls Tick once per display refresh; each
// running tick advances the wonder's clock, steps it and draws it.
package animation

import (
	"errors"
	"time"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/ring"
	"github.com/san-kum/wonders/internal/wonders"
)

var (
	ErrNoSurface = errors.New("animation: no drawing surface")
	ErrCancelled = errors.New("animation: driver cancelled")
)

type State int

const (
	Idle State = iota
	Running
	Cancelled
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Cancelled:
		return "cancelled"
	default:
		return "idle"
	}
}

const (
	// FrameBudget is one refresh at 60Hz.
	FrameBudget = 16700 * time.Microsecond
	historySize = 120
)

type Driver struct {
	vis     wonders.Visualizer
	surface canvas.Surface
	state   State
	clock   wonders.Clock

	resizePending bool
	pendingW      int
	pendingH      int

	costs      *ring.Buffer[time.Duration]
	overBudget int
	now        func() time.Time
}

func New(v wonders.Visualizer, s canvas.Surface) *Driver {
	return &Driver{
		vis:     v,
		surface: s,
		costs:   ring.New[time.Duration](historySize),
		now:     time.Now,
	}
}

func (d *Driver) State() State                   { return d.state }
func (d *Driver) Clock() wonders.Clock           { return d.clock }
func (d *Driver) Visualizer() wonders.Visualizer { return d.vis }
func (d *Driver) Surface() canvas.Surface        { return d.surface }

// Start moves an idle driver to Running. Starting a running driver is a
// no-op; a cancelled one cannot be restarted. Without a surface or a
// wonder the driver stays idle and every Tick does nothing.
func (d *Driver) Start() error {
	switch d.state {
	case Running:
		return nil
	case Cancelled:
		return ErrCancelled
	}
	if d.surface == nil || d.vis == nil {
		return ErrNoSurface
	}
	d.state = Running
	return nil
}

// Cancel stops the driver. No Step or Draw runs after it returns.
func (d *Driver) Cancel() { d.state = Cancelled }

// Resize records new surface dimensions. They are applied at the start of
// the next tick, before the wonder reads them; wonder state is kept.
func (d *Driver) Resize(w, h int) {
	d.resizePending = true
	d.pendingW, d.pendingH = w, h
}

// Tick runs one frame of dt and reports whether anything was drawn.
func (d *Driver) Tick(dt time.Duration) bool {
	if d.state != Running {
		return false
	}
	if d.resizePending {
		d.surface.Resize(d.pendingW, d.pendingH)
		d.resizePending = false
	}
	if dt < 0 {
		dt = 0
	}
	d.clock.Elapsed += dt
	d.clock.Delta = dt
	d.clock.Frame++

	start := d.now()
	d.vis.Step(d.clock)
	d.vis.Draw(d.surface)
	cost := d.now().Sub(start)

	d.costs.Push(cost)
	if cost > FrameBudget {
		d.overBudget++
	}
	return true
}

type Stats struct {
	Frames     int
	OverBudget int
	Last, Mean time.Duration
	Max        time.Duration
	// Costs holds the most recent frame durations, oldest first.
	Costs []time.Duration
}

// Stats summarizes the recent frame costs.
func (d *Driver) Stats() Stats {
	st := Stats{Frames: d.clock.Frame, OverBudget: d.overBudget, Costs: d.costs.Slice()}
	if len(st.Costs) == 0 {
		return st
	}
	var sum time.Duration
	for _, c := range st.Costs {
		sum += c
		st.Max = max(st.Max, c)
	}
	st.Mean = sum / time.Duration(len(st.Costs))
	st.Last = st.Costs[len(st.Costs)-1]
	return st
}

// Millis converts frame costs to milliseconds for plotting.
func (s Stats) Millis() []float64 {
	out := make([]float64, len(s.Costs))
	for i, c := range s.Costs {
		out[i] = float64(c) / float64(time.Millisecond)
	}
	return out
}
