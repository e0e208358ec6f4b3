package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/wonders/internal/wonders"
)

const (
	// rotateStep is the simulated drag, in raster pixels, of one arrow key.
	rotateStep = 40
	// zoomStep is the wheel delta of one +/- press: a factor of 1.1.
	zoomStep = 500
)

// Update handles input events and advances the gallery.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.layout()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TickMsg:
		now := time.Time(msg)
		dt := time.Second / time.Duration(max(1, m.cfg.FPS))
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		if !m.paused && m.gallery.Tick(dt) {
			m.braille.Encode(m.frame.Image())
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "n":
		m.switched(m.gallery.Cycle(1))
	case "p":
		m.switched(m.gallery.Cycle(-1))
	case "r":
		m.switched(m.gallery.Reset())
	case "i":
		m.showInfo = !m.showInfo
		m.layout()
	case "tab":
		if n := len(wonders.ParamNames(m.gallery.Visualizer())); n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case "]":
		m.adjustParam(1.05)
	case "[":
		m.adjustParam(0.95)
	case "left", "h":
		m.rotate(-rotateStep, 0)
	case "right", "l":
		m.rotate(rotateStep, 0)
	case "up", "k":
		m.rotate(0, -rotateStep)
	case "down", "j":
		m.rotate(0, rotateStep)
	case "+", "=":
		m.zoom(-zoomStep)
	case "-", "_":
		m.zoom(zoomStep)
	}
	return m, nil
}

func (m *Model) switched(err error) {
	m.selected = 0
	m.dragging = false
	if err != nil {
		m.status = err.Error()
		log.Printf("tui: %v", err)
		return
	}
	m.status = ""
	m.layout()
}

func (m *Model) adjustParam(factor float64) {
	vis := m.gallery.Visualizer()
	names := wonders.ParamNames(vis)
	if len(names) == 0 {
		return
	}
	name := names[min(m.selected, len(names)-1)]
	v, err := wonders.Nudge(vis, name, factor)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.cfg.SetParam(m.gallery.ID(), name, v)
}

// rotate replays a short drag so keyboard rotation obeys the same
// sensitivity and clamps as the pointer.
func (m *Model) rotate(dx, dy float64) {
	in, ok := m.gallery.Visualizer().(wonders.Interactive)
	if !ok {
		return
	}
	in.PointerDown(0, 0)
	in.PointerMove(dx, dy)
	in.PointerUp()
}

func (m *Model) zoom(deltaY float64) {
	z, ok := m.gallery.Visualizer().(wonders.Zoomable)
	if !ok {
		return
	}
	w, h := m.pendingSize()
	z.Wheel(float64(w)/2, float64(h)/2, deltaY, w, h)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	vis := m.gallery.Visualizer()
	x, y := m.toFrame(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if z, ok := vis.(wonders.Zoomable); ok && msg.Action == tea.MouseActionPress {
			delta := -100.0
			if msg.Button == tea.MouseButtonWheelDown {
				delta = 100
			}
			w, h := m.pendingSize()
			z.Wheel(x, y, delta, w, h)
		}
		return
	}

	in, ok := vis.(wonders.Interactive)
	if !ok {
		return
	}
	inside := msg.X >= 0 && msg.X < m.braille.Width && msg.Y >= 1 && msg.Y <= m.braille.Height
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inside:
		in.PointerDown(x, y)
		m.dragging = true
	case m.dragging && (msg.Action == tea.MouseActionRelease || !inside):
		in.PointerUp()
		m.dragging = false
	case m.dragging && msg.Action == tea.MouseActionMotion:
		in.PointerMove(x, y)
	}
}
