// Package tui hosts the gallery in a terminal. Frames are rasterized at
// window resolution and downsampled into colored braille cells.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wonders/internal/animation"
	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/config"
	"github.com/san-kum/wonders/internal/dynamo"
	"github.com/san-kum/wonders/internal/wonders"
)

const (
	panelWidth = 40
	// chrome is the rows taken by the header and the help line.
	chrome = 2
)

var (
	canvasStyle      = lipgloss.NewStyle()
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	panelStyle       = lipgloss.NewStyle().Width(panelWidth).Padding(0, 1).Border(lipgloss.RoundedBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#444466"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#f43f5e"))
)

type TickMsg time.Time

type Model struct {
	cfg     *config.Config
	gallery *animation.Gallery
	frame   *canvas.Raster
	braille *canvas.Braille

	cols, rows int
	last       time.Time
	paused     bool
	showInfo   bool
	selected   int
	dragging   bool
	status     string
}

func NewModel(cfg *config.Config) (Model, error) {
	m := Model{
		cfg:      cfg,
		frame:    canvas.NewRaster(cfg.Width, cfg.Height),
		braille:  canvas.NewBraille(80, 24),
		cols:     80 + panelWidth,
		rows:     24 + chrome,
		showInfo: true,
	}
	m.gallery = animation.NewGallery(m.frame, func(id string) wonders.Options {
		return wonders.Options{Seed: cfg.Seed, Params: cfg.ParamsFor(id)}
	})
	if err := m.gallery.Mount(cfg.Wonder); err != nil {
		return m, err
	}
	m.layout()
	return m, nil
}

// Run starts the terminal program and blocks until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer m.gallery.Close()
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(1, m.cfg.FPS)), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// layout sizes the braille grid to the terminal and the raster to the
// configured width at the grid's aspect ratio. Braille dots are close to
// square, so the frame keeps its proportions.
func (m *Model) layout() {
	cols := m.cols
	if m.showInfo {
		cols -= panelWidth + 1
	}
	cols, rows := max(cols, 8), max(m.rows-chrome, 4)
	m.braille.Resize(cols, rows)

	pw, ph := m.braille.Pixels()
	w := m.cfg.Width
	h := max(1, w*ph/pw)
	m.gallery.Resize(w, h)
}

// toFrame maps a terminal cell to raster pixel coordinates.
func (m Model) toFrame(x, y int) (float64, float64) {
	w, h := m.pendingSize()
	fx := (float64(x) + 0.5) * float64(w) / float64(m.braille.Width)
	fy := (float64(y-1) + 0.5) * float64(h) / float64(m.braille.Height)
	return fx, fy
}

// pendingSize is the raster size after the next tick's resize.
func (m Model) pendingSize() (int, int) {
	pw, ph := m.braille.Pixels()
	return m.cfg.Width, max(1, m.cfg.Width*ph/pw)
}

func (m Model) View() string {
	var s strings.Builder
	id := m.gallery.ID()
	title := id
	if meta, err := wonders.Lookup(id); err == nil {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color(meta.Color)).Render(meta.Title)
	}
	s.WriteString(headerStyle.Render("wonders") + " :: " + title + "  " + m.statusText() + "\n")

	view := canvasStyle.Render(strings.TrimRight(m.braille.String(), "\n"))
	if m.showInfo {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, panelStyle.Render(m.panel()))
	}
	s.WriteString(view + "\n")
	if m.status != "" {
		s.WriteString(errorStyle.Render(m.status))
	} else {
		s.WriteString(helpStyle.Render("n/p wonder  tab param  [ ] tune  hjkl rotate  +/- zoom  i info  space pause  r reset  q quit"))
	}
	return s.String()
}

func (m Model) statusText() string {
	if m.paused {
		return labelStyle.Render("PAUSED")
	}
	st := m.gallery.Driver().Stats()
	return labelStyle.Render(fmt.Sprintf("frame %d  %.1fms", st.Frames, float64(st.Mean)/float64(time.Millisecond)))
}

func (m Model) panel() string {
	var s strings.Builder
	meta, err := wonders.Lookup(m.gallery.ID())
	if err == nil {
		s.WriteString(headerStyle.Render(meta.Title) + "\n")
		s.WriteString(labelStyle.Render(strings.ToUpper(meta.Category)) + "\n\n")
		s.WriteString(lipgloss.NewStyle().Width(panelWidth-2).Render(meta.Description) + "\n\n")
		s.WriteString(valueStyle.Render(meta.Formula) + "\n\n")
	}

	vis := m.gallery.Visualizer()
	names := wonders.ParamNames(vis)
	if len(names) > 0 {
		s.WriteString("PARAMETERS\n")
		params := vis.(dynamo.Configurable).GetParams()
		for i, k := range names {
			line := fmt.Sprintf("%-12s %.4g", k, params[k])
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
	}

	if costs := m.gallery.Driver().Stats().Millis(); len(costs) > 1 {
		chart := asciigraph.Plot(costs, asciigraph.Height(4), asciigraph.Width(panelWidth-10), asciigraph.Caption("frame ms"))
		s.WriteString("\n" + graphStyle.Render(chart) + "\n")
	}
	return s.String()
}
