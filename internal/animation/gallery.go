package animation

import (
	"fmt"
	"log"
	"time"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/wonders"
)

// Gallery shows one wonder at a time on a shared surface. Switching
// cancels the current driver and mounts a fresh visualizer, so nothing
// carries over between wonders.
type Gallery struct {
	Log *log.Logger

	surface canvas.Surface
	options func(id string) wonders.Options
	id      string
	driver  *Driver
}

// NewGallery builds a gallery over s. options supplies the seed and
// parameter overrides for each mount.
func NewGallery(s canvas.Surface, options func(id string) wonders.Options) *Gallery {
	if options == nil {
		options = func(string) wonders.Options { return wonders.Options{} }
	}
	return &Gallery{Log: log.Default(), surface: s, options: options}
}

func (g *Gallery) ID() string      { return g.id }
func (g *Gallery) Driver() *Driver { return g.driver }

func (g *Gallery) Visualizer() wonders.Visualizer {
	if g.driver == nil {
		return nil
	}
	return g.driver.Visualizer()
}

// Mount replaces the running wonder with a fresh instance of id. On error
// the previous wonder keeps running.
func (g *Gallery) Mount(id string) error {
	v, err := wonders.New(id, g.options(id))
	if err != nil {
		return err
	}
	d := New(v, g.surface)
	if err := d.Start(); err != nil {
		return fmt.Errorf("mount %s: %w", id, err)
	}
	if g.driver != nil {
		g.driver.Cancel()
		g.Log.Printf("unmounted %s after %d frames", g.id, g.driver.Clock().Frame)
	}
	g.id, g.driver = id, d
	g.Log.Printf("mounted %s", id)
	return nil
}

// Cycle mounts the wonder step places away in catalog order.
func (g *Gallery) Cycle(step int) error {
	return g.Mount(wonders.Next(g.id, step))
}

// Reset remounts the current wonder from scratch.
func (g *Gallery) Reset() error {
	return g.Mount(g.id)
}

func (g *Gallery) Resize(w, h int) {
	if g.driver == nil {
		if g.surface != nil {
			g.surface.Resize(w, h)
		}
		return
	}
	g.driver.Resize(w, h)
}

func (g *Gallery) Tick(dt time.Duration) bool {
	if g.driver == nil {
		return false
	}
	return g.driver.Tick(dt)
}

// Close cancels the running wonder.
func (g *Gallery) Close() {
	if g.driver != nil && g.driver.State() != Cancelled {
		g.driver.Cancel()
		g.Log.Printf("unmounted %s after %d frames", g.id, g.driver.Clock().Frame)
	}
}
