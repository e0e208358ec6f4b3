// Package gui hosts the gallery in a raylib window. Frames are rasterized
// in software and uploaded as a texture once per display refresh.
package gui

import (
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/wonders/internal/animation"
	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/config"
	"github.com/san-kum/wonders/internal/wonders"
)

// wheelNotch converts raylib wheel steps to browser-style deltaY.
const wheelNotch = 100

type App struct {
	cfg     *config.Config
	gallery *animation.Gallery
	frame   *canvas.Raster
	screen  *screen
	font    rl.Font

	dragging bool
	paused   bool
	showInfo bool
	paramSel int
	status   string
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "wonders")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:      cfg,
		frame:    canvas.NewRaster(cfg.Width, cfg.Height),
		font:     rl.GetFontDefault(),
		showInfo: true,
	}
	a.gallery = animation.NewGallery(a.frame, func(id string) wonders.Options {
		return wonders.Options{Seed: cfg.Seed, Params: cfg.ParamsFor(id)}
	})
	if err := a.gallery.Mount(cfg.Wonder); err != nil {
		return nil, err
	}
	a.screen = newScreen(a.frame.Image())
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	a, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer a.screen.unload()
	defer a.gallery.Close()

	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and advances one frame. It reports false once the
// user quits.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	if rl.IsWindowResized() {
		a.gallery.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	}

	switch {
	case rl.IsKeyPressed(rl.KeyN) || rl.IsKeyPressed(rl.KeyRight):
		a.switchTo(a.gallery.Cycle(1))
	case rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyLeft):
		a.switchTo(a.gallery.Cycle(-1))
	case rl.IsKeyPressed(rl.KeyR):
		a.switchTo(a.gallery.Reset())
	}
	if rl.IsKeyPressed(rl.KeyI) {
		a.showInfo = !a.showInfo
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	a.updateParams()
	a.updatePointer()

	if !a.paused {
		a.gallery.Tick(time.Duration(rl.GetFrameTime() * float32(time.Second)))
	}
	return true
}

func (a *App) switchTo(err error) {
	a.dragging = false
	a.paramSel = 0
	if err != nil {
		a.status = err.Error()
		log.Printf("gui: %v", err)
		return
	}
	a.status = ""
}

func (a *App) updateParams() {
	names := wonders.ParamNames(a.gallery.Visualizer())
	if len(names) == 0 {
		return
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.paramSel = (a.paramSel + 1) % len(names)
	}
	a.paramSel = min(a.paramSel, len(names)-1)

	factor := 0.0
	switch {
	case rl.IsKeyPressed(rl.KeyRightBracket):
		factor = 1.05
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		factor = 0.95
	default:
		return
	}
	name := names[a.paramSel]
	v, err := wonders.Nudge(a.gallery.Visualizer(), name, factor)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
	a.cfg.SetParam(a.gallery.ID(), name, v)
}

// updatePointer forwards drags and wheel motion. Leaving the window ends a
// drag like a release does.
func (a *App) updatePointer() {
	vis := a.gallery.Visualizer()
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	if in, ok := vis.(wonders.Interactive); ok {
		switch {
		case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
			in.PointerDown(x, y)
			a.dragging = true
		case a.dragging && (rl.IsMouseButtonReleased(rl.MouseButtonLeft) || !rl.IsCursorOnScreen()):
			in.PointerUp()
			a.dragging = false
		case a.dragging:
			in.PointerMove(x, y)
		}
	}

	if z, ok := vis.(wonders.Zoomable); ok {
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			w, h := a.frame.Size()
			z.Wheel(x, y, -float64(wheel)*wheelNotch, w, h)
		}
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.screen.present(a.frame.Image())
	a.DrawHUD()
	if a.showInfo {
		a.drawInfo()
	}

	rl.EndDrawing()
}

func (a *App) statusLine() string {
	if a.paused {
		return "PAUSED"
	}
	st := a.gallery.Driver().Stats()
	return fmt.Sprintf("%d FPS  %.1fms", rl.GetFPS(), float64(st.Mean)/float64(time.Millisecond))
}
