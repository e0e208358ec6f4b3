package gui

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/wonders/internal/canvas"
	"github.com/san-kum/wonders/internal/wonders"
)

var (
	ColBg      = rl.NewColor(2, 3, 6, 255)
	ColPanel   = rl.NewColor(10, 10, 14, 210)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(160, 160, 170, 255)
	ColTextDim = rl.NewColor(80, 80, 90, 255)
	ColError   = rl.NewColor(244, 63, 94, 255)
)

// screen owns the texture the software frame is uploaded into.
type screen struct {
	tex    rl.Texture2D
	w, h   int
	pixels []color.RGBA
}

func newScreen(img *image.RGBA) *screen {
	s := &screen{}
	s.load(img)
	return s
}

func (s *screen) load(img *image.RGBA) {
	rimg := rl.NewImageFromImage(img)
	s.tex = rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	s.w, s.h = img.Bounds().Dx(), img.Bounds().Dy()
	s.pixels = make([]color.RGBA, s.w*s.h)
}

func (s *screen) unload() { rl.UnloadTexture(s.tex) }

// present uploads img and draws it at the window origin. The texture is
// recreated when the frame size changes.
func (s *screen) present(img *image.RGBA) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w != s.w || h != s.h {
		s.unload()
		s.load(img)
	}
	for i := range s.pixels {
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		s.pixels[i] = color.RGBA{p[0], p[1], p[2], 255}
	}
	rl.UpdateTexture(s.tex, s.pixels)
	rl.DrawTexture(s.tex, 0, 0, rl.White)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) DrawHUD() {
	w, h := a.frame.Size()
	id := a.gallery.ID()
	accent := ColSelect
	if m, err := wonders.Lookup(id); err == nil {
		accent = rl.NewColor(hexColor(m.Color))
	}

	a.drawText("wonders", 30, 30, 24, ColSelect)
	a.drawText(":: "+id, 150, 34, 16, accent)
	a.drawText(a.statusLine(), w-200, 30, 16, ColText)
	if a.status != "" {
		a.drawText(a.status, 30, h-60, 14, ColError)
	}
	a.drawText("[N/P] WONDER  [TAB] PARAM  [ [ ] ] ADJUST  [I] INFO  [SPACE] PAUSE  [R] RESET  [Q] QUIT", 30, h-30, 14, ColTextDim)
}

func (a *App) drawInfo() {
	m, err := wonders.Lookup(a.gallery.ID())
	if err != nil {
		return
	}
	lines := panelLines(m, a.gallery.Visualizer(), a.paramSel)
	x, y := 30, 80
	rl.DrawRectangle(int32(x-12), int32(y-12), 420, int32(len(lines)*20+24), ColPanel)
	for i, l := range lines {
		col := ColText
		switch {
		case i == 0:
			col = ColSelect
		case l.selected:
			col = ColSelect
		case l.dim:
			col = ColTextDim
		}
		a.drawText(l.text, x, y+i*20, 14, col)
	}
}

func hexColor(s string) (uint8, uint8, uint8, uint8) {
	c := canvas.Hex(s)
	return c.R, c.G, c.B, 255
}
