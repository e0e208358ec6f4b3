package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return f.Close()
}

// Animation collects frames for an animated GIF. Frames wider than
// MaxWidth are scaled down first.
type Animation struct {
	MaxWidth int
	// Delay is the per-frame delay in hundredths of a second.
	Delay int

	anim gif.GIF
}

func NewAnimation(maxWidth, fps int) *Animation {
	delay := 2
	if fps > 0 {
		delay = max(1, 100/fps)
	}
	return &Animation{MaxWidth: maxWidth, Delay: delay}
}

// Add quantizes img to the web palette and appends it.
func (a *Animation) Add(img image.Image) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if a.MaxWidth > 0 && w > a.MaxWidth {
		h = max(1, h*a.MaxWidth/w)
		w = a.MaxWidth
	}
	frame := image.NewPaletted(image.Rect(0, 0, w, h), palette.WebSafe)
	if w == b.Dx() && h == b.Dy() {
		draw.FloydSteinberg.Draw(frame, frame.Bounds(), img, b.Min)
	} else {
		scaled := image.NewRGBA(frame.Bounds())
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		draw.FloydSteinberg.Draw(frame, frame.Bounds(), scaled, image.Point{})
	}
	a.anim.Image = append(a.anim.Image, frame)
	a.anim.Delay = append(a.anim.Delay, a.Delay)
}

func (a *Animation) Len() int { return len(a.anim.Image) }

func (a *Animation) Encode(w io.Writer) error {
	if a.Len() == 0 {
		return fmt.Errorf("export: no frames recorded")
	}
	return gif.EncodeAll(w, &a.anim)
}

func (a *Animation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("export: %s: %w", path, err)
	}
	return f.Close()
}
