package canvas

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Braille is a grid of terminal cells, each covering 2x4 sub-pixels.
type Braille struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]lipgloss.Color
	// Threshold is the minimum luminance in [0, 255] for a dot to be set.
	Threshold float64
}

func NewBraille(w, h int) *Braille {
	b := &Braille{Threshold: 24}
	b.Resize(w, h)
	return b
}

// Resize reallocates the grid for w columns and h rows.
func (b *Braille) Resize(w, h int) {
	b.Width, b.Height = max(w, 1), max(h, 1)
	b.Grid = make([][]rune, b.Height)
	b.Colors = make([][]lipgloss.Color, b.Height)
	for i := range b.Grid {
		b.Grid[i] = make([]rune, b.Width)
		b.Colors[i] = make([]lipgloss.Color, b.Width)
	}
	b.Clear()
}

// Pixels returns the sub-pixel resolution of the grid.
func (b *Braille) Pixels() (int, int) { return b.Width * 2, b.Height * 4 }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Width || row >= b.Height {
		return
	}
	b.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (b *Braille) Clear() {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = blank
			b.Colors[i][j] = ""
		}
	}
}

// Encode downsamples img onto the dot grid. Each dot takes the brightest
// pixel of the block it covers so thin strokes survive the reduction; it is
// lit when that pixel is bright enough. A cell takes the average color of
// its lit dots, quantized so neighbouring cells can share one style.
func (b *Braille) Encode(img *image.RGBA) {
	b.Clear()
	if img == nil || img.Bounds().Empty() {
		return
	}
	bounds := img.Bounds()
	pw, ph := b.Pixels()
	sx := float64(bounds.Dx()) / float64(pw)
	sy := float64(bounds.Dy()) / float64(ph)
	span := func(i int, s float64, limit int) (int, int) {
		lo := int(float64(i) * s)
		hi := max(lo+1, int(float64(i+1)*s))
		return min(lo, limit-1), min(hi, limit)
	}
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			var r, g, bl, n int
			for dy := 0; dy < 4; dy++ {
				y0, y1 := span(row*4+dy, sy, bounds.Dy())
				for dx := 0; dx < 2; dx++ {
					x0, x1 := span(col*2+dx, sx, bounds.Dx())
					best, bi := -1.0, 0
					for y := y0; y < y1; y++ {
						for x := x0; x < x1; x++ {
							i := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
							l := luma(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
							if l > best {
								best, bi = l, i
							}
						}
					}
					if best < b.Threshold {
						continue
					}
					b.Grid[row][col] |= rune(pixelMap[dy][dx])
					r, g, bl, n = r+int(img.Pix[bi]), g+int(img.Pix[bi+1]), bl+int(img.Pix[bi+2]), n+1
				}
			}
			if n > 0 {
				b.Colors[row][col] = lipgloss.Color(fmt.Sprintf("#%02x%02x%02x",
					quantize(r/n), quantize(g/n), quantize(bl/n)))
			}
		}
	}
}

func luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

func quantize(v int) int {
	return min(255, (v/32)*32+16)
}

// String renders the grid, coloring runs of cells that share a color.
func (b *Braille) String() string {
	var sb strings.Builder
	for row := range b.Grid {
		start := 0
		for col := 1; col <= b.Width; col++ {
			if col < b.Width && b.Colors[row][col] == b.Colors[row][start] {
				continue
			}
			run := string(b.Grid[row][start:col])
			if c := b.Colors[row][start]; c != "" {
				run = lipgloss.NewStyle().Foreground(c).Render(run)
			}
			sb.WriteString(run)
			start = col
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
