package canvas

import (
	"image"
	"image/color"

	"github.com/golang/freetype/raster"
)

const m16 = 1<<16 - 1

// additive is a raster.Painter that adds the premultiplied source color
// to the destination, clamping each channel.
type additive struct {
	img            *image.RGBA
	cr, cg, cb, ca uint32
}

func (p *additive) SetColor(c color.Color) {
	p.cr, p.cg, p.cb, p.ca = c.RGBA()
}

func (p *additive) Paint(ss []raster.Span, done bool) {
	b := p.img.Bounds()
	for _, s := range ss {
		if s.Y < b.Min.Y {
			continue
		}
		if s.Y >= b.Max.Y {
			return
		}
		if s.X0 < b.Min.X {
			s.X0 = b.Min.X
		}
		if s.X1 > b.Max.X {
			s.X1 = b.Max.X
		}
		if s.X0 >= s.X1 {
			continue
		}
		i0 := p.img.PixOffset(s.X0, s.Y)
		i1 := i0 + (s.X1-s.X0)*4
		for i := i0; i < i1; i += 4 {
			addPixel(p.img.Pix[i:i+4], p.cr*s.Alpha/m16, p.cg*s.Alpha/m16, p.cb*s.Alpha/m16, p.ca*s.Alpha/m16)
		}
	}
}

// addPixel adds 16-bit premultiplied channels into an 8-bit RGBA pixel.
func addPixel(px []uint8, r, g, b, a uint32) {
	px[0] = sat(uint32(px[0]) + r>>8)
	px[1] = sat(uint32(px[1]) + g>>8)
	px[2] = sat(uint32(px[2]) + b>>8)
	px[3] = sat(uint32(px[3]) + a>>8)
}

// overPixel composites 16-bit premultiplied channels over an 8-bit RGBA
// pixel the way image/draw does for a uniform source.
func overPixel(px []uint8, r, g, b, a uint32) {
	ia := m16 - a
	px[0] = uint8((uint32(px[0])*0x101*ia/m16 + r) >> 8)
	px[1] = uint8((uint32(px[1])*0x101*ia/m16 + g) >> 8)
	px[2] = uint8((uint32(px[2])*0x101*ia/m16 + b) >> 8)
	px[3] = uint8((uint32(px[3])*0x101*ia/m16 + a) >> 8)
}

func sat(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
