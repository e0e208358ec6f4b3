package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	xdraw "golang.org/x/image/draw"
)

// Raster is a software Surface over an *image.RGBA. Paths are filled and
// stroked by draw2d; additive compositing swaps in a painter that sums
// spans into the frame instead of blending them.
type Raster struct {
	img   *image.RGBA
	over  *draw2dimg.GraphicContext
	add   *draw2dimg.GraphicContext
	blend Blend

	glow      float64
	glowColor color.NRGBA
}

func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.Resize(w, h)
	return r
}

// Image returns the backing frame. It is reallocated by Resize.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if r.img != nil && r.img.Bounds().Dx() == w && r.img.Bounds().Dy() == h {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	r.over = newContext(draw2dimg.NewGraphicContext(r.img))
	r.add = newContext(draw2dimg.NewGraphicContextWithPainter(r.img, &additive{img: r.img}))
}

func newContext(gc *draw2dimg.GraphicContext) *draw2dimg.GraphicContext {
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)
	return gc
}

func (r *Raster) gc() *draw2dimg.GraphicContext {
	if r.blend == Lighter {
		return r.add
	}
	return r.over
}

func (r *Raster) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) SetBlend(b Blend) { r.blend = b }

func (r *Raster) SetGlow(radius float64, c color.Color) {
	if radius <= 0 || c == nil || !finite(radius) {
		r.glow = 0
		return
	}
	r.glow = radius
	r.glowColor = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// halo runs fn for each glow pass, from widest to narrowest.
func (r *Raster) halo(fn func(spread float64, c color.Color)) {
	if r.glow <= 0 {
		return
	}
	for _, k := range [...]float64{1, 0.5} {
		fn(r.glow*k, WithAlpha(r.glowColor, 0.35))
	}
}

func (r *Raster) StrokeLine(a, b Point, width float64, c color.Color) {
	r.StrokePath([]Point{a, b}, false, width, c)
}

func (r *Raster) StrokePath(pts []Point, closed bool, width float64, c color.Color) {
	if len(pts) < 2 || !allFinite(pts) || !finite(width) {
		return
	}
	r.halo(func(spread float64, hc color.Color) {
		r.stroke(pts, closed, width+spread, hc)
	})
	r.stroke(pts, closed, width, c)
}

func (r *Raster) stroke(pts []Point, closed bool, width float64, c color.Color) {
	gc := r.gc()
	gc.BeginPath()
	gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		gc.LineTo(p.X, p.Y)
	}
	if closed {
		gc.Close()
	}
	gc.SetLineWidth(width)
	gc.SetStrokeColor(c)
	gc.Stroke()
}

func (r *Raster) FillPolygon(pts []Point, c color.Color) {
	if len(pts) < 3 || !allFinite(pts) {
		return
	}
	gc := r.gc()
	gc.BeginPath()
	gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		gc.LineTo(p.X, p.Y)
	}
	gc.Close()
	gc.SetFillColor(c)
	gc.Fill()
}

func (r *Raster) FillCircle(center Point, radius float64, c color.Color) {
	if !center.Finite() || !finite(radius) || radius <= 0 {
		return
	}
	r.halo(func(spread float64, hc color.Color) {
		r.circle(center, radius+spread, hc)
	})
	r.circle(center, radius, c)
}

func (r *Raster) circle(center Point, radius float64, c color.Color) {
	gc := r.gc()
	gc.BeginPath()
	gc.ArcTo(center.X, center.Y, radius, radius, 0, 2*math.Pi)
	gc.Close()
	gc.SetFillColor(c)
	gc.Fill()
}

func (r *Raster) FillRadial(center Point, r0, r1 float64, stops []Stop) {
	if !center.Finite() || !finite(r0, r1) || r1 <= 0 || len(stops) == 0 {
		return
	}
	b := r.img.Bounds()
	x0 := max(b.Min.X, int(math.Floor(center.X-r1)))
	x1 := min(b.Max.X, int(math.Ceil(center.X+r1)))
	y0 := max(b.Min.Y, int(math.Floor(center.Y-r1)))
	y1 := min(b.Max.Y, int(math.Ceil(center.Y+r1)))
	span := r1 - r0
	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - center.X
			d := math.Hypot(dx, dy)
			if d > r1 {
				continue
			}
			t := 0.0
			if span > 0 {
				t = (d - r0) / span
			}
			col := GradientAt(stops, t)
			if col.A == 0 {
				continue
			}
			cr, cg, cb, ca := col.RGBA()
			px := r.img.Pix[r.img.PixOffset(x, y):]
			if r.blend == Lighter {
				addPixel(px, cr, cg, cb, ca)
			} else {
				overPixel(px, cr, cg, cb, ca)
			}
		}
	}
}

func (r *Raster) DrawScaled(img image.Image) {
	if img == nil {
		return
	}
	xdraw.BiLinear.Scale(r.img, r.img.Bounds(), img, img.Bounds(), xdraw.Over, nil)
}
