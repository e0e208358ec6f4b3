package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/wonders/internal/canvas"
)

// PolylineSVG draws points as one open path fitted into a width x height
// document with 10% padding. Both axes share one scale so curves keep
// their shape; y grows downwards as on screen.
func PolylineSVG(points []canvas.Point, width, height int, strokeColor string) string {
	if len(points) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	rangeX := math.Max(maxX-minX, 1e-12)
	rangeY := math.Max(maxY-minY, 1e-12)
	scale := math.Min(float64(width)/(rangeX*1.2), float64(height)/(rangeY*1.2))
	offX := (float64(width) - rangeX*scale) / 2
	offY := (float64(height) - rangeY*scale) / 2
	strokeWidth := math.Max(0.5, math.Min(2.5, scale*0.25))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#05070a"/>
<path fill="none" stroke="%s" stroke-width="%.2f" stroke-linejoin="round" stroke-linecap="round" d="M`,
		width, height, width, height, strokeColor, strokeWidth)

	for i, p := range points {
		x := offX + (p.X-minX)*scale
		y := offY + (p.Y-minY)*scale
		if i == 0 {
			fmt.Fprintf(&sb, "%.2f,%.2f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.2f,%.2f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
