package wonders

import (
	"image/color"
	"math"

	"github.com/san-kum/wonders/internal/canvas"
)

// HilbertPoint maps index i in [0, 4^order) to its cell on the
// 2^order x 2^order grid. Consecutive indices land on adjacent cells.
func HilbertPoint(i, order int) (x, y int) {
	base := [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	x, y = base[i&3][0], base[i&3][1]
	for j := 1; j < order; j++ {
		i >>= 2
		n := 1 << j
		switch i & 3 {
		case 0:
			x, y = y, x
		case 1:
			y += n
		case 2:
			x += n
			y += n
		case 3:
			x, y = n-1-y+n, n-1-x
		}
	}
	return x, y
}

// PeanoPoint maps index i in [0, 9^order) to its cell on the
// 3^order x 3^order grid. The base-3 digits of i are read most
// significant first in (column, row) pairs; a digit is mirrored when the
// digits already consumed along the other axis add up to an odd number.
func PeanoPoint(i, order int) (x, y int) {
	digits := make([]int, 2*order)
	for k := len(digits) - 1; k >= 0; k-- {
		digits[k] = i % 3
		i /= 3
	}
	sumA, sumB := 0, 0
	for k := 0; k < order; k++ {
		a, b := digits[2*k], digits[2*k+1]
		if sumB%2 == 1 {
			a = 2 - a
		}
		sumA += digits[2*k]
		if sumA%2 == 1 {
			b = 2 - b
		}
		sumB += digits[2*k+1]
		x = x*3 + a
		y = y*3 + b
	}
	return x, y
}

// gridCurve returns the whole curve as grid coordinates.
func gridCurve(total, order int, at func(i, order int) (int, int)) []canvas.Point {
	pts := make([]canvas.Point, total)
	for i := range pts {
		x, y := at(i, order)
		pts[i] = canvas.Point{X: float64(x), Y: float64(y)}
	}
	return pts
}

func ipow(b, e int) int {
	return int(math.Pow(float64(b), float64(e)))
}

// strokeTrail draws segments [0, segs) of a growing curve whose cursor sits
// at limit. Segments within fade of the cursor ramp in opacity with
// recency; older ones share one opaque stroke.
func strokeTrail(s canvas.Surface, at func(int) canvas.Point, limit, segs, fade int, width float64, shade func(opacity float64) color.Color) {
	solid := max(0, min(segs, limit-fade+1))
	if solid > 0 {
		pts := make([]canvas.Point, solid+1)
		for i := range pts {
			pts[i] = at(i)
		}
		s.StrokePath(pts, false, width, shade(1))
	}
	for i := solid; i < segs; i++ {
		opacity := math.Min(1, float64(limit-i)/float64(fade))
		s.StrokeLine(at(i), at(i+1), width, shade(opacity))
	}
}
