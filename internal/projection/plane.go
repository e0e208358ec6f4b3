package projection

import "math"

// WheelRate converts wheel delta units into zoom exponent.
const WheelRate = 0.002

// PlaneView maps screen pixels to the complex plane. Scale is pixels per
// unit; the view center sits in the middle of the surface.
type PlaneView struct {
	CenterX, CenterY float64
	Scale            float64
}

// ToPlane returns the plane coordinate under screen pixel (sx, sy).
func (v PlaneView) ToPlane(sx, sy float64, w, h int) (float64, float64) {
	return (sx-float64(w)/2)/v.Scale + v.CenterX, (sy-float64(h)/2)/v.Scale + v.CenterY
}

// ZoomAt rescales the view by 1.1^(-deltaY*WheelRate) and recenters it so
// the plane point under (sx, sy) stays under the cursor.
func (v PlaneView) ZoomAt(sx, sy, deltaY float64, w, h int) PlaneView {
	return v.ZoomWithin(sx, sy, deltaY, w, h, 0, math.Inf(1))
}

// ZoomWithin is ZoomAt with the resulting scale clamped to [lo, hi].
func (v PlaneView) ZoomWithin(sx, sy, deltaY float64, w, h int, lo, hi float64) PlaneView {
	px, py := v.ToPlane(sx, sy, w, h)
	v.Scale = math.Min(hi, math.Max(lo, v.Scale*math.Pow(1.1, -deltaY*WheelRate)))
	v.CenterX = px - (sx-float64(w)/2)/v.Scale
	v.CenterY = py - (sy-float64(h)/2)/v.Scale
	return v
}
