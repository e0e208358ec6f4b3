package projection

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera is the orientation and placement of one scene. Zoom of zero is
// treated as one so the zero value is usable.
type Camera struct {
	RotX, RotY       float64
	Zoom             float64
	CenterX, CenterY float64
}

// Centered returns a copy of c centered on a w by h surface.
func (c Camera) Centered(w, h int) Camera {
	c.CenterX, c.CenterY = float64(w)/2, float64(h)/2
	return c
}

func (c Camera) zoom() float64 {
	if c.Zoom == 0 {
		return 1
	}
	return c.Zoom
}

// Rotate applies yaw (RotY, x/z plane) then pitch (RotX, y/z plane).
func Rotate(p Vec3, c Camera) Vec3 {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	rx := p.X*cy - p.Z*sy
	rz := p.X*sy + p.Z*cy
	ry := p.Y*cx - rz*sx
	rz = p.Y*sx + rz*cx
	return Vec3{rx, ry, rz}
}

// Lens controls perspective strength. Focal of zero disables the
// perspective divide.
type Lens struct {
	Focal float64
}

// Projected is a point on screen. Depth is the rotated z; Scale is the
// perspective factor applied to it, larger for nearer points.
type Projected struct {
	X, Y  float64
	Depth float64
	Scale float64
}

// Finite reports whether both screen coordinates are real numbers.
func (p Projected) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ScaleAt returns the perspective factor for a rotated depth z.
func (l Lens) ScaleAt(z float64) float64 {
	if l.Focal == 0 {
		return 1
	}
	return l.Focal / (l.Focal + z)
}

// Project rotates p by the camera and maps it onto the screen.
func (l Lens) Project(p Vec3, c Camera) Projected {
	return l.ProjectRotated(Rotate(p, c), c)
}

// ProjectRotated maps an already rotated point onto the screen.
func (l Lens) ProjectRotated(r Vec3, c Camera) Projected {
	s := l.ScaleAt(r.Z) * c.zoom()
	return Projected{X: c.CenterX + r.X*s, Y: c.CenterY + r.Y*s, Depth: r.Z, Scale: s}
}
