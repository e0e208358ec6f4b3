package projection

import "math"

// Lensing bends light from behind the focal plane over the center of the
// scene. It is a visual approximation: rotated points with negative depth
// have their vertical coordinate mirrored and stretched by K/(d+Epsilon)
// divided by Norm, d being the distance from the center in the x/y plane.
type Lensing struct {
	K, Epsilon, Norm float64
}

// Apply returns the displaced vertical coordinate for a rotated point.
func (l Lensing) Apply(r Vec3) float64 {
	if r.Z >= 0 {
		return r.Y
	}
	d := math.Hypot(r.X, r.Y)
	den := d + l.Epsilon
	if den <= 0 || l.Norm == 0 {
		return r.Y
	}
	return -r.Y * (l.K / den) / l.Norm
}
