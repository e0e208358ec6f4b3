package projection

// OrbitConfig sets how pointer motion maps to rotation. When Clamp is set
// RotX stays within [MinX, MaxX].
type OrbitConfig struct {
	KX, KY     float64
	Clamp      bool
	MinX, MaxX float64
}

// ApplyDrag returns c rotated by a pointer delta of (dx, dy) pixels.
func ApplyDrag(c Camera, dx, dy float64, cfg OrbitConfig) Camera {
	c.RotY += dx * cfg.KY
	c.RotX += dy * cfg.KX
	if cfg.Clamp {
		c.RotX = clamp(c.RotX, cfg.MinX, cfg.MaxX)
	}
	return c
}

// Orbit is a drag-to-rotate controller. Motion stops as soon as the
// pointer is released.
type Orbit struct {
	Camera Camera
	Config OrbitConfig

	down         bool
	lastX, lastY float64
}

func NewOrbit(rotX, rotY float64, cfg OrbitConfig) *Orbit {
	return &Orbit{Camera: Camera{RotX: rotX, RotY: rotY, Zoom: 1}, Config: cfg}
}

func (o *Orbit) PointerDown(x, y float64) {
	o.down = true
	o.lastX, o.lastY = x, y
}

func (o *Orbit) PointerMove(x, y float64) {
	if !o.down {
		return
	}
	o.Camera = ApplyDrag(o.Camera, x-o.lastX, y-o.lastY, o.Config)
	o.lastX, o.lastY = x, y
}

func (o *Orbit) PointerUp() { o.down = false }

func (o *Orbit) Dragging() bool { return o.down }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
