// Package projection maps model coordinates onto the screen.
//
// A [Camera] holds the user-controlled orientation of a scene. [Rotate]
// applies yaw around the vertical axis followed by pitch around the
// horizontal axis, and [Lens.Project] divides by depth for perspective.
// [Orbit] turns pointer drags into camera rotation and [PlaneView] keeps
// the complex-plane point under the cursor fixed while zooming.
package projection
