// Package wonders implements the gallery of mathematical visualizers.
//
// Every wonder owns its simulation state and its camera. A host advances
// it with Step once per display refresh and renders it with Draw onto a
// [canvas.Surface]. Pointer and wheel events reach the wonder through the
// optional [Interactive] and [Zoomable] interfaces between frames; the
// last value written before a frame is the one that frame renders.
//
// Available wonders (in catalog order):
//
//   - lorenz: Euler-integrated Lorenz attractor with a bounded trail
//   - poincare: geodesics of the hyperbolic disk
//   - mandelbrot: escape-time fractal with zoom-to-cursor
//   - blackhole: Keplerian accretion disk with fake lensing
//   - riemann: the two sheets of sqrt(z)
//   - covering: helical covering of the circle
//   - klein: particle flow over a figure-eight Klein bottle
//   - peano: growing Peano curve
//   - hilbert: growing Hilbert curve with fading head
//   - koch: Koch snowflake morphing between depths
package wonders
