// Package canvas provides the immediate-mode 2D drawing surface the
// wonders render into.
//
// [Surface] is the small set of primitives every visualizer needs: lines,
// polylines, polygons, circles, radial gradients and an image blit, with a
// switch between source-over and additive ("lighter") compositing.
// [Raster] implements it in software on an *image.RGBA; [Recorder] keeps
// only counts and coordinates for tests; [Braille] turns a finished frame
// into colored terminal cells.
package canvas
