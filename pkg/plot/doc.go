// Package plot provides the 2-D plotting surface that the drawing layer
// targets: an [Axes] holding batched primitives (points, line segments,
// filled polygons, text), tick marks, data limits, and a hold flag.
//
// Primitives are added through the Add methods, which validate that
// per-item style arrays align with item counts, and are returned to the
// caller as handles for later manipulation (typically z-order changes).
// Rendering happens separately: [RenderPNG] rasterizes an axes via
// fogleman/gg and [RenderSVG] writes a standalone SVG document.
//
// An Axes assumes exclusive, unsynchronized access for the duration of a
// call; drawing into the same axes from multiple goroutines is undefined
// behavior.
package plot
