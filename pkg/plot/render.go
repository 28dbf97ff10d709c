package plot

import (
	"image/color"
	"sort"
)

// Default output dimensions in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// tickLen is the length of rendered tick marks in pixels.
const tickLen = 6

// sortedPrims returns the axes primitives ordered by z-order, preserving
// insertion order within equal z-orders.
func sortedPrims(ax *Axes) []Primitive {
	prims := ax.Primitives()
	sort.SliceStable(prims, func(i, j int) bool {
		return prims[i].ZOrder() < prims[j].ZOrder()
	})
	return prims
}

// transform maps data coordinates onto a pixel grid with the y axis
// flipped (data y grows upward, pixels grow downward).
type transform struct {
	view Rect
	w, h float64
}

func newTransform(view Rect, w, h int) transform {
	// Degenerate view spans would collapse everything onto one pixel
	// column/row; widen them to a unit span instead.
	if view.Width() == 0 {
		view.Max.X = view.Min.X + 1
	}
	if view.Height() == 0 {
		view.Max.Y = view.Min.Y + 1
	}
	return transform{view: view, w: float64(w), h: float64(h)}
}

func (t transform) apply(p Point) (x, y float64) {
	x = (p.X - t.view.Min.X) / t.view.Width() * t.w
	y = t.h - (p.Y-t.view.Min.Y)/t.view.Height()*t.h
	return x, y
}

// pickColor returns the i-th element of a single-or-per-item color array,
// falling back to opaque black.
func pickColor(colors []color.Color, i int) color.Color {
	switch len(colors) {
	case 0:
		return color.NRGBA{A: 255}
	case 1:
		return colors[0]
	default:
		return colors[i]
	}
}

// pickFloat returns the i-th element of a single-or-per-item float array,
// falling back to def.
func pickFloat(vals []float64, i int, def float64) float64 {
	switch len(vals) {
	case 0:
		return def
	case 1:
		return vals[0]
	default:
		return vals[i]
	}
}
