package plot

import (
	"image/color"

	"github.com/netplot/netplot/pkg/style"
)

// Primitive is a batched drawable shape held by an [Axes]. Concrete
// primitives are [PointCollection], [LineCollection], [PolyCollection],
// and [Text]. Primitives with lower z-order render first (underneath).
type Primitive interface {
	ZOrder() int
}

// zorder is embedded by every concrete primitive.
type zorder struct {
	z int
}

// ZOrder returns the stacking order.
func (z *zorder) ZOrder() int { return z.z }

// SetZOrder sets the stacking order. Higher values render on top.
func (z *zorder) SetZOrder(v int) { z.z = v }

// PointCollection is a batch of scatter markers.
//
// Sizes and Colors may hold a single element (applied uniformly) or one
// element per point; [Axes.AddPoints] rejects other lengths. Size is the
// marker area in square pixels. Colors carry their own opacity.
type PointCollection struct {
	zorder
	XY     []Point
	Sizes  []float64
	Colors []color.Color
	Marker style.Marker
}

// LineCollection is a batch of straight line segments sharing one dash
// style. Widths and Colors follow the same single-or-per-item rule as
// [PointCollection].
type LineCollection struct {
	zorder
	Segments []Segment
	Widths   []float64
	Colors   []color.Color
	Style    style.LineStyle
}

// PolyCollection is a batch of filled polygons.
// Colors holds fill colors, single or per-polygon.
type PolyCollection struct {
	zorder
	Polys  []Polygon
	Colors []color.Color
}

// Text is a single centered text item placed at a data coordinate.
type Text struct {
	zorder
	Pos     Point
	Content string
	Font    style.Font
	Color   color.Color
}
