package draw

import (
	"image/color"
	"math"

	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
	"github.com/netplot/netplot/pkg/plot"
	"github.com/netplot/netplot/pkg/style"
)

// arrowOffset shortens directed edges so the arrowhead clears the
// destination marker. It is a fixed distance in data units, independent
// of plot scale.
const arrowOffset = 0.026

// viewPadding is the fraction of the data span added on each axis when
// edges expand the view.
const viewPadding = 0.05

// DrawEdges issues one batched primitive for the edge subset (all graph
// edges by default): a line collection for undirected graphs, a filled
// arrow-polygon collection for directed ones. The returned handle is
// nil for an empty edge set, which touches nothing on the surface. An
// endpoint without a position is a MISSING_POSITION error.
//
// Per-edge colors apply only when the color array length equals the
// edge count. Directed edges whose endpoints coincide produce no arrow:
// a zero-length direction vector has no orientation.
func DrawEdges(ax *plot.Axes, g *graph.Graph, pos layout.Positions, opts Options) (plot.Primitive, error) {
	edges := opts.Edges
	if edges == nil {
		edges = g.Edges()
	}
	if len(edges) == 0 {
		return nil, nil
	}

	tails := make([]plot.Point, len(edges))
	heads := make([]plot.Point, len(edges))
	for i, e := range edges {
		var err error
		if tails[i], err = lookup(pos, e.From); err != nil {
			return nil, err
		}
		if heads[i], err = lookup(pos, e.To); err != nil {
			return nil, err
		}
	}

	colors, err := edgeColors(opts, len(edges))
	if err != nil {
		return nil, err
	}

	var prim plot.Primitive
	if g.IsDirected() {
		prim, err = addArrows(ax, tails, heads, colors)
	} else {
		prim, err = addSegments(ax, tails, heads, colors, opts)
	}
	if err != nil {
		return nil, err
	}

	expandView(ax, tails, heads)
	return prim, nil
}

// edgeColors resolves the edge color configuration: a per-edge array
// only when its length matches the edge count, otherwise one uniform
// color (the array's first element, or EdgeColor).
func edgeColors(opts Options, n int) ([]color.Color, error) {
	if len(opts.EdgeColors) == n {
		return style.ResolveColors(opts.EdgeColors, opts.Alpha)
	}
	spec := opts.EdgeColor
	if len(opts.EdgeColors) > 0 {
		spec = opts.EdgeColors[0]
	}
	c, err := style.ResolveColor(spec, opts.Alpha)
	if err != nil {
		return nil, err
	}
	return []color.Color{c}, nil
}

func addSegments(ax *plot.Axes, tails, heads []plot.Point, colors []color.Color, opts Options) (*plot.LineCollection, error) {
	segs := make([]plot.Segment, len(tails))
	for i := range tails {
		segs[i] = plot.Segment{A: tails[i], B: heads[i]}
	}

	widths := opts.Widths
	if widths == nil {
		widths = []float64{opts.Width}
	}
	ls, err := style.ParseLineStyle(opts.Style)
	if err != nil {
		return nil, err
	}

	lc := &plot.LineCollection{
		Segments: segs,
		Widths:   widths,
		Colors:   colors,
		Style:    ls,
	}
	lc.SetZOrder(edgeZOrder)
	return ax.AddLines(lc)
}

func addArrows(ax *plot.Axes, tails, heads []plot.Point, colors []color.Color) (*plot.PolyCollection, error) {
	polys := make([]plot.Polygon, 0, len(tails))
	kept := make([]color.Color, 0, len(tails))
	for i := range tails {
		poly, ok := arrowPolygon(tails[i], heads[i])
		if !ok {
			continue
		}
		polys = append(polys, poly)
		if len(colors) > 1 {
			kept = append(kept, colors[i])
		}
	}
	if len(colors) == 1 {
		kept = colors
	}

	pc := &plot.PolyCollection{Polys: polys, Colors: kept}
	pc.SetZOrder(edgeZOrder)
	return ax.AddPolys(pc)
}

// arrowPolygon builds a filled arrow from tail toward head, with the
// tip pulled back by arrowOffset. Coincident endpoints have no
// direction, so no polygon is produced.
func arrowPolygon(tail, head plot.Point) (plot.Polygon, bool) {
	dx := head.X - tail.X
	dy := head.Y - tail.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil, false
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	const (
		headWidth  = arrowOffset
		headLength = 1.5 * arrowOffset
		shaftWidth = arrowOffset / 3
	)

	tip := plot.Point{X: head.X - ux*arrowOffset, Y: head.Y - uy*arrowOffset}
	base := plot.Point{X: tip.X - ux*headLength, Y: tip.Y - uy*headLength}

	return plot.Polygon{
		{X: tail.X - nx*shaftWidth/2, Y: tail.Y - ny*shaftWidth/2},
		{X: base.X - nx*shaftWidth/2, Y: base.Y - ny*shaftWidth/2},
		{X: base.X - nx*headWidth/2, Y: base.Y - ny*headWidth/2},
		tip,
		{X: base.X + nx*headWidth/2, Y: base.Y + ny*headWidth/2},
		{X: base.X + nx*shaftWidth/2, Y: base.Y + ny*shaftWidth/2},
		{X: tail.X + nx*shaftWidth/2, Y: tail.Y + ny*shaftWidth/2},
	}, true
}

// expandView grows the data limits to cover every endpoint plus a 5%
// margin per axis, then autoscales the view to them.
func expandView(ax *plot.Axes, tails, heads []plot.Point) {
	box, ok := plot.BoundsOf(append(append([]plot.Point{}, tails...), heads...))
	if !ok {
		return
	}
	padX := viewPadding * box.Width()
	padY := viewPadding * box.Height()
	ax.UpdateDataLim(plot.Rect{
		Min: plot.Point{X: box.Min.X - padX, Y: box.Min.Y - padY},
		Max: plot.Point{X: box.Max.X + padX, Y: box.Max.Y + padY},
	})
	ax.AutoscaleView()
}
