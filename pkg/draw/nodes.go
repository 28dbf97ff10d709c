package draw

import (
	"image/color"

	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
	"github.com/netplot/netplot/pkg/plot"
	"github.com/netplot/netplot/pkg/style"
)

// Node markers stack above edges; labels go on top of both.
const (
	edgeZOrder  = 1
	nodeZOrder  = 2
	labelZOrder = 3
)

// DrawNodes issues one scatter primitive for the node subset (all graph
// nodes by default) and returns its handle. A node without a position
// is a MISSING_POSITION error. Length mismatches between per-node
// arrays and the subset surface verbatim from the plotting layer.
func DrawNodes(ax *plot.Axes, g *graph.Graph, pos layout.Positions, opts Options) (*plot.PointCollection, error) {
	nodes := opts.Nodes
	if nodes == nil {
		nodes = g.Nodes()
	}

	xy := make([]plot.Point, len(nodes))
	for i, id := range nodes {
		p, err := lookup(pos, id)
		if err != nil {
			return nil, err
		}
		xy[i] = p
	}

	colors, err := nodeColors(opts)
	if err != nil {
		return nil, err
	}

	sizes := opts.NodeSizes
	if sizes == nil {
		sizes = []float64{opts.NodeSize}
	}

	marker, err := style.ParseMarker(opts.Shape)
	if err != nil {
		return nil, err
	}

	pc := &plot.PointCollection{
		XY:     xy,
		Sizes:  sizes,
		Colors: colors,
		Marker: marker,
	}
	pc.SetZOrder(nodeZOrder)
	return ax.AddPoints(pc)
}

// nodeColors resolves the node color configuration in priority order:
// numeric values through the colormap, then per-node specs, then the
// uniform color.
func nodeColors(opts Options) ([]color.Color, error) {
	if opts.NodeValues != nil {
		cmap, err := style.LookupCmap(opts.Cmap)
		if err != nil {
			return nil, err
		}
		return cmap.MapValues(opts.NodeValues, opts.VMin, opts.VMax, opts.Alpha), nil
	}
	if opts.NodeColors != nil {
		return style.ResolveColors(opts.NodeColors, opts.Alpha)
	}
	c, err := style.ResolveColor(opts.NodeColor, opts.Alpha)
	if err != nil {
		return nil, err
	}
	return []color.Color{c}, nil
}
