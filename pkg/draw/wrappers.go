package draw

import (
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
	"github.com/netplot/netplot/pkg/plot"
)

// The wrappers below pair one layout with [Draw]. Any Layout field on
// opts is ignored in favor of the named layout.

// DrawCircular draws the graph with nodes on a circle.
func DrawCircular(ax *plot.Axes, g *graph.Graph, opts Options) error {
	return drawWith(ax, g, layout.Circular, opts)
}

// DrawRandom draws the graph with seeded uniform-random positions.
func DrawRandom(ax *plot.Axes, g *graph.Graph, seed uint64, opts Options) error {
	return drawWith(ax, g, layout.Random(seed), opts)
}

// DrawSpectral draws the graph positioned by Laplacian eigenvectors.
func DrawSpectral(ax *plot.Axes, g *graph.Graph, opts Options) error {
	return drawWith(ax, g, layout.Spectral, opts)
}

// DrawSpring draws the graph with a force-directed layout.
func DrawSpring(ax *plot.Axes, g *graph.Graph, opts Options) error {
	return drawWith(ax, g, layout.Spring(layout.SpringOptions{}), opts)
}

// DrawShell draws the graph on concentric rings. Nil rings place all
// nodes on a single ring; see [layout.Shell] for the grouping rules.
func DrawShell(ax *plot.Axes, g *graph.Graph, rings [][]string, opts Options) error {
	return drawWith(ax, g, layout.Shell(rings), opts)
}

// DrawGraphviz draws the graph positioned by a Graphviz engine.
func DrawGraphviz(ax *plot.Axes, g *graph.Graph, engine string, opts Options) error {
	return drawWith(ax, g, layout.Graphviz(engine), opts)
}

func drawWith(ax *plot.Axes, g *graph.Graph, f layout.Func, opts Options) error {
	pos, err := f(g)
	if err != nil {
		return err
	}
	return Draw(ax, g, pos, opts)
}
