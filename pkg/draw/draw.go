// Package draw renders graphs onto a plotting surface.
//
// The package translates a graph plus a node-to-coordinate mapping into
// batched primitives on a [plot.Axes]: scatter points for nodes, line
// segments or arrow polygons for edges, and centered text for labels.
// Every operation takes its surface explicitly and returns the created
// primitive handles so callers can adjust them afterwards.
package draw

import (
	"github.com/netplot/netplot/pkg/errors"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
	"github.com/netplot/netplot/pkg/plot"
)

// Draw renders the whole graph onto ax. When pos is nil, positions come
// from opts.Layout (default spring). Axis ticks are suppressed, and the
// surface's hold flag is restored on every exit path, including when a
// delegated draw fails. With hold false the surface is cleared before
// drawing.
func Draw(ax *plot.Axes, g *graph.Graph, pos layout.Positions, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if pos == nil {
		f := opts.Layout
		if f == nil {
			f = layout.Spring(layout.SpringOptions{})
		}
		var err error
		if pos, err = f(g); err != nil {
			return err
		}
	}

	prior := ax.Hold()
	defer ax.SetHold(prior)
	if opts.Hold != nil {
		ax.SetHold(*opts.Hold)
	}
	if !ax.Hold() {
		ax.Clear()
	}

	ax.SetXTicks(nil)
	ax.SetYTicks(nil)

	return DrawAll(ax, g, pos, opts)
}

// DrawAll draws nodes, then edges, then labels (when opts.WithLabels)
// onto the same surface. Unlike [Draw] it performs no hold or tick
// bookkeeping.
func DrawAll(ax *plot.Axes, g *graph.Graph, pos layout.Positions, opts Options) error {
	if _, err := DrawNodes(ax, g, pos, opts); err != nil {
		return err
	}
	if _, err := DrawEdges(ax, g, pos, opts); err != nil {
		return err
	}
	if opts.WithLabels {
		if _, err := DrawLabels(ax, g, pos, opts); err != nil {
			return err
		}
	}
	return nil
}

// lookup resolves a node's coordinate, failing with a MISSING_POSITION
// error when the mapping has no entry.
func lookup(pos layout.Positions, id string) (plot.Point, error) {
	p, ok := pos[id]
	if !ok {
		return plot.Point{}, errors.New(errors.ErrCodeMissingPosition, "no position for node %q", id)
	}
	return p, nil
}
