// Package layout computes node positions for graphs.
//
// Every layout is a [Func] producing a complete [Positions] mapping for
// the graph's nodes, scaled into the unit square. Deterministic layouts
// (circular, shell, spectral) always return the same positions for the
// same graph; randomized ones (random, spring) take an explicit seed.
package layout

import (
	"math"
	"math/rand/v2"

	"github.com/netplot/netplot/pkg/errors"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/plot"
)

// Positions maps node IDs to data coordinates.
type Positions map[string]plot.Point

// Func computes positions for every node of g.
type Func func(g *graph.Graph) (Positions, error)

// ByName resolves a layout by its CLI name. Graphviz engine names
// (dot, neato, fdp, sfdp, circo, twopi) delegate to [Graphviz].
func ByName(name string) (Func, error) {
	switch name {
	case "circular":
		return Circular, nil
	case "random":
		return Random(1), nil
	case "shell":
		return Shell(nil), nil
	case "spring":
		return Spring(SpringOptions{}), nil
	case "spectral":
		return Spectral, nil
	case "dot", "neato", "fdp", "sfdp", "circo", "twopi":
		return Graphviz(name), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q", name)
}

// Circular places nodes evenly on a circle, in node insertion order.
// A single node lands at the center.
func Circular(g *graph.Graph) (Positions, error) {
	nodes := g.Nodes()
	pos := make(Positions, len(nodes))
	if len(nodes) == 1 {
		pos[nodes[0]] = plot.Point{X: 0.5, Y: 0.5}
		return pos, nil
	}
	placeRing(pos, nodes, 0.5)
	return pos, nil
}

// Random scatters nodes uniformly over the unit square using a
// deterministic generator seeded with seed.
func Random(seed uint64) Func {
	return func(g *graph.Graph) (Positions, error) {
		rng := rand.New(rand.NewPCG(seed, seed))
		nodes := g.Nodes()
		pos := make(Positions, len(nodes))
		for _, id := range nodes {
			pos[id] = plot.Point{X: rng.Float64(), Y: rng.Float64()}
		}
		return pos, nil
	}
}

// Shell places nodes on concentric rings. Each inner slice of rings is
// one ring, innermost first; every graph node must appear in exactly one
// ring. With nil rings all nodes share a single ring.
func Shell(rings [][]string) Func {
	return func(g *graph.Graph) (Positions, error) {
		nodes := g.Nodes()
		if rings == nil {
			rings = [][]string{nodes}
		}

		seen := make(map[string]bool, len(nodes))
		for _, ring := range rings {
			for _, id := range ring {
				if !g.HasNode(id) {
					return nil, errors.New(errors.ErrCodeInvalidInput, "ring node %q is not in the graph", id)
				}
				if seen[id] {
					return nil, errors.New(errors.ErrCodeInvalidInput, "node %q appears in more than one ring", id)
				}
				seen[id] = true
			}
		}
		if len(seen) != len(nodes) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "rings cover %d of %d nodes", len(seen), len(nodes))
		}

		pos := make(Positions, len(nodes))
		step := 0.5 / float64(len(rings))
		for i, ring := range rings {
			if len(ring) == 1 && i == 0 {
				pos[ring[0]] = plot.Point{X: 0.5, Y: 0.5}
				continue
			}
			placeRing(pos, ring, step*float64(i+1))
		}
		return pos, nil
	}
}

// placeRing distributes ids evenly on a circle of the given radius
// centered in the unit square.
func placeRing(pos Positions, ids []string, radius float64) {
	for i, id := range ids {
		theta := 2 * math.Pi * float64(i) / float64(len(ids))
		pos[id] = plot.Point{
			X: 0.5 + radius*math.Cos(theta),
			Y: 0.5 + radius*math.Sin(theta),
		}
	}
}

// rescale maps positions onto the unit square, preserving aspect per
// axis. Degenerate spans collapse to the center line.
func rescale(pos Positions) Positions {
	pts := make([]plot.Point, 0, len(pos))
	for _, p := range pos {
		pts = append(pts, p)
	}
	box, ok := plot.BoundsOf(pts)
	if !ok {
		return pos
	}
	for id, p := range pos {
		pos[id] = plot.Point{
			X: rescale1(p.X, box.Min.X, box.Width()),
			Y: rescale1(p.Y, box.Min.Y, box.Height()),
		}
	}
	return pos
}

func rescale1(v, min, span float64) float64 {
	if span == 0 {
		return 0.5
	}
	return (v - min) / span
}
