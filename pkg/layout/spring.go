package layout

import (
	"math"
	"math/rand/v2"

	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/plot"
)

// SpringOptions configures the force-directed layout. Zero values select
// the defaults documented on each field.
type SpringOptions struct {
	// Iterations is the number of simulation steps (default 50).
	Iterations int
	// K is the optimal node distance (default 1/sqrt(n)).
	K float64
	// Seed drives the initial random placement.
	Seed uint64
}

// Spring returns a Fruchterman-Reingold force-directed layout. Nodes
// repel each other and edges pull their endpoints together; the result
// is rescaled into the unit square.
func Spring(opts SpringOptions) Func {
	if opts.Iterations <= 0 {
		opts.Iterations = 50
	}
	return func(g *graph.Graph) (Positions, error) {
		nodes := g.Nodes()
		n := len(nodes)
		pos := make(Positions, n)
		switch n {
		case 0:
			return pos, nil
		case 1:
			pos[nodes[0]] = plot.Point{X: 0.5, Y: 0.5}
			return pos, nil
		}

		k := opts.K
		if k == 0 {
			k = 1 / math.Sqrt(float64(n))
		}

		rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
		idx := make(map[string]int, n)
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i, id := range nodes {
			idx[id] = i
			xs[i] = rng.Float64()
			ys[i] = rng.Float64()
		}

		edges := g.Edges()
		dx := make([]float64, n)
		dy := make([]float64, n)

		// Linear cooling from an initial temperature of a tenth of the
		// frame down to zero.
		temp := 0.1
		cool := temp / float64(opts.Iterations+1)

		for it := 0; it < opts.Iterations; it++ {
			for i := range dx {
				dx[i], dy[i] = 0, 0
			}

			// Repulsion between every node pair.
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					ddx, ddy, d := delta(xs[i], ys[i], xs[j], ys[j])
					f := k * k / d
					dx[i] += ddx / d * f
					dy[i] += ddy / d * f
					dx[j] -= ddx / d * f
					dy[j] -= ddy / d * f
				}
			}

			// Attraction along edges.
			for _, e := range edges {
				i, j := idx[e.From], idx[e.To]
				if i == j {
					continue
				}
				ddx, ddy, d := delta(xs[i], ys[i], xs[j], ys[j])
				f := d * d / k
				dx[i] -= ddx / d * f
				dy[i] -= ddy / d * f
				dx[j] += ddx / d * f
				dy[j] += ddy / d * f
			}

			// Displace, capped by the current temperature.
			for i := 0; i < n; i++ {
				d := math.Hypot(dx[i], dy[i])
				if d == 0 {
					continue
				}
				step := math.Min(d, temp)
				xs[i] += dx[i] / d * step
				ys[i] += dy[i] / d * step
			}
			temp -= cool
		}

		for i, id := range nodes {
			pos[id] = plot.Point{X: xs[i], Y: ys[i]}
		}
		return rescale(pos), nil
	}
}

// delta returns the displacement from (x2, y2) to (x1, y1) and its
// length, nudged away from zero so coincident nodes still separate.
func delta(x1, y1, x2, y2 float64) (dx, dy, d float64) {
	dx = x1 - x2
	dy = y1 - y2
	d = math.Hypot(dx, dy)
	if d < 1e-9 {
		dx, dy, d = 1e-9, 1e-9, math.Sqrt2*1e-9
	}
	return dx, dy, d
}
