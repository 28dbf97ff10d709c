package layout

import (
	"gonum.org/v1/gonum/mat"

	"github.com/netplot/netplot/pkg/errors"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/plot"
)

// Spectral positions nodes using the eigenvectors of the graph
// Laplacian: the two eigenvectors with the smallest nonzero eigenvalues
// become the x and y coordinates. Graphs with fewer than three nodes
// fall back to fixed placements.
func Spectral(g *graph.Graph) (Positions, error) {
	nodes := g.Nodes()
	n := len(nodes)
	pos := make(Positions, n)
	switch n {
	case 0:
		return pos, nil
	case 1:
		pos[nodes[0]] = plot.Point{X: 0.5, Y: 0.5}
		return pos, nil
	case 2:
		pos[nodes[0]] = plot.Point{X: 0, Y: 0.5}
		pos[nodes[1]] = plot.Point{X: 1, Y: 0.5}
		return pos, nil
	}

	idx := make(map[string]int, n)
	for i, id := range nodes {
		idx[id] = i
	}

	// Laplacian L = D - A, with edge direction ignored.
	lap := mat.NewSymDense(n, nil)
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		if i == j {
			continue
		}
		lap.SetSym(i, j, lap.At(i, j)-1)
		lap.SetSym(i, i, lap.At(i, i)+1)
		lap.SetSym(j, j, lap.At(j, j)+1)
	}

	var eig mat.EigenSym
	if !eig.Factorize(lap, true) {
		return nil, errors.New(errors.ErrCodeInternal, "laplacian eigendecomposition failed")
	}

	// Eigenvalues come back ascending; index 0 is the trivial constant
	// eigenvector, so coordinates come from indices 1 and 2.
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	for i, id := range nodes {
		pos[id] = plot.Point{X: vecs.At(i, 1), Y: vecs.At(i, 2)}
	}
	return rescale(pos), nil
}
