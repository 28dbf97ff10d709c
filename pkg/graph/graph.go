package graph

import "errors"

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] and [Graph.AddEdge] when
	// a node ID is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")
)

// Node represents a vertex in the graph. Nodes are identified by a unique
// string ID; the ID doubles as the default display label during drawing.
type Node struct {
	ID string `json:"id"`
}

// Edge represents a connection between two nodes. For directed graphs the
// edge points From → To; for undirected graphs the order carries no meaning
// beyond drawing (segments are emitted From → To).
//
// This is the single edge representation: any extra edge metadata belongs in
// a separate attribute mapping keyed by the edge, never in the edge itself.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a node-and-edge structure with optional directedness.
// It preserves node and edge insertion order, which drawing code relies on
// when aligning per-item style arrays with the node/edge list.
//
// The zero value is not usable - use [New] or [NewDirected].
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	directed bool
	order    []string
	nodes    map[string]struct{}
	edges    []Edge
}

// New creates an empty undirected graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]struct{})}
}

// NewDirected creates an empty directed graph.
func NewDirected() *Graph {
	return &Graph{directed: true, nodes: make(map[string]struct{})}
}

// IsDirected reports whether edges carry direction.
func (g *Graph) IsDirected() bool { return g.directed }

// AddNode adds a node with the given ID. Adding an existing node is a no-op.
// Returns ErrInvalidNodeID if the ID is empty.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, ok := g.nodes[id]; ok {
		return nil
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
	return nil
}

// AddEdge adds an edge between from and to, creating either endpoint if it
// does not exist yet. Returns ErrInvalidNodeID if either ID is empty.
// Parallel edges are allowed; self-loops are allowed.
func (g *Graph) AddEdge(from, to string) error {
	if err := g.AddNode(from); err != nil {
		return err
	}
	if err := g.AddNode(to); err != nil {
		return err
	}
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns the node IDs in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns the edges in insertion order.
// The returned slice is a copy and safe to modify.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
