package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// graphJSON is the wire format for graphs.
type graphJSON struct {
	Directed bool   `json:"directed,omitempty"`
	Nodes    []Node `json:"nodes"`
	Edges    []Edge `json:"edges"`
}

// MarshalGraph converts a graph to pretty-printed JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	return json.MarshalIndent(toJSON(g), "", "  ")
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSON(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
func ReadGraph(r io.Reader) (*Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromJSON(data)
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// UnmarshalGraph deserializes JSON bytes into a graph.
func UnmarshalGraph(data []byte) (*Graph, error) {
	var gj graphJSON
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, fmt.Errorf("unmarshal graph: %w", err)
	}
	return fromJSON(gj)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func toJSON(g *Graph) graphJSON {
	out := graphJSON{
		Directed: g.directed,
		Nodes:    make([]Node, 0, g.NodeCount()),
		Edges:    g.Edges(),
	}
	for _, id := range g.order {
		out.Nodes = append(out.Nodes, Node{ID: id})
	}
	return out
}

func fromJSON(gj graphJSON) (*Graph, error) {
	g := New()
	g.directed = gj.Directed
	for _, n := range gj.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("add node %q: %w", n.ID, err)
		}
	}
	for _, e := range gj.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}
