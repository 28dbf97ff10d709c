package graph

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New()

	if err := g.AddNode("a"); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode("a"); err != nil {
		t.Fatalf("duplicate AddNode should be a no-op, got %v", err)
	}
	if err := g.AddNode(""); err != ErrInvalidNodeID {
		t.Errorf("empty ID: err = %v, want ErrInvalidNodeID", err)
	}

	if got := g.NodeCount(); got != 1 {
		t.Errorf("nodes = %d, want 1", got)
	}
}

func TestAddEdgeCreatesEndpoints(t *testing.T) {
	g := New()
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if !g.HasNode("a") || !g.HasNode("b") {
		t.Error("endpoints should be created implicitly")
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("edges = %d, want 1", got)
	}
}

func TestNodeOrderPreserved(t *testing.T) {
	g := New()
	for _, id := range []string{"c", "a", "b"} {
		g.AddNode(id)
	}
	g.AddEdge("c", "d") // d is new, appended last

	want := []string{"c", "a", "b", "d"}
	got := g.Nodes()
	if len(got) != len(want) {
		t.Fatalf("nodes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("nodes[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDirected(t *testing.T) {
	if New().IsDirected() {
		t.Error("New() should be undirected")
	}
	if !NewDirected().IsDirected() {
		t.Error("NewDirected() should be directed")
	}
}

func TestMarshalGraph(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *Graph
		wantNodes int
		wantEdges int
	}{
		{
			name:      "Empty",
			build:     New,
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name: "Simple",
			build: func() *Graph {
				g := New()
				g.AddEdge("a", "b")
				g.AddEdge("b", "c")
				return g
			},
			wantNodes: 3,
			wantEdges: 2,
		},
		{
			name: "Directed",
			build: func() *Graph {
				g := NewDirected()
				g.AddEdge("x", "y")
				return g
			},
			wantNodes: 2,
			wantEdges: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()

			data, err := MarshalGraph(g)
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			var wire struct {
				Directed bool `json:"directed"`
				Nodes    []Node
				Edges    []Edge
			}
			if err := json.Unmarshal(data, &wire); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if got := len(wire.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(wire.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
			if wire.Directed != g.IsDirected() {
				t.Errorf("directed = %v, want %v", wire.Directed, g.IsDirected())
			}
		})
	}
}

func TestReadGraph(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges int
		directed  bool
		wantErr   bool
	}{
		{
			name: "Valid",
			input: `{
				"nodes": [{"id": "A"}, {"id": "B"}],
				"edges": [{"from": "A", "to": "B"}]
			}`,
			wantNodes: 2,
			wantEdges: 1,
		},
		{
			name: "DirectedWithImplicitNodes",
			input: `{
				"directed": true,
				"nodes": [],
				"edges": [{"from": "A", "to": "B"}]
			}`,
			wantNodes: 2,
			wantEdges: 1,
			directed:  true,
		},
		{
			name:      "Empty",
			input:     `{"nodes": [], "edges": []}`,
			wantNodes: 0,
			wantEdges: 0,
		},
		{
			name:    "Invalid",
			input:   `{invalid json}`,
			wantErr: true,
		},
		{
			name:    "EmptyNodeID",
			input:   `{"nodes": [{"id": ""}], "edges": []}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGraph(strings.NewReader(tt.input))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadGraph: %v", err)
			}

			if got := g.NodeCount(); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := g.EdgeCount(); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}
			if g.IsDirected() != tt.directed {
				t.Errorf("directed = %v, want %v", g.IsDirected(), tt.directed)
			}
		})
	}
}

func TestGraphRoundTrip(t *testing.T) {
	g := NewDirected()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddNode("isolated")

	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}

	got, err := ReadGraph(&buf)
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}

	if got.NodeCount() != g.NodeCount() || got.EdgeCount() != g.EdgeCount() {
		t.Errorf("round trip: %d/%d nodes/edges, want %d/%d",
			got.NodeCount(), got.EdgeCount(), g.NodeCount(), g.EdgeCount())
	}
	if !got.IsDirected() {
		t.Error("round trip lost directedness")
	}
}

func TestReadGraphFile(t *testing.T) {
	content := `{"nodes": [{"id": "A"}], "edges": []}`

	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if g.NodeCount() != 1 {
		t.Errorf("nodes = %d, want 1", g.NodeCount())
	}
}

func TestReadGraphFileNotFound(t *testing.T) {
	if _, err := ReadGraphFile("nonexistent.json"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}
