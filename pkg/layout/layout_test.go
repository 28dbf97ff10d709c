package layout

import (
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/netplot/netplot/pkg/errors"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/plot"
)

func triangle() *graph.Graph {
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")
	return g
}

// checkCoverage asserts that pos maps every node of g and nothing else.
func checkCoverage(t *testing.T, g *graph.Graph, pos Positions) {
	t.Helper()
	if len(pos) != g.NodeCount() {
		t.Fatalf("got %d positions for %d nodes", len(pos), g.NodeCount())
	}
	for _, id := range g.Nodes() {
		if _, ok := pos[id]; !ok {
			t.Errorf("missing position for %q", id)
		}
	}
}

func checkUnitSquare(t *testing.T, pos Positions) {
	t.Helper()
	for id, p := range pos {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("node %q at (%.3f, %.3f) is outside the unit square", id, p.X, p.Y)
		}
	}
}

func TestCircular(t *testing.T) {
	g := triangle()
	pos, err := Circular(g)
	if err != nil {
		t.Fatalf("Circular: %v", err)
	}
	checkCoverage(t, g, pos)

	// All nodes sit on a circle of radius 0.5 around the center.
	for id, p := range pos {
		r := math.Hypot(p.X-0.5, p.Y-0.5)
		if math.Abs(r-0.5) > 1e-9 {
			t.Errorf("node %q at radius %.4f, want 0.5", id, r)
		}
	}
	// Insertion order fixes the angles, so the first node is at angle 0.
	if got := pos["a"]; math.Abs(got.X-1) > 1e-9 || math.Abs(got.Y-0.5) > 1e-9 {
		t.Errorf("first node at (%.3f, %.3f), want (1, 0.5)", got.X, got.Y)
	}
}

func TestCircularSingleNode(t *testing.T) {
	g := graph.New()
	g.AddNode("only")
	pos, err := Circular(g)
	if err != nil {
		t.Fatalf("Circular: %v", err)
	}
	if pos["only"] != (plot.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("single node at %+v, want center", pos["only"])
	}
}

func TestRandomDeterministic(t *testing.T) {
	g := triangle()

	a, err := Random(7)(g)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}
	b, _ := Random(7)(g)
	c, _ := Random(8)(g)

	checkCoverage(t, g, a)
	checkUnitSquare(t, a)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should reproduce positions")
	}
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should move nodes")
	}
}

func TestShell(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"hub", "a", "b", "c"} {
		g.AddNode(id)
	}

	pos, err := Shell([][]string{{"hub"}, {"a", "b", "c"}})(g)
	if err != nil {
		t.Fatalf("Shell: %v", err)
	}
	checkCoverage(t, g, pos)

	if pos["hub"] != (plot.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("lone inner node at %+v, want center", pos["hub"])
	}
	for _, id := range []string{"a", "b", "c"} {
		r := math.Hypot(pos[id].X-0.5, pos[id].Y-0.5)
		if math.Abs(r-0.5) > 1e-9 {
			t.Errorf("outer node %q at radius %.4f, want 0.5", id, r)
		}
	}
}

func TestShellValidation(t *testing.T) {
	g := triangle()

	tests := []struct {
		name  string
		rings [][]string
	}{
		{"UnknownNode", [][]string{{"a", "b", "c", "ghost"}}},
		{"DuplicateNode", [][]string{{"a", "b"}, {"b", "c"}}},
		{"IncompleteCover", [][]string{{"a", "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Shell(tt.rings)(g)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestShellNilRings(t *testing.T) {
	g := triangle()
	pos, err := Shell(nil)(g)
	if err != nil {
		t.Fatalf("Shell: %v", err)
	}
	checkCoverage(t, g, pos)
}

func TestSpring(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "d")

	f := Spring(SpringOptions{Seed: 3})
	pos, err := f(g)
	if err != nil {
		t.Fatalf("Spring: %v", err)
	}
	checkCoverage(t, g, pos)
	checkUnitSquare(t, pos)

	again, _ := f(g)
	if !reflect.DeepEqual(pos, again) {
		t.Error("same seed should reproduce positions")
	}

	// Adjacent nodes should end up closer than the path's endpoints.
	ab := dist(pos["a"], pos["b"])
	ad := dist(pos["a"], pos["d"])
	if ab >= ad {
		t.Errorf("adjacent pair at %.3f, path endpoints at %.3f; want attraction to dominate", ab, ad)
	}
}

func TestSpringSmallGraphs(t *testing.T) {
	f := Spring(SpringOptions{})

	empty := graph.New()
	pos, err := f(empty)
	if err != nil || len(pos) != 0 {
		t.Errorf("empty graph: pos = %v, err = %v", pos, err)
	}

	single := graph.New()
	single.AddNode("x")
	pos, err = f(single)
	if err != nil {
		t.Fatalf("Spring: %v", err)
	}
	if pos["x"] != (plot.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("single node at %+v, want center", pos["x"])
	}
}

func TestSpectral(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "d")
	g.AddEdge("d", "a")

	pos, err := Spectral(g)
	if err != nil {
		t.Fatalf("Spectral: %v", err)
	}
	checkCoverage(t, g, pos)
	checkUnitSquare(t, pos)
}

func TestSpectralSmallGraphs(t *testing.T) {
	single := graph.New()
	single.AddNode("x")
	pos, err := Spectral(single)
	if err != nil {
		t.Fatalf("Spectral: %v", err)
	}
	if pos["x"] != (plot.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("single node at %+v, want center", pos["x"])
	}

	pair := graph.New()
	pair.AddEdge("a", "b")
	pos, err = Spectral(pair)
	if err != nil {
		t.Fatalf("Spectral: %v", err)
	}
	checkCoverage(t, pair, pos)
	if pos["a"] == pos["b"] {
		t.Error("pair should be separated")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"circular", "random", "shell", "spring", "spectral", "neato", "dot"} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	_, err := ByName("banana")
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("err = %v, want INVALID_LAYOUT", err)
	}
}

func TestGraphvizUnknownEngine(t *testing.T) {
	_, err := Graphviz("magic")(triangle())
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("err = %v, want INVALID_LAYOUT", err)
	}
}

func TestToDOT(t *testing.T) {
	undirected := toDOT(triangle())
	if !strings.HasPrefix(undirected, "graph G {") || !strings.Contains(undirected, `"a" -- "b";`) {
		t.Errorf("unexpected undirected DOT:\n%s", undirected)
	}

	d := graph.NewDirected()
	d.AddEdge("a", "b")
	directed := toDOT(d)
	if !strings.HasPrefix(directed, "digraph G {") || !strings.Contains(directed, `"a" -> "b";`) {
		t.Errorf("unexpected directed DOT:\n%s", directed)
	}
}

func TestParseNodeCenters(t *testing.T) {
	svg := []byte(`<g id="node1" class="node">
<title>a&amp;b</title>
<ellipse fill="none" stroke="black" cx="27" cy="-18" rx="27" ry="18"/>
</g>
<g id="edge1" class="edge">
<title>a&amp;b&#45;&#45;c</title>
<path fill="none" stroke="black" d="M0,0"/>
</g>
<g id="node2" class="node">
<title>c</title>
<ellipse fill="none" stroke="black" cx="99" cy="-90" rx="27" ry="18"/>
</g>`)

	pos := parseNodeCenters(svg)
	if len(pos) != 2 {
		t.Fatalf("got %d positions, want 2 (edges skipped)", len(pos))
	}
	if pos["a&b"] != (plot.Point{X: 27, Y: 18}) {
		t.Errorf("a&b = %+v, want y flipped to 18", pos["a&b"])
	}
	if pos["c"] != (plot.Point{X: 99, Y: 90}) {
		t.Errorf("c = %+v", pos["c"])
	}
}

func TestRescale(t *testing.T) {
	pos := Positions{
		"a": {X: -2, Y: 10},
		"b": {X: 2, Y: 30},
		"c": {X: 0, Y: 20},
	}
	rescale(pos)

	want := Positions{
		"a": {X: 0, Y: 0},
		"b": {X: 1, Y: 1},
		"c": {X: 0.5, Y: 0.5},
	}
	if !reflect.DeepEqual(pos, want) {
		t.Errorf("rescaled = %v, want %v", pos, want)
	}
}

func TestRescaleDegenerate(t *testing.T) {
	pos := Positions{"a": {X: 3, Y: 1}, "b": {X: 3, Y: 2}}
	rescale(pos)
	if pos["a"].X != 0.5 || pos["b"].X != 0.5 {
		t.Error("collapsed x span should center at 0.5")
	}
}

func TestPositionsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.json")
	in := Positions{"a": {X: 0.25, Y: 0.75}, "b": {X: 1, Y: 0}}

	if err := WritePositionsFile(in, path); err != nil {
		t.Fatalf("WritePositionsFile: %v", err)
	}
	out, err := ReadPositionsFile(path)
	if err != nil {
		t.Fatalf("ReadPositionsFile: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func dist(a, b plot.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
