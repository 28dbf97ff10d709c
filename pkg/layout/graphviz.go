package layout

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/netplot/netplot/pkg/errors"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/plot"
)

// Graphviz delegates positioning to a Graphviz engine (dot, neato, fdp,
// sfdp, circo, twopi). The graph is serialized to DOT, laid out by the
// engine, and node centers are read back from the SVG output.
func Graphviz(engine string) Func {
	return func(g *graph.Graph) (Positions, error) {
		switch engine {
		case "dot", "neato", "fdp", "sfdp", "circo", "twopi":
		default:
			return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown graphviz engine %q", engine)
		}
		if g.NodeCount() == 0 {
			return Positions{}, nil
		}

		ctx := context.Background()
		gv, err := graphviz.New(ctx)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
		}
		defer gv.Close()
		gv.SetLayout(graphviz.Layout(engine))

		parsed, err := graphviz.ParseBytes([]byte(toDOT(g)))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
		}
		defer parsed.Close()

		var buf bytes.Buffer
		if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "graphviz %s layout", engine)
		}

		pos := parseNodeCenters(buf.Bytes())
		for _, id := range g.Nodes() {
			if _, ok := pos[id]; !ok {
				return nil, errors.New(errors.ErrCodeInternal, "graphviz output has no position for node %q", id)
			}
		}
		return rescale(pos), nil
	}
}

// toDOT serializes the graph for the layout engine. Labels and styling
// are irrelevant here, only topology matters.
func toDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	kind, arrow := "graph", "--"
	if g.IsDirected() {
		kind, arrow = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", kind)
	for _, id := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", id)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, arrow, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// Each laid-out node appears in the SVG as a titled ellipse; edges carry
// titles too but render as paths, so the pairing skips them.
var nodeCenterRe = regexp.MustCompile(`(?s)<title>(.*?)</title>\s*<ellipse[^>]*\bcx="(-?[0-9.]+)"[^>]*\bcy="(-?[0-9.]+)"`)

// parseNodeCenters extracts node centers from Graphviz SVG output,
// flipping the y axis back into math orientation.
func parseNodeCenters(svg []byte) Positions {
	pos := Positions{}
	for _, m := range nodeCenterRe.FindAllSubmatch(svg, -1) {
		id := html.UnescapeString(string(m[1]))
		cx, errX := strconv.ParseFloat(string(m[2]), 64)
		cy, errY := strconv.ParseFloat(string(m[3]), 64)
		if errX != nil || errY != nil {
			continue
		}
		pos[id] = plot.Point{X: cx, Y: -cy}
	}
	return pos
}
