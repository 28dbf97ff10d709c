package draw

import (
	"github.com/netplot/netplot/pkg/errors"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
	"github.com/netplot/netplot/pkg/style"
)

// Options enumerates every recognized drawing option. Construct with
// [DefaultOptions] and override fields; the zero value draws invisible
// output (zero sizes and widths).
//
// Per-item arrays (NodeSizes, NodeColors, Widths, EdgeColors) align
// positionally with the node/edge list being drawn. A per-edge color
// array applies individually only when its length equals the edge
// count; otherwise its first element is used uniformly.
type Options struct {
	// Nodes restricts drawing to a subset of nodes. Nil means all
	// graph nodes, in insertion order.
	Nodes []string
	// Edges restricts drawing to a subset of edges. Nil means all
	// graph edges.
	Edges []graph.Edge

	// NodeSize is the marker area in square pixels (default 300).
	NodeSize float64
	// NodeSizes gives per-node marker areas, overriding NodeSize.
	NodeSizes []float64
	// NodeColor is the uniform node color spec (default "r").
	NodeColor string
	// NodeColors gives per-node color specs, overriding NodeColor.
	NodeColors []string
	// NodeValues maps nodes to numbers colored through Cmap,
	// overriding NodeColor and NodeColors.
	NodeValues []float64
	// Cmap names the colormap for NodeValues (default "viridis").
	Cmap string
	// VMin and VMax pin the colormap scaling range. Nil means the
	// observed data range.
	VMin *float64
	VMax *float64
	// Shape is the node marker (default "o").
	Shape string
	// Alpha is the opacity for nodes and edges in [0, 1] (default 1).
	Alpha float64

	// Width is the uniform edge line width (default 1).
	Width float64
	// Widths gives per-edge line widths, overriding Width.
	Widths []float64
	// EdgeColor is the uniform edge color spec (default "k").
	EdgeColor string
	// EdgeColors gives per-edge color specs.
	EdgeColors []string
	// Style is the edge dash style (default "solid").
	Style string

	// WithLabels draws node labels (default true).
	WithLabels bool
	// Labels maps nodes to display strings. Nil means every node is
	// labeled with its own ID.
	Labels map[string]string
	// FontSize is the label size in points (default 12).
	FontSize float64
	// FontColor is the label color spec (default "k").
	FontColor string
	// FontFamily is the label font family (default sans-serif).
	FontFamily string
	// FontWeight is the label font weight (default normal).
	FontWeight string

	// Hold overrides the surface hold flag for the duration of a
	// [Draw] call. Nil leaves the surface flag as-is.
	Hold *bool

	// Layout computes positions when [Draw] receives none
	// (default spring).
	Layout layout.Func
}

// DefaultOptions returns the documented defaults: red circular nodes of
// area 300, solid black edges of width 1, and black 12pt sans-serif
// labels drawn from node IDs.
func DefaultOptions() Options {
	return Options{
		NodeSize:   300,
		NodeColor:  "r",
		Cmap:       style.DefaultCmap,
		Shape:      string(style.MarkerCircle),
		Alpha:      1,
		Width:      1,
		EdgeColor:  "k",
		Style:      string(style.LineSolid),
		WithLabels: true,
		FontSize:   12,
		FontColor:  "k",
		FontFamily: style.FamilySans,
		FontWeight: style.WeightNormal,
	}
}

// Validate checks the enum-valued fields. Color specs and per-item
// array lengths are validated where they are consumed.
func (o Options) Validate() error {
	if _, err := style.ParseMarker(o.Shape); err != nil {
		return err
	}
	if _, err := style.ParseLineStyle(o.Style); err != nil {
		return err
	}
	font := style.Font{Family: o.FontFamily, Weight: o.FontWeight, Size: o.FontSize}
	if err := font.Validate(); err != nil {
		return err
	}
	if o.NodeValues != nil {
		if _, err := style.LookupCmap(o.Cmap); err != nil {
			return err
		}
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "alpha %v outside [0, 1]", o.Alpha)
	}
	return nil
}
