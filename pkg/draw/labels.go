package draw

import (
	"sort"

	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
	"github.com/netplot/netplot/pkg/plot"
	"github.com/netplot/netplot/pkg/style"
)

// DrawLabels places centered text at each labeled node's coordinate and
// returns the created handles keyed by node. With no explicit label
// mapping every graph node is labeled with its own ID. A labeled node
// without a position is a MISSING_POSITION error.
func DrawLabels(ax *plot.Axes, g *graph.Graph, pos layout.Positions, opts Options) (map[string]*plot.Text, error) {
	labels := opts.Labels
	var order []string
	if labels == nil {
		order = g.Nodes()
		labels = make(map[string]string, len(order))
		for _, id := range order {
			labels[id] = id
		}
	} else {
		order = make([]string, 0, len(labels))
		for id := range labels {
			order = append(order, id)
		}
		sort.Strings(order)
	}

	fc, err := style.ResolveColor(opts.FontColor, 1)
	if err != nil {
		return nil, err
	}
	font := style.Font{Family: opts.FontFamily, Weight: opts.FontWeight, Size: opts.FontSize}

	handles := make(map[string]*plot.Text, len(order))
	for _, id := range order {
		p, err := lookup(pos, id)
		if err != nil {
			return nil, err
		}
		txt := &plot.Text{Pos: p, Content: labels[id], Font: font, Color: fc}
		txt.SetZOrder(labelZOrder)
		if _, err := ax.AddText(txt); err != nil {
			return nil, err
		}
		handles[id] = txt
	}
	return handles, nil
}
