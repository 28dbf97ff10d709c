package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netplot/netplot/pkg/cache"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		name    string
		output  string
		seed    uint64
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node positions for a graph",
		Long: `Compute node positions for a graph.

The layout command takes a graph.json file and computes a position for
every node using the chosen layout algorithm. The output is a JSON file
mapping node IDs to coordinates, which 'draw --positions' can reuse.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], name, output, seed, noCache)
		},
	}

	cmd.Flags().StringVarP(&name, "layout", "l", "spring", "layout: spring, circular, random, shell, spectral, or a graphviz engine (dot, neato, fdp, sfdp, circo, twopi)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.positions.json)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for randomized layouts")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runLayout loads the graph, computes positions, and writes them out.
func (c *CLI) runLayout(ctx context.Context, input, name, output string, seed uint64, noCache bool) error {
	ctx = withLogger(ctx, c.Logger)

	g, raw, err := readGraph(input)
	if err != nil {
		return err
	}

	store := newCache(noCache)
	defer store.Close()

	pos, cached, err := computePositions(ctx, g, cache.Hash(raw), name, seed, store)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, ".json") + ".positions.json"
	}
	if err := layout.WritePositionsFile(pos, output); err != nil {
		return fmt.Errorf("write positions: %w", err)
	}

	printSuccess("Computed %s layout", name)
	printStats(g.NodeCount(), g.EdgeCount(), cached)
	printFile(output)
	return nil
}

// readGraph reads a graph file, returning both the parsed graph and the
// raw bytes for cache keying.
func readGraph(path string) (*graph.Graph, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	g, err := graph.UnmarshalGraph(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("parse graph %s: %w", path, err)
	}
	return g, raw, nil
}

// computePositions resolves a layout by name and runs it, consulting
// the layout cache first. Seeded layouts fold the seed into the cache
// key so different seeds never collide.
func computePositions(ctx context.Context, g *graph.Graph, graphHash, name string, seed uint64, store cache.Cache) (layout.Positions, bool, error) {
	logger := loggerFromContext(ctx)

	f, err := layoutFunc(name, seed)
	if err != nil {
		return nil, false, err
	}

	keyer := cache.NewDefaultKeyer()
	key := keyer.LayoutKey(graphHash, fmt.Sprintf("%s:%d", name, seed))

	if data, ok, _ := store.Get(ctx, key); ok {
		pos, err := layout.UnmarshalPositions(data)
		if err == nil {
			logger.Debug("layout cache hit", "layout", name)
			return pos, true, nil
		}
	}

	p := newProgress(logger)
	pos, err := f(g)
	if err != nil {
		return nil, false, err
	}
	p.done(fmt.Sprintf("Placed %d nodes with %s", g.NodeCount(), name))

	if data, err := layout.MarshalPositions(pos); err == nil {
		_ = store.Set(ctx, key, data, 0)
	}
	return pos, false, nil
}

// layoutFunc resolves a layout name, threading the seed into the
// randomized layouts.
func layoutFunc(name string, seed uint64) (layout.Func, error) {
	switch name {
	case "random":
		return layout.Random(seed), nil
	case "spring":
		return layout.Spring(layout.SpringOptions{Seed: seed}), nil
	}
	return layout.ByName(name)
}
