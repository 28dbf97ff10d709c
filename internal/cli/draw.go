package cli

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netplot/netplot/pkg/cache"
	"github.com/netplot/netplot/pkg/draw"
	"github.com/netplot/netplot/pkg/graph"
	"github.com/netplot/netplot/pkg/layout"
	"github.com/netplot/netplot/pkg/plot"
)

// Output formats supported by the draw command.
const (
	formatPNG = "png"
	formatSVG = "svg"
)

// drawOpts holds the command-line flags for the draw command.
type drawOpts struct {
	output    string // output file path
	format    string // png or svg
	layout    string // layout name (ignored when positions is set)
	positions string // positions JSON file, bypassing layout
	seed      uint64 // seed for randomized layouts
	width     int    // output width in pixels
	height    int    // output height in pixels
	noCache   bool   // disable the artifact/layout cache
	noLabels  bool   // suppress node labels
	nodeSize  float64
	nodeColor string
	edgeColor string
	fontSize  float64
	shape     string
	edgeStyle string
}

// drawCommand creates the draw command for rendering graphs to images.
// Flag defaults come from the user's config file when present.
func (c *CLI) drawCommand() *cobra.Command {
	cfg, cfgErr := loadConfig()

	opts := drawOpts{
		format:    cfg.Format,
		layout:    cfg.Layout,
		width:     cfg.Width,
		height:    cfg.Height,
		nodeSize:  cfg.NodeSize,
		nodeColor: cfg.NodeColor,
		edgeColor: cfg.EdgeColor,
		fontSize:  cfg.FontSize,
		noLabels:  cfg.Labels != nil && !*cfg.Labels,
		shape:     draw.DefaultOptions().Shape,
		edgeStyle: draw.DefaultOptions().Style,
	}

	cmd := &cobra.Command{
		Use:   "draw [graph.json]",
		Short: "Render a graph to a PNG or SVG image",
		Long: `Render a graph to a PNG or SVG image.

The draw command reads a graph.json file, positions its nodes with the
chosen layout (or a precomputed positions file), and renders nodes,
edges, and labels into an image. Rendered images are cached locally and
reused when the graph and settings are unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			return c.runDraw(cmd.Context(), args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png or svg")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "layout: spring, circular, random, shell, spectral, or a graphviz engine")
	cmd.Flags().StringVarP(&opts.positions, "positions", "p", "", "positions JSON file (skips layout)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "seed for randomized layouts")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "output width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "output height in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", opts.noLabels, "suppress node labels")
	cmd.Flags().Float64Var(&opts.nodeSize, "node-size", opts.nodeSize, "node marker area in square pixels")
	cmd.Flags().StringVar(&opts.nodeColor, "node-color", opts.nodeColor, "node color (shorthand, name, or hex)")
	cmd.Flags().StringVar(&opts.edgeColor, "edge-color", opts.edgeColor, "edge color (shorthand, name, or hex)")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", opts.fontSize, "label font size in points")
	cmd.Flags().StringVar(&opts.shape, "shape", opts.shape, "node marker: o, s, ^, v, d")
	cmd.Flags().StringVar(&opts.edgeStyle, "edge-style", opts.edgeStyle, "edge style: solid, dashed, dotted, dashdot")

	return cmd
}

// runDraw renders the graph and writes the image file.
func (c *CLI) runDraw(ctx context.Context, input string, cfg config, opts *drawOpts) error {
	ctx = withLogger(ctx, c.Logger)

	if opts.format != formatPNG && opts.format != formatSVG {
		return fmt.Errorf("unknown format %q (want png or svg)", opts.format)
	}

	g, raw, err := readGraph(input)
	if err != nil {
		return err
	}

	dopts := cfg.drawOptions()
	dopts.NodeSize = opts.nodeSize
	dopts.NodeColor = opts.nodeColor
	dopts.EdgeColor = opts.edgeColor
	dopts.FontSize = opts.fontSize
	dopts.Shape = opts.shape
	dopts.Style = opts.edgeStyle
	dopts.WithLabels = !opts.noLabels

	store := newCache(opts.noCache)
	defer store.Close()

	graphHash := cache.Hash(raw)
	key, cacheable := artifactKey(graphHash, opts)

	if cacheable {
		if data, ok, _ := store.Get(ctx, key); ok {
			c.Logger.Debug("artifact cache hit", "format", opts.format)
			return writeArtifact(g, input, opts, data, true)
		}
	}

	pos, _, err := c.resolvePositions(ctx, g, graphHash, opts, store)
	if err != nil {
		return err
	}

	spin := newSpinner(ctx, "Rendering "+input)
	spin.Start()
	data, err := renderArtifact(g, pos, dopts, opts)
	spin.Stop()
	if spin.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}

	if cacheable {
		_ = store.Set(ctx, key, data, 0)
	}
	return writeArtifact(g, input, opts, data, false)
}

// resolvePositions loads an explicit positions file when given,
// otherwise runs the configured layout (cached).
func (c *CLI) resolvePositions(ctx context.Context, g *graph.Graph, graphHash string, opts *drawOpts, store cache.Cache) (layout.Positions, bool, error) {
	if opts.positions != "" {
		pos, err := layout.ReadPositionsFile(opts.positions)
		if err != nil {
			return nil, false, fmt.Errorf("load positions: %w", err)
		}
		return pos, false, nil
	}
	return computePositions(ctx, g, graphHash, opts.layout, opts.seed, store)
}

// artifactKey derives the render cache key. Renders from an explicit
// positions file are not cached: the file can change without the graph
// changing.
func artifactKey(graphHash string, opts *drawOpts) (string, bool) {
	if opts.positions != "" {
		return "", false
	}
	keyer := cache.NewDefaultKeyer()
	style := fmt.Sprintf("size=%v;nc=%s;ec=%s;fs=%v;shape=%s;style=%s;labels=%t",
		opts.nodeSize, opts.nodeColor, opts.edgeColor, opts.fontSize, opts.shape, opts.edgeStyle, !opts.noLabels)
	return keyer.ArtifactKey(graphHash, cache.ArtifactKeyOpts{
		Layout: fmt.Sprintf("%s:%d", opts.layout, opts.seed),
		Format: opts.format,
		Width:  opts.width,
		Height: opts.height,
		Style:  style,
	}), true
}

// renderArtifact draws the graph onto a fresh surface and encodes it in
// the requested format.
func renderArtifact(g *graph.Graph, pos layout.Positions, dopts draw.Options, opts *drawOpts) ([]byte, error) {
	ax := plot.NewAxes()
	if err := draw.Draw(ax, g, pos, dopts); err != nil {
		return nil, err
	}

	if opts.format == formatSVG {
		return plot.RenderSVG(ax, plot.WithSVGSize(opts.width, opts.height)), nil
	}
	return plot.RenderPNG(ax, plot.WithSize(opts.width, opts.height), plot.WithBackground(color.White))
}

// writeArtifact writes the image and prints the result summary.
func writeArtifact(g *graph.Graph, input string, opts *drawOpts, data []byte, cached bool) error {
	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, ".json") + "." + opts.format
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s", input)
	printStats(g.NodeCount(), g.EdgeCount(), cached)
	printFile(output)
	return nil
}
