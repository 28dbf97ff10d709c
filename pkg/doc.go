// Package pkg provides the core libraries for netplot graph drawing.
//
// # Overview
//
// Netplot turns a graph plus a node-position mapping into an image. The
// pkg directory is organized by stage:
//
//  1. [graph] - graph structure and JSON serialization
//  2. [layout] - algorithms mapping graphs to node positions
//  3. [draw] - translation of graphs into plotting primitives
//  4. [plot] - the plotting surface and its PNG/SVG backends
//  5. [style], [fonts] - colors, markers, line styles, font faces
//  6. [cache] - local caching of layouts and rendered images
//
// # Architecture
//
// The typical data flow through netplot:
//
//	graph.json
//	     ↓
//	[graph] package (parse + validate)
//	     ↓
//	[layout] package (node → coordinate mapping)
//	     ↓
//	[draw] package (nodes, edges, labels → primitives)
//	     ↓
//	[plot] package (primitives → PNG/SVG bytes)
//
// # Quick Start
//
//	g := graph.New()
//	g.AddEdge("a", "b")
//
//	pos, err := layout.Circular(g)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ax := plot.NewAxes()
//	if err := draw.Draw(ax, g, pos, draw.DefaultOptions()); err != nil {
//		log.Fatal(err)
//	}
//	png, err := plot.RenderPNG(ax)
package pkg
