// Package graph provides the node-and-edge structure consumed by the
// drawing layer, together with its JSON serialization.
//
// A [Graph] is deliberately minimal: string node IDs, ordered pairs of IDs
// for edges, and a directedness flag. It preserves insertion order so that
// per-item style arrays supplied to the renderer align positionally with
// the node and edge lists.
//
// The renderer treats graphs as read-only; nothing in this module mutates
// a graph after construction.
//
// # Serialization
//
// Graphs round-trip through a small JSON format:
//
//	{
//	  "directed": true,
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Use [MarshalGraph]/[UnmarshalGraph] for bytes, [ReadGraphFile] and
// [WriteGraphFile] for files.
package graph
