// Package nodelink renders finalized graphs as node-link diagrams.
//
// # Overview
//
// This package gives a local preview of what the viewer service will show:
// nodes appear as rounded boxes labeled with their names, and every expanded
// edge is drawn as its own arrow, so parallel edges of the multigraph stay
// visible.
//
// # Usage
//
// Convert a document to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Nodes are keyed by id, not name, because names are not unique.
//
// # Options
//
//   - ShowIDs: append the node or edge id to each label
//   - LeftToRight: lay the graph out horizontally instead of top-down
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
package nodelink
