// Package render groups the local renderers for finalized graphs.
//
// Rendering never contacts the viewer service. It works on the same
// [graph.Document] that would be posted, so a local drawing shows exactly
// which edges the name expansion produced.
//
// The only renderer today is [nodelink], which emits Graphviz DOT and renders
// it to SVG with the embedded Graphviz runtime.
//
// [graph.Document]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/graph#Document
// [nodelink]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/render/nodelink
package render
