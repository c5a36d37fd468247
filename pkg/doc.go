// Package pkg provides the libraries behind quickgraph.
//
// # Overview
//
// quickgraph builds small multigraphs in memory and posts them to a
// visualization service that answers with a shareable link. Nodes are
// created by name, names need not be unique, and edges are declared between
// names. Before the graph is sent, every name-addressed edge is expanded into
// one edge per matching (source, target) node pair.
//
// # Architecture
//
//	AddNode / AddEdge (by name)
//	         ↓
//	    [graph] package (builder, expansion, wire document)
//	         ↓
//	    [viewer] package (POST /api/graphs, view URL)
//	         ↓
//	    http://<host>/graphs/<id>
//
// [quickgraph] ties the two together behind a single value with a
// submit-once guard. [render/nodelink] draws the same expanded document
// locally with Graphviz.
//
// # Quick Start
//
//	g, err := quickgraph.NewForHost("localhost:8080")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g.SetName("Deps")
//	g.AddNode("app")
//	g.AddNode("lib")
//	g.AddEdge("app", "lib", "imports")
//
//	url, err := g.Submit(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Graph created. View it at", url)
//
// # Supporting Packages
//
// [errors] defines the error codes returned across the module.
// [observability] lets callers hook graph finalization and HTTP traffic.
// [buildinfo] carries the version stamped in at build time.
//
// [graph]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/graph
// [viewer]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/viewer
// [quickgraph]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/quickgraph
// [render/nodelink]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/quickgraph/quickgraph/pkg/buildinfo
package pkg
