// Package quickgraph builds a multigraph and posts it to a visualization
// service in one go.
//
// Nodes are added by name and edges connect names, so an edge between two
// names shared by several nodes fans out to every matching pair when the
// graph is submitted:
//
//	g, err := quickgraph.NewForHost(viewer.DefaultHost)
//	if err != nil {
//	    return err
//	}
//	g.SetName("My Graph")
//	g.AddNode("a")
//	g.AddNode("b")
//	g.AddNode("c")
//	g.AddEdge("a", "b", "Edge 1")
//	g.AddEdge("a", "b", "Edge 2")
//	g.AddEdge("c", "b", "Edge 3")
//	url, err := g.Submit(ctx)
//
// A Graph is submitted at most once. A failed submission may be retried by
// calling Submit again; a successful one makes later calls fail with
// ALREADY_SUBMITTED.
package quickgraph

import (
	"context"
	"time"

	qgerrors "github.com/quickgraph/quickgraph/pkg/errors"
	"github.com/quickgraph/quickgraph/pkg/graph"
	"github.com/quickgraph/quickgraph/pkg/observability"
	"github.com/quickgraph/quickgraph/pkg/viewer"
)

// Submitter sends a finalized document to a viewer service.
// [viewer.Client] is the production implementation.
type Submitter interface {
	Submit(ctx context.Context, doc graph.Document) (*viewer.Receipt, error)
}

// Graph is a graph under construction bound to the service it will be
// submitted to. It is not safe for concurrent use.
type Graph struct {
	builder   *graph.Builder
	submitter Submitter
	receipt   *viewer.Receipt
}

// New returns an empty graph that will be submitted through s.
func New(s Submitter) *Graph {
	return FromBuilder(graph.NewBuilder(), s)
}

// FromBuilder binds an existing builder to s. The graph takes ownership of b.
func FromBuilder(b *graph.Builder, s Submitter) *Graph {
	return &Graph{builder: b, submitter: s}
}

// NewForHost returns an empty graph that will be submitted to the viewer
// service at host.
func NewForHost(host string, opts ...viewer.Option) (*Graph, error) {
	c, err := viewer.New(host, opts...)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

// SetName replaces the display name sent with the graph.
func (g *Graph) SetName(name string) { g.builder.SetName(name) }

// AddNode adds a node. Names may repeat.
func (g *Graph) AddNode(name string) { g.builder.AddNode(name) }

// AddEdge adds an edge from every node named source to every node named
// target. Use an empty label for an unlabeled edge. Names are resolved at
// submission, so nodes may be added later.
func (g *Graph) AddEdge(source, target, label string) { g.builder.AddEdge(source, target, label) }

// Document returns the graph as it would be submitted now.
func (g *Graph) Document() graph.Document { return g.builder.Finalize() }

// Submitted reports whether the graph was accepted by the service.
func (g *Graph) Submitted() bool { return g.receipt != nil }

// Receipt returns the service's answer to a successful Submit, or nil.
func (g *Graph) Receipt() *viewer.Receipt { return g.receipt }

// Submit finalizes the graph, posts it, and returns the view URL.
func (g *Graph) Submit(ctx context.Context) (string, error) {
	if g.receipt != nil {
		return "", qgerrors.New(qgerrors.ErrCodeAlreadySubmitted, "graph already submitted as %s", g.receipt.URL)
	}

	start := time.Now()
	doc := g.builder.Finalize()
	observability.Graph().OnFinalize(ctx, doc.Name, len(doc.Nodes), len(g.builder.Edges()), len(doc.Edges), time.Since(start))

	receipt, err := g.submitter.Submit(ctx, doc)
	if err != nil {
		return "", err
	}
	if receipt == nil {
		return "", qgerrors.New(qgerrors.ErrCodeInternal, "submitter returned no receipt")
	}
	g.receipt = receipt
	return receipt.URL, nil
}
