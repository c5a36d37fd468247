// Package graph provides the in-memory multigraph model and its wire format.
//
// A graph is assembled with a [Builder]: nodes are added by display name,
// and edges are added between names rather than node ids. Several nodes may
// share a name, so a name-addressed edge stands for every pair of matching
// nodes. [Builder.Finalize] resolves those edges into the id-addressed
// [Document] that the viewer service accepts.
//
// # Identifiers
//
// Every node and every edge gets an id from a single counter owned by the
// builder. The counter starts at zero and is incremented before use, so the
// first node added is "1":
//
//	b := graph.NewBuilder()
//	b.AddNode("a")            // "1"
//	b.AddEdge("a", "b", "")   // "2"
//	b.AddNode("b")            // "3"
//
// # Expansion
//
// For every name-addressed edge, in insertion order, Finalize pairs each node
// named like the source with each node named like the target. Sources form
// the outer loop and both sides follow node insertion order. A name that
// matches no node yields no edges. Expanded edges receive fresh ids that
// continue after the builder's last id.
//
// Finalize does not modify the builder; calling it twice returns equal
// documents.
//
// # Serialization
//
// Documents use a node-link JSON format:
//
//	{
//	  "name": "My Graph",
//	  "nodes": [{"id": "1", "name": "a"}, {"id": "2", "name": "b"}],
//	  "edges": [{"id": "4", "name": "E1", "source": "1", "target": "2"}]
//	}
//
// Graphs can also be described in TOML or JSON files and loaded with
// [ReadDescriptionFile].
//
// # Concurrency
//
// A Builder is not safe for concurrent use. Documents are plain values.
package graph
