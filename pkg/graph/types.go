package graph

// DefaultName is the display name of a graph that was never renamed.
const DefaultName = "New Graph"

// Document is the finalized graph sent to the viewer service.
// Edges reference node ids.
type Document struct {
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a graph vertex. Names need not be unique.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Edge is a finalized, id-addressed edge.
type Edge struct {
	ID     string `json:"id"`
	Name   string `json:"name"`   // Label, may be empty
	Source string `json:"source"` // Node ID
	Target string `json:"target"` // Node ID
}

// NameEdge is an edge as recorded by [Builder.AddEdge], before expansion.
// Source and Target are node names.
type NameEdge struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// NodesNamed returns the nodes of d whose name equals name, in document order.
func (d Document) NodesNamed(name string) []Node {
	var out []Node
	for _, n := range d.Nodes {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out
}
