package graph

import "strconv"

// Builder accumulates nodes and name-addressed edges.
// The zero value is not usable; create one with [NewBuilder].
type Builder struct {
	name  string
	nodes []Node
	edges []NameEdge
	seq   int // last id handed out
}

// NewBuilder returns an empty builder named [DefaultName].
func NewBuilder() *Builder {
	return &Builder{name: DefaultName}
}

// SetName replaces the display name of the graph.
func (b *Builder) SetName(name string) { b.name = name }

// Name returns the current display name.
func (b *Builder) Name() string { return b.name }

// AddNode appends a node with a fresh id and returns that id.
// The name may repeat an existing node's name.
func (b *Builder) AddNode(name string) string {
	id := b.nextID()
	b.nodes = append(b.nodes, Node{ID: id, Name: name})
	return id
}

// AddEdge appends an edge between node names and returns its id.
// The names are not checked against the current nodes; they are resolved
// by [Builder.Finalize].
func (b *Builder) AddEdge(source, target, label string) string {
	id := b.nextID()
	b.edges = append(b.edges, NameEdge{ID: id, Name: label, Source: source, Target: target})
	return id
}

// Nodes returns a copy of the nodes in insertion order.
func (b *Builder) Nodes() []Node {
	return append([]Node{}, b.nodes...)
}

// Edges returns a copy of the name-addressed edges in insertion order.
func (b *Builder) Edges() []NameEdge {
	return append([]NameEdge{}, b.edges...)
}

// Finalize expands the name-addressed edges into id-addressed edges and
// returns the resulting document. The builder is left unchanged.
func (b *Builder) Finalize() Document {
	byName := make(map[string][]int, len(b.nodes))
	for i, n := range b.nodes {
		byName[n.Name] = append(byName[n.Name], i)
	}

	seq := b.seq
	edges := make([]Edge, 0, len(b.edges))
	for _, e := range b.edges {
		targets := byName[e.Target]
		for _, si := range byName[e.Source] {
			for _, ti := range targets {
				seq++
				edges = append(edges, Edge{
					ID:     strconv.Itoa(seq),
					Name:   e.Name,
					Source: b.nodes[si].ID,
					Target: b.nodes[ti].ID,
				})
			}
		}
	}

	return Document{
		Name:  b.name,
		Nodes: b.Nodes(),
		Edges: edges,
	}
}

func (b *Builder) nextID() string {
	b.seq++
	return strconv.Itoa(b.seq)
}
