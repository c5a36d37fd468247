package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/quickgraph/quickgraph/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// ShowIDs appends "#<id>" to node and edge labels.
	ShowIDs bool

	// LeftToRight uses rankdir=LR instead of top-to-bottom.
	LeftToRight bool
}

// ToDOT converts a finalized document to Graphviz DOT source.
func ToDOT(doc graph.Document, opts Options) string {
	rankdir := "TB"
	if opts.LeftToRight {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", doc.Name)
	buf.WriteString("  labelloc=t;\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range doc.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, fmtLabel(n.Name, n.ID, opts.ShowIDs))
	}

	buf.WriteString("\n")
	for _, e := range doc.Edges {
		attrs := fmtEdgeAttrs(e, opts.ShowIDs)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(name, id string, showID bool) string {
	if !showID {
		return name
	}
	if name == "" {
		return "#" + id
	}
	return name + " #" + id
}

func fmtEdgeAttrs(e graph.Edge, showID bool) []string {
	label := e.Name
	if showID {
		label = fmtLabel(e.Name, e.ID, true)
	}
	if label == "" {
		return nil
	}
	return []string{fmt.Sprintf("label=%q", label)}
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
