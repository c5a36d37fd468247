package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/quickgraph/quickgraph/pkg/graph"
	"github.com/quickgraph/quickgraph/pkg/quickgraph"
	"github.com/quickgraph/quickgraph/pkg/viewer"
)

// submitOpts holds the command-line flags for the submit command.
type submitOpts struct {
	host   string // viewer host, overrides env and config
	name   string // graph name, overrides the description
	dryRun bool   // print the finalized document instead of posting it
}

// submitCommand creates the submit command, which posts a described graph to
// the viewer service and prints the view URL.
func (c *CLI) submitCommand() *cobra.Command {
	var opts submitOpts

	cmd := &cobra.Command{
		Use:   "submit [file]",
		Short: "Post a graph description to the viewer service",
		Long: `Post a graph description to the viewer service.

The description is a TOML or JSON file listing node names and edges between
names. Edges between names shared by several nodes are expanded to every
matching pair before the graph is sent.`,
		Example: `  quickgraph submit graph.toml
  quickgraph submit graph.json --name "Release 1.2" --host localhost:8080
  quickgraph submit graph.toml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSubmit(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "", "viewer service host (overrides "+envHost+" and config file)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "graph name (overrides the description)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the finalized graph as JSON without posting it")

	return cmd
}

func (c *CLI) runSubmit(ctx context.Context, stdout, stderr io.Writer, path string, opts submitOpts) error {
	b, err := c.loadBuilder(stderr, path, opts.name)
	if err != nil {
		return err
	}

	if opts.dryRun {
		return graph.WriteDocument(b.Finalize(), stdout)
	}

	host, source, err := resolveHost(opts.host)
	if err != nil {
		return err
	}
	c.Logger.Debug("Resolved viewer host", "host", host, "source", source)

	client, err := viewer.New(host)
	if err != nil {
		return err
	}
	g := quickgraph.FromBuilder(b, client)

	spinner := newSpinner(ctx, stderr, fmt.Sprintf("Posting to %s...", host))
	spinner.Start()
	prog := newProgress(c.Logger)
	url, err := g.Submit(ctx)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			c.Logger.Warn("Submission cancelled", "host", host)
		}
		return err
	}
	prog.done("Submitted graph")

	doc := g.Document()
	printSuccess(stdout, "Graph created. View it at %s", StyleLink.Render(url))
	printStats(stdout, len(doc.Nodes), len(b.Edges()), len(doc.Edges))
	printDetail(stdout, "request %s", g.Receipt().RequestID)
	return nil
}

// loadBuilder reads a description file, applies a name override, and warns
// about edges that will expand to nothing.
func (c *CLI) loadBuilder(w io.Writer, path, name string) (*graph.Builder, error) {
	desc, err := graph.ReadDescriptionFile(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("Loaded description", "path", path, "nodes", len(desc.Nodes), "edges", len(desc.Edges))

	b := desc.Builder()
	if name != "" {
		b.SetName(name)
	}
	if n := unmatchedEdges(b); n > 0 {
		printWarning(w, "%d edge(s) reference unknown node names and will be dropped", n)
	}
	return b, nil
}

// unmatchedEdges counts name-addressed edges whose source or target names no node.
func unmatchedEdges(b *graph.Builder) int {
	doc := graph.Document{Nodes: b.Nodes()}
	count := 0
	for _, e := range b.Edges() {
		if len(doc.NodesNamed(e.Source)) == 0 || len(doc.NodesNamed(e.Target)) == 0 {
			count++
		}
	}
	return count
}
