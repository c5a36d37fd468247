package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	qgerrors "github.com/quickgraph/quickgraph/pkg/errors"
	"github.com/quickgraph/quickgraph/pkg/graph"
	"github.com/quickgraph/quickgraph/pkg/render/nodelink"
)

const (
	formatDOT  = "dot"  // Graphviz source
	formatSVG  = "svg"  // rendered by the embedded Graphviz
	formatJSON = "json" // the finalized document as it would be posted
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatJSON: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file, stdout if empty
	format      string // one of validFormats
	name        string // graph name, overrides the description
	showIDs     bool   // append ids to node and edge labels
	leftToRight bool   // lay the graph out left to right instead of top down
}

// renderCommand creates the render command, which draws a described graph
// locally without contacting the viewer service.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph description locally",
		Long: `Render a graph description locally as Graphviz DOT, SVG, or the JSON
document that submit would post. Edges are expanded exactly as they are for
submit, so the output shows what the viewer service will receive.`,
		Example: `  quickgraph render graph.toml
  quickgraph render graph.toml -f svg -o graph.svg
  quickgraph render graph.json -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return qgerrors.New(qgerrors.ErrCodeInvalidFormat,
					"unknown format %q (must be dot, svg, or json)", opts.format)
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, json")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "graph name (overrides the description)")
	cmd.Flags().BoolVar(&opts.showIDs, "ids", false, "show node and edge ids in labels")
	cmd.Flags().BoolVar(&opts.leftToRight, "lr", false, "lay out left to right")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout, stderr io.Writer, path string, opts renderOpts) error {
	b, err := c.loadBuilder(stderr, path, opts.name)
	if err != nil {
		return err
	}
	doc := b.Finalize()
	prog := newProgress(c.Logger)

	if opts.format == formatJSON {
		if opts.output == "" {
			return graph.WriteDocument(doc, stdout)
		}
		if err := graph.WriteDocumentFile(doc, opts.output); err != nil {
			return qgerrors.Wrap(qgerrors.ErrCodeInternal, err, "write %s", opts.output)
		}
	} else {
		data, err := renderDOT(ctx, doc, opts)
		if err != nil {
			return err
		}
		if opts.output == "" {
			_, err := stdout.Write(data)
			return err
		}
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return qgerrors.Wrap(qgerrors.ErrCodeInternal, err, "write %s", opts.output)
		}
	}

	prog.done(fmt.Sprintf("Rendered %s", opts.format))
	printFile(stdout, opts.output)
	return nil
}

// renderDOT produces Graphviz source, or SVG rendered from it.
func renderDOT(ctx context.Context, doc graph.Document, opts renderOpts) ([]byte, error) {
	dot := nodelink.ToDOT(doc, nodelink.Options{ShowIDs: opts.showIDs, LeftToRight: opts.leftToRight})
	if opts.format != formatSVG {
		return []byte(dot), nil
	}
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, qgerrors.Wrap(qgerrors.ErrCodeInternal, err, "render svg")
	}
	return svg, nil
}
