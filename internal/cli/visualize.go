package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyrapath/pkg/errors"
	pio "github.com/matzehuels/pyrapath/pkg/io"
	"github.com/matzehuels/pyrapath/pkg/pipeline"
	"github.com/matzehuels/pyrapath/pkg/pyramid"
	"github.com/matzehuels/pyrapath/pkg/render/nodelink"
)

// Diagram formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// visualizeOptions holds the visualize command flags.
type visualizeOptions struct {
	input    string
	output   string
	format   string
	path     string
	matches  bool
	detailed bool
	force    bool
}

// visualizeCommand creates the visualize command for rendering the pyramid
// as a node-link diagram.
func (c *CLI) visualizeCommand() *cobra.Command {
	var opts visualizeOptions

	cmd := &cobra.Command{
		Use:   "visualize [file]",
		Short: "Render the pyramid as a node-link diagram",
		Long: `Render the pyramid as a node-link diagram.

Every cell is drawn once with an L edge to its left child and an R edge to its
right child, so cells shared by two parents are easy to spot. Output is
Graphviz DOT or SVG rendered in-process.

Use --path to highlight one path, or --matches to highlight every path whose
product equals the target.`,
		Example: `  pyrapath visualize pyramid.txt --matches -o pyramid.svg
  pyrapath visualize --format dot --path LRLL | dot -Tpng > path.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return errors.New(errors.ErrCodeInvalidFormat, "unknown diagram format %q (want dot or svg)", opts.format)
			}
			if !cmd.Flags().Changed("force") {
				opts.force = c.Config.Force
			}
			path := c.inputPath(args, opts.input)
			return c.runVisualize(cmd.Context(), cmd.OutOrStdout(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "pyramid input file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", formatSVG, "diagram format: svg, dot")
	cmd.Flags().StringVar(&opts.path, "path", "", "highlight this path label, e.g. LRLL")
	cmd.Flags().BoolVar(&opts.matches, "matches", false, "highlight every path matching the target")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show (row,col) in each node")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "ignore extra cells in over-long rows")

	return cmd
}

// runVisualize builds the graph for path and writes the diagram.
func (c *CLI) runVisualize(ctx context.Context, w io.Writer, path string, opts visualizeOptions) error {
	logger := loggerFromContext(ctx)
	popts := pipeline.Options{Force: opts.force, Logger: logger}
	runner := c.newRunner()

	var g *pyramid.Graph
	var highlight []string
	if opts.matches {
		res, err := runner.ExecuteFile(ctx, path, popts)
		if err != nil {
			return err
		}
		g = res.Graph
		for _, m := range res.Matches {
			highlight = append(highlight, m.Label)
		}
		if !res.Found() {
			printInfo("%s", pio.NoPathMessage(res.Target.String()))
		}
	} else {
		in, err := pio.ImportFile(path)
		if err != nil {
			return err
		}
		g, _, err = runner.Build(ctx, in.Rows, popts)
		if err != nil {
			return err
		}
	}

	if opts.path != "" {
		if _, err := g.Replay(opts.path); err != nil {
			return err
		}
		highlight = append(highlight, opts.path)
	}

	prog := newProgress(logger)
	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.detailed, Highlight: highlight})
	data := []byte(dot)
	if opts.format == formatSVG {
		svg, err := nodelink.RenderSVG(dot)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		data = svg
	}

	if opts.output == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", opts.output)
	}
	prog.done("Rendered " + opts.format)
	printFile(opts.output)
	return nil
}
