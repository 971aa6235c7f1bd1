package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pyrapath/pkg/errors"
	pio "github.com/matzehuels/pyrapath/pkg/io"
	"github.com/matzehuels/pyrapath/pkg/pipeline"
	"github.com/matzehuels/pyrapath/pkg/render/ascii"
)

// solveOptions holds the solve command flags.
type solveOptions struct {
	input  string
	output string
	format string
	force  bool
	create bool
	values bool
	tree   bool
	all    bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the paths whose product equals the target",
		Long: `Print the paths whose product equals the target.

The input file starts with a target line followed by one row per line, apex
first. Cells are separated by commas and/or spaces:

  Target: 720
  2
  4,3
  3,2,6

Each matching path is printed as a sequence of L and R steps taken below the
apex. When no path matches, a message saying so is printed instead; this is
not an error.

Rows with more cells than their position allows are rejected unless --force
is given, in which case the extra cells are ignored.`,
		Example: `  # Create the sample file if needed, then solve it
  pyrapath solve -c

  # Show the factors and the pyramid for every match
  pyrapath solve pyramid.txt --values --tree

  # Machine-readable output
  pyrapath solve pyramid.txt --format json -o report.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applySolveDefaults(cmd, &opts)
			if err := pio.ValidateFormat(opts.format); err != nil {
				return err
			}
			path := c.inputPath(args, opts.input)
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "pyramid input file (default from config, else "+pio.DefaultInputFile+")")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "ignore extra cells in over-long rows")
	cmd.Flags().BoolVarP(&opts.create, "create", "c", false, "write the sample input first if the file does not exist")
	cmd.Flags().BoolVar(&opts.values, "values", false, "print the factors and product beside each path")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the pyramid and each matching path (text format)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "print every path with its product (text format)")
	cmd.Flags().StringVar(&opts.format, "format", pio.FormatText, "output format: text, json, yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}

// applySolveDefaults fills flags the user did not set from the config.
func (c *CLI) applySolveDefaults(cmd *cobra.Command, opts *solveOptions) {
	if !cmd.Flags().Changed("force") {
		opts.force = c.Config.Force
	}
	if !cmd.Flags().Changed("format") {
		opts.format = c.Config.Format
	}
	if !cmd.Flags().Changed("values") {
		opts.values = c.Config.Values
	}
}

// runSolve reads path, solves it and writes the result to w.
func (c *CLI) runSolve(ctx context.Context, w io.Writer, path string, opts solveOptions) error {
	logger := loggerFromContext(ctx)

	if opts.create {
		if err := ensureSample(path); err != nil {
			return err
		}
	}

	in, err := pio.ImportFile(path)
	if err != nil {
		return err
	}

	text := opts.format == pio.FormatText
	if opts.all && text {
		if err := checkListAll(len(in.Rows)); err != nil {
			return err
		}
	}

	res, err := c.execute(ctx, in, pipeline.Options{
		Force:   opts.force,
		KeepAll: opts.all && text,
		Logger:  logger,
	})
	if err != nil {
		if trimmable(err) {
			printNextStep("Ignore the extra cells", fmt.Sprintf("%s solve --force %s", appName, path))
		}
		return err
	}

	if logger.GetLevel() <= log.DebugLevel {
		printStats(res.Stats.Depth, res.Stats.PathsWalked, len(res.Matches))
	}

	if (opts.tree || opts.all) && !text {
		printWarning("--tree and --all only apply to text output")
	}
	if opts.tree && text {
		writeTree(w, res)
	}
	if opts.all && text {
		fmt.Fprintln(w, pathTable(res))
	}

	report := res.Report()
	if opts.output != "" {
		if err := pio.Export(report, opts.output, opts.format, opts.values); err != nil {
			return err
		}
		printSuccess("Wrote %s result", opts.format)
		printFile(opts.output)
		return nil
	}
	return pio.Write(w, report, opts.format, opts.values)
}

// ensureSample writes the sample input to path unless a file is already
// there, in which case the existing file is used as is.
func ensureSample(path string) error {
	err := pio.CreateSample(path)
	switch {
	case err == nil:
		printSuccess("Created sample input")
		printFile(path)
		return nil
	case errors.Is(err, errors.ErrCodeFileExists):
		printInfo("Using existing input %s", path)
		return nil
	default:
		return err
	}
}

// trimmable reports whether err is a row that --force would have accepted.
func trimmable(err error) bool {
	var rl *errors.RowLengthError
	return stderrors.As(err, &rl) && !rl.Short()
}

// writeTree prints the whole pyramid followed by each matching path on its
// own, with the cells off the path blanked out.
func writeTree(w io.Writer, res *pipeline.Result) {
	fmt.Fprintln(w, StyleTitle.Render("Pyramid"))
	fmt.Fprint(w, ascii.Render(res.Graph, ascii.Options{}))
	for _, m := range res.Matches {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s %s\n",
			StyleTitle.Render("Path"), StyleHighlight.Render(m.Label),
			StyleDim.Render("= "+res.Target.String()))
		fmt.Fprint(w, ascii.Render(res.Graph, ascii.Options{
			Path:     m.Label,
			OnlyPath: true,
			Mark:     markPathCell,
		}))
	}
	fmt.Fprintln(w)
}

// pathTable lists every evaluated path with its factors and product,
// matching rows highlighted.
func pathTable(res *pipeline.Result) string {
	rows := make([][]string, 0, len(res.All))
	for _, r := range res.All {
		mark := ""
		if r.Product.Cmp(res.Target) == 0 {
			mark = iconSuccess
		}
		rows = append(rows, []string{r.Label, r.Trail(), r.Product.String(), mark})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Path", "Values", "Product", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < len(res.All) && res.All[row].Product.Cmp(res.Target) == 0 {
				return styleMatch.Bold(true)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}
