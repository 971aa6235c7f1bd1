package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pio "github.com/matzehuels/pyrapath/pkg/io"
	"github.com/matzehuels/pyrapath/pkg/pipeline"
)

// exploreCommand creates the explore command for browsing paths.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		input string
		force bool
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Browse paths interactively",
		Long: `Browse paths interactively.

Lists the paths whose product equals the target, or every path with --all,
and draws the pyramid with the selected path highlighted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("force") {
				force = c.Config.Force
			}
			path := c.inputPath(args, input)
			return c.runExplore(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), path, force, all)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "pyramid input file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "ignore extra cells in over-long rows")
	cmd.Flags().BoolVar(&all, "all", false, "list every path, not only matches")

	return cmd
}

// runExplore solves path and starts the path browser.
func (c *CLI) runExplore(ctx context.Context, r io.Reader, w io.Writer, path string, force, all bool) error {
	in, err := pio.ImportFile(path)
	if err != nil {
		return err
	}
	if all {
		if err := checkListAll(len(in.Rows)); err != nil {
			return err
		}
	}

	res, err := c.execute(ctx, in, pipeline.Options{
		Force:   force,
		KeepAll: all,
		Logger:  loggerFromContext(ctx),
	})
	if err != nil {
		return err
	}

	paths := res.Matches
	if all {
		paths = res.All
	}
	if len(paths) == 0 {
		fmt.Fprintln(w, pio.NoPathMessage(res.Target.String()))
		return nil
	}

	m := NewPathListModel(res.Graph, res.Target, paths)
	_, err = tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(r), tea.WithOutput(w)).Run()
	return err
}
