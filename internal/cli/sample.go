package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pio "github.com/matzehuels/pyrapath/pkg/io"
)

// sampleCommand creates the sample command for writing example input.
func (c *CLI) sampleCommand() *cobra.Command {
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "sample [file]",
		Short: "Write a sample pyramid input file",
		Long: `Write a sample pyramid input file.

The sample is a five-row pyramid with target 720. An existing file is never
overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toStdout {
				_, err := io.WriteString(cmd.OutOrStdout(), pio.SampleInput)
				return err
			}

			path := c.inputPath(args, "")
			if err := pio.CreateSample(path); err != nil {
				return err
			}
			printSuccess("Created sample input")
			printFile(path)
			printNextStep("Solve it", fmt.Sprintf("%s solve %s", appName, path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the sample instead of writing a file")

	return cmd
}
