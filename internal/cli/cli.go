// Package cli implements the pyrapath command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyrapath/internal/config"
	"github.com/matzehuels/pyrapath/pkg/errors"
	pio "github.com/matzehuels/pyrapath/pkg/io"
	"github.com/matzehuels/pyrapath/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "pyrapath"

	// listAllMaxDepth caps --all listings, which hold every path in memory.
	listAllMaxDepth = 16
)

// spinnerMinDepth is the row count from which evaluation shows a spinner.
// Below it evaluation finishes before the first frame would be drawn.
var spinnerMinDepth = 20

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded by the root command before any subcommand runs.
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if c.configPath != "" {
		c.Logger.Debug("loaded config", "file", c.configPath)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// execute solves in, showing a spinner on the status output while deep
// pyramids are evaluated.
func (c *CLI) execute(ctx context.Context, in *pio.Input, opts pipeline.Options) (*pipeline.Result, error) {
	if opts.Logger == nil {
		opts.Logger = loggerFromContext(ctx)
	}
	runner := c.newRunner()

	if len(in.Rows) < spinnerMinDepth {
		prog := newProgress(opts.Logger)
		res, err := runner.Execute(ctx, in, opts)
		if err == nil {
			prog.done(evaluatedMessage(res))
		}
		return res, err
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Evaluating %d rows...", len(in.Rows)))
	spin.Start()
	res, err := runner.Execute(ctx, in, opts)
	switch {
	case spin.Cancelled():
		// Interrupted: main exits quietly, so leave no status line behind.
		spin.Stop()
	case err != nil:
		spin.StopWithError("Evaluation failed")
	default:
		spin.StopWithSuccess(evaluatedMessage(res))
	}
	return res, err
}

func evaluatedMessage(res *pipeline.Result) string {
	return fmt.Sprintf("Evaluated %d paths", res.Stats.PathsWalked)
}

// checkListAll rejects --all for pyramids whose full path list is too large
// to hold.
func checkListAll(rows int) error {
	if rows > listAllMaxDepth {
		return errors.New(errors.ErrCodeInvalidInput,
			"--all lists 2^%d paths; pyramids deeper than %d rows can only be listed by match",
			rows-1, listAllMaxDepth)
	}
	return nil
}

// inputPath picks the pyramid file: positional argument, then flag, then
// config.
func (c *CLI) inputPath(args []string, flag string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if flag != "" {
		return flag
	}
	return c.Config.Input
}
