package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyrapath/pkg/errors"
	pio "github.com/matzehuels/pyrapath/pkg/io"
	"github.com/matzehuels/pyrapath/pkg/observability"
	"github.com/matzehuels/pyrapath/pkg/pyramid"
)

// cancelCheckInterval is how many paths are walked between context checks.
const cancelCheckInterval = 4096

// Runner encapsulates pipeline execution.
// Both CLI and API use this to avoid duplicating solve logic.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// ExecuteFile reads the pyramid description at path and solves it.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	r.logger(opts).Debug("reading input", "file", path)
	in, err := pio.ImportFile(path)
	if err != nil {
		return nil, err
	}
	return r.Execute(ctx, in, opts)
}

// ExecuteReader parses a pyramid description from rd and solves it.
func (r *Runner) ExecuteReader(ctx context.Context, rd io.Reader, opts Options) (*Result, error) {
	in, err := pio.ReadPyramid(rd)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return r.Execute(ctx, in, opts)
}

// Execute runs build → evaluate → filter on already-parsed input.
func (r *Runner) Execute(ctx context.Context, in *pio.Input, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	logger.Debug("parsed input", "target", in.Target, "rows", len(in.Rows))

	if opts.MaxDepth > 0 && len(in.Rows) > opts.MaxDepth {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"pyramid has %d rows, the limit is %d", len(in.Rows), opts.MaxDepth)
	}

	g, buildTime, err := r.Build(ctx, in.Rows, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	result := &Result{
		Target: in.Target,
		Graph:  g,
		Stats: Stats{
			Depth:     g.Depth(),
			Cells:     g.Len(),
			BuildTime: buildTime,
		},
	}

	if err := r.evaluate(ctx, result, opts); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	logger.Debug("solved pyramid",
		"depth", result.Stats.Depth,
		"paths", result.Stats.PathsWalked,
		"matches", len(result.Matches),
		"duration", result.Stats.BuildTime+result.Stats.EvaluateTime)

	return result, nil
}

// Build constructs the graph for rows, logging and reporting hooks.
func (r *Runner) Build(ctx context.Context, rows [][]int64, opts Options) (*pyramid.Graph, time.Duration, error) {
	logger := r.logger(opts)
	hooks := observability.Pipeline()

	hooks.OnBuildStart(ctx, len(rows))
	start := time.Now()
	g, err := pyramid.Build(rows, opts.BuildOptions()...)
	elapsed := time.Since(start)

	if err != nil {
		hooks.OnBuildComplete(ctx, len(rows), false, elapsed, err)
		return nil, elapsed, err
	}
	hooks.OnBuildComplete(ctx, g.Depth(), g.Canonical(), elapsed, nil)

	if !g.Canonical() {
		logger.Warn("pyramid rows were trimmed to their expected length", "rows", g.Truncated())
	}
	logger.Debug("built graph", "depth", g.Depth(), "cells", g.Len(), "duration", elapsed)
	return g, elapsed, nil
}

func (r *Runner) evaluate(ctx context.Context, result *Result, opts Options) error {
	hooks := observability.Pipeline()
	hooks.OnEvaluateStart(ctx, result.Graph.Depth())
	start := time.Now()

	limit := opts.MaxMatches
	if opts.KeepAll {
		limit = 0
	}

	walked := 0
	for res := range result.Graph.Paths() {
		walked++
		if walked%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if opts.KeepAll {
			result.All = append(result.All, res)
		}
		if res.Product.Cmp(result.Target) == 0 {
			if limit > 0 && len(result.Matches) == limit {
				result.Truncated = true
				break
			}
			result.Matches = append(result.Matches, res)
		}
	}
	if result.Truncated {
		r.logger(opts).Warn("match limit reached", "limit", limit, "walked", walked)
	}

	result.Stats.PathsWalked = walked
	result.Stats.EvaluateTime = time.Since(start)
	hooks.OnEvaluateComplete(ctx, walked, len(result.Matches), result.Stats.EvaluateTime)
	return nil
}

// Solve is a convenience wrapper for callers that already hold rows and a
// target, such as the HTTP API.
func (r *Runner) Solve(ctx context.Context, target *big.Int, rows [][]int64, opts Options) (*Result, error) {
	return r.Execute(ctx, &pio.Input{Target: target, Rows: rows}, opts)
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
