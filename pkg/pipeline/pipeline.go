// Package pipeline provides the solve pipeline for pyrapath.
//
// This package implements the complete parse → build → evaluate → filter
// pipeline used by both the CLI and the HTTP API. Centralizing it keeps the
// two entry points consistent: same validation, same logging, same hooks.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: Read the target and rows from text ([pio.ReadPyramid])
//  2. Build: Construct the shared-node graph ([pyramid.Build])
//  3. Evaluate: Enumerate every descent path ([pyramid.Graph.Paths])
//  4. Filter: Keep the paths whose product equals the target
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.ExecuteFile(ctx, "pyramid.txt", pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Found() {
//	    fmt.Println(pio.NoPathMessage(result.Target.String()))
//	}
//	for _, m := range result.Matches {
//	    fmt.Println(m.Label)
//	}
package pipeline

import (
	"math/big"
	"time"

	"github.com/charmbracelet/log"

	pio "github.com/matzehuels/pyrapath/pkg/io"
	"github.com/matzehuels/pyrapath/pkg/pyramid"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a solve.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Force builds malformed pyramids leniently: over-long rows are trimmed
	// instead of rejected. Short rows are always rejected.
	Force bool `json:"force,omitempty"`

	// KeepAll retains every evaluated path in Result.All, not only matches.
	KeepAll bool `json:"all,omitempty"`

	// MaxDepth rejects pyramids with more rows than this. Zero means no limit.
	MaxDepth int `json:"max_depth,omitempty"`

	// MaxMatches stops the walk once this many matches are collected and
	// marks the result as truncated if another match exists. Zero means no
	// limit. It is ignored when KeepAll is set.
	MaxMatches int `json:"max_matches,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// BuildOptions translates pipeline options into pyramid build options.
func (o Options) BuildOptions() []pyramid.BuildOption {
	if o.Force {
		return []pyramid.BuildOption{pyramid.WithLenient()}
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Target is the product paths are matched against.
	Target *big.Int

	// Graph is the built shared-node graph.
	Graph *pyramid.Graph

	// All holds every evaluated path when Options.KeepAll is set.
	All []pyramid.Result

	// Matches holds the paths whose product equals Target, in traversal order.
	Matches []pyramid.Result

	// Truncated is set when Options.MaxMatches cut the match list short.
	Truncated bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Depth        int
	Cells        int
	PathsWalked  int
	BuildTime    time.Duration
	EvaluateTime time.Duration
}

// Found reports whether at least one path matched the target.
// A result without matches is a valid outcome, not an error.
func (r *Result) Found() bool { return len(r.Matches) > 0 }

// Canonical reports whether the pyramid had the expected shape without
// trimming.
func (r *Result) Canonical() bool { return r.Graph.Canonical() }

// Report converts the result into its serializable form.
func (r *Result) Report() pio.Report {
	rep := pio.NewReport(r.Target, r.Graph, r.Matches)
	rep.MatchesTruncated = r.Truncated
	return rep
}
