// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about pipeline execution and HTTP API requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The pyramid core never calls hooks; only the pipeline runner and the HTTP
// server do.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnBuildStart(ctx, len(rows))
//	// ... build ...
//	observability.Pipeline().OnBuildComplete(ctx, depth, canonical, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the solve pipeline.
type PipelineHooks interface {
	// Build events
	OnBuildStart(ctx context.Context, rows int)
	OnBuildComplete(ctx context.Context, depth int, canonical bool, duration time.Duration, err error)

	// Evaluate events
	OnEvaluateStart(ctx context.Context, depth int)
	OnEvaluateComplete(ctx context.Context, paths, matches int, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, requestID, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, requestID string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, bool, time.Duration, error) {}
func (NoopPipelineHooks) OnEvaluateStart(context.Context, int)                             {}
func (NoopPipelineHooks) OnEvaluateComplete(context.Context, int, int, time.Duration)      {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	httpHooks     HTTPHooks     = NoopHTTPHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	httpHooks = NoopHTTPHooks{}
}

// =============================================================================
// Counters
// =============================================================================

// Counters is a PipelineHooks and HTTPHooks implementation that keeps
// in-process totals. It is safe for concurrent use.
type Counters struct {
	mu sync.Mutex

	builds        int64
	buildFailures int64
	nonCanonical  int64
	evaluations   int64
	pathsWalked   int64
	matches       int64
	requests      int64
	serverErrors  int64
}

// Snapshot is a point-in-time copy of [Counters].
type Snapshot struct {
	Builds        int64 `json:"builds"`
	BuildFailures int64 `json:"build_failures"`
	NonCanonical  int64 `json:"non_canonical"`
	Evaluations   int64 `json:"evaluations"`
	PathsWalked   int64 `json:"paths_walked"`
	Matches       int64 `json:"matches"`
	Requests      int64 `json:"requests"`
	ServerErrors  int64 `json:"server_errors"`
}

func (c *Counters) OnBuildStart(context.Context, int) {}

func (c *Counters) OnBuildComplete(_ context.Context, _ int, canonical bool, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.builds++
	if err != nil {
		c.buildFailures++
		return
	}
	if !canonical {
		c.nonCanonical++
	}
}

func (c *Counters) OnEvaluateStart(context.Context, int) {}

func (c *Counters) OnEvaluateComplete(_ context.Context, paths, matches int, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evaluations++
	c.pathsWalked += int64(paths)
	c.matches += int64(matches)
}

func (c *Counters) OnRequest(context.Context, string, string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
}

func (c *Counters) OnResponse(_ context.Context, _ string, status int, _ time.Duration) {
	if status < 500 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serverErrors++
}

// Snapshot returns the current totals.
func (c *Counters) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Builds:        c.builds,
		BuildFailures: c.buildFailures,
		NonCanonical:  c.nonCanonical,
		Evaluations:   c.evaluations,
		PathsWalked:   c.pathsWalked,
		Matches:       c.matches,
		Requests:      c.requests,
		ServerErrors:  c.serverErrors,
	}
}

var (
	_ PipelineHooks = (*Counters)(nil)
	_ HTTPHooks     = (*Counters)(nil)
)
