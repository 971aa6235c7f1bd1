// Package server exposes the solve pipeline over HTTP.
//
// Routes:
//
//	POST /v1/solve   solve a pyramid given as JSON {target, rows, force}, or
//	                 as text/plain in the input file format (?force=true)
//	GET  /v1/sample  the sample input in the text format
//	GET  /v1/stats   in-process counters
//	GET  /healthz    liveness
//
// Every response carries an X-Request-ID header. A client-supplied ID is
// echoed back; otherwise a random UUID is assigned.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/pyrapath/internal/config"
	"github.com/matzehuels/pyrapath/pkg/errors"
	pio "github.com/matzehuels/pyrapath/pkg/io"
	"github.com/matzehuels/pyrapath/pkg/observability"
	"github.com/matzehuels/pyrapath/pkg/pipeline"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

type ctxKey int

const requestIDKey ctxKey = 0

// Server serves the pyrapath HTTP API.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	cfg      config.ServeConfig
	counters *observability.Counters
	router   chi.Router
}

// New creates a server and installs its counters as the process-wide
// pipeline and HTTP hooks.
func New(runner *pipeline.Runner, logger *log.Logger, cfg config.ServeConfig) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		logger:   logger,
		cfg:      cfg,
		counters: &observability.Counters{},
	}
	observability.SetPipelineHooks(s.counters)
	observability.SetHTTPHooks(s.counters)

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Get("/sample", s.handleSample)
		r.Get("/stats", s.handleStats)
	})
	s.router = r
	return s
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// =============================================================================
// Middleware
// =============================================================================

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := RequestID(r.Context())
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), id, r.Method, r.URL.Path)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), id, status, elapsed)
		s.logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path, "status", status, "duration", elapsed)
	})
}

// RequestID returns the request ID stored in ctx, or "" if there is none.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// =============================================================================
// Handlers
// =============================================================================

// SolveRequest is the body of POST /v1/solve. Target may be a JSON number or
// a decimal string; strings allow targets beyond the float64 range.
type SolveRequest struct {
	Target json.Number `json:"target"`
	Rows   [][]int64   `json:"rows"`
	Force  bool        `json:"force,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSample(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(pio.SampleInput))
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.counters.Snapshot())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var (
		res *pipeline.Result
		err error
	)
	if isText(r) {
		opts := s.solveOptions(r.URL.Query().Get("force") == "true")
		res, err = s.runner.ExecuteReader(r.Context(), body, opts)
	} else {
		res, err = s.solveJSON(r.Context(), body)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res.Report())
}

// solveJSON decodes a [SolveRequest] from body and solves it.
func (s *Server) solveJSON(ctx context.Context, body io.Reader) (*pipeline.Result, error) {
	var req SolveRequest
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}

	target, err := pio.ParseTarget(req.Target.String())
	if err != nil {
		return nil, err
	}
	return s.runner.Solve(ctx, target, req.Rows, s.solveOptions(req.Force))
}

func (s *Server) solveOptions(force bool) pipeline.Options {
	return pipeline.Options{
		Force:      force,
		MaxDepth:   s.cfg.MaxDepth,
		MaxMatches: s.cfg.MaxMatches,
	}
}

// isText reports whether the request body is the plain-text input format
// rather than JSON.
func isText(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "text/plain"
}

// =============================================================================
// Responses
// =============================================================================

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidTarget,
		errors.ErrCodeMissingTargetWord,
		errors.ErrCodeMalformedPyramid,
		errors.ErrCodeNonIntegerValue,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, ErrorResponse{Code: code, Message: msg, RequestID: RequestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
