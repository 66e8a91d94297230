// Package server exposes the treemap pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                             liveness and version
//	POST /v1/layouts                          compute and store a layout
//	GET  /v1/layouts/{id}                     fetch a stored layout
//	GET  /v1/layouts/{id}/render.{format}     render a stored layout
//	POST /v1/render?format=svg                one-shot layout and render
//
// Request bodies carry the items plus any pipeline option (width, height,
// max_display, mode, inset, style, scale, links). Omitted options take the
// server's defaults.
//
// Errors are JSON objects {"code": ..., "message": ...}. Validation codes
// map to 400, NOT_FOUND to 404 and everything else to 500.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/squaremap/pkg/pipeline"
	"github.com/matzehuels/squaremap/pkg/store"
)

// DefaultMaxBodyBytes caps request bodies.
const DefaultMaxBodyBytes = 4 << 20

// Config configures a Server.
type Config struct {
	// Runner executes the pipeline. Required.
	Runner *pipeline.Runner

	// Store persists layouts. Defaults to a MemoryStore.
	Store store.Store

	// Defaults seeds every request's options. Defaults to
	// pipeline.DefaultOptions().
	Defaults *pipeline.Options

	// LayoutTTL is how long stored layouts are kept. Defaults to
	// store.DefaultTTL.
	LayoutTTL time.Duration

	// MaxBodyBytes caps request bodies. Defaults to DefaultMaxBodyBytes.
	MaxBodyBytes int64

	Logger *log.Logger
}

// Server is the HTTP API. It is safe for concurrent use.
type Server struct {
	runner   *pipeline.Runner
	store    store.Store
	defaults pipeline.Options
	ttl      time.Duration
	maxBody  int64
	logger   *log.Logger
	router   chi.Router
}

// New builds a server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		runner:   cfg.Runner,
		store:    cfg.Store,
		defaults: pipeline.DefaultOptions(),
		ttl:      cfg.LayoutTTL,
		maxBody:  cfg.MaxBodyBytes,
		logger:   cfg.Logger,
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if s.store == nil {
		s.store = store.NewMemoryStore()
	}
	if cfg.Defaults != nil {
		s.defaults = *cfg.Defaults
	}
	if s.ttl == 0 {
		s.ttl = store.DefaultTTL
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s.defaults.Logger = s.logger
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleCreateLayout)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Get("/layouts/{id}/render.{format}", s.handleRenderLayout)
		r.Post("/render", s.handleRender)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errNotFound(r.URL.Path))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
