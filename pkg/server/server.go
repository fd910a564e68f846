// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	POST /render?format=svg|png|pdf|json&scale=2&width=800
//	POST /validate
//	GET  /healthz
//
// Request bodies are figure documents in JSON, or YAML when the request
// Content-Type names YAML. Every response carries an X-Request-ID header;
// a valid UUID supplied by the client is echoed back, otherwise a new one
// is generated.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/genetracks/genetracks/pkg/buildinfo"
	"github.com/genetracks/genetracks/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = "127.0.0.1:8080"

	// MaxBodyBytes bounds request documents.
	MaxBodyBytes = 4 << 20

	shutdownTimeout = 10 * time.Second
)

// Server routes HTTP requests to a pipeline Runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router

	maxBody int64
}

// New builds a server around runner. A nil logger uses the runner's.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{runner: runner, logger: logger, maxBody: MaxBodyBytes}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/validate", s.handleValidate)

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "version", buildinfo.Version)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
