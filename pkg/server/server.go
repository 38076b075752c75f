// Package server exposes one grid layout over HTTP.
//
// The engine is single-writer, so every request takes the server's lock
// for the duration of the operation and settles the engine before it
// responds. Responses carry the layout snapshot after the change.
//
// Routes:
//
//	GET    /healthz
//	GET    /layout                   current snapshot
//	GET    /document                 document pinning every item at its cell
//	PUT    /container                {"width": 1200} resolves pixel metrics
//	POST   /items                    {"id": "chart", "size_x": 2}
//	PUT    /items/{id}/position      {"row": 1, "col": 0}
//	PUT    /items/{id}/size          {"size_x": 3, "size_y": 2}
//	DELETE /items/{id}
//	POST   /items/{id}/swap/{other}  items must have the same size
//	POST   /compact                  float every item up
//
// Errors are JSON objects with a code and a message; the status follows
// the code.
package server

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridster/pkg/layout"
	"github.com/matzehuels/gridster/pkg/observability"
)

// shutdownTimeout bounds how long ListenAndServe waits for in-flight
// requests after its context ends.
const shutdownTimeout = 5 * time.Second

// Server serves one layout.
type Server struct {
	mu     sync.Mutex
	layout *layout.Layout
	logger *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default discards.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// New returns a server for l. The server takes ownership of l; callers must
// not use it concurrently.
func New(l *layout.Layout, opts ...Option) *Server {
	s := &Server{
		layout: l,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.health)
	r.Get("/layout", s.getLayout)
	r.Get("/document", s.getDocument)
	r.Put("/container", s.resizeContainer)
	r.Post("/compact", s.compact)

	r.Route("/items", func(r chi.Router) {
		r.Post("/", s.addItem)
		r.Route("/{id}", func(r chi.Router) {
			r.Put("/position", s.moveItem)
			r.Put("/size", s.resizeItem)
			r.Delete("/", s.removeItem)
			r.Post("/swap/{other}", s.swapItems)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("serving layout", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// observe logs every request and reports it to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", status, "duration", elapsed)
	})
}
