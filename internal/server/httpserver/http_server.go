// Package httpserver exposes the cataloguing operations and the
// catalogue store over a small JSON API.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/bookcat/internal/catalog"
	"git.home.luguber.info/inful/bookcat/internal/cataloguing"
	cerrors "git.home.luguber.info/inful/bookcat/internal/errors"
	"git.home.luguber.info/inful/bookcat/internal/metrics"
	"git.home.luguber.info/inful/bookcat/internal/server/middleware"
)

// CataloguerFunc returns the Cataloguer to use for a request. Serve
// mode backs this with an atomically swapped snapshot so word list
// reloads take effect without restarting.
type CataloguerFunc func() *cataloguing.Cataloguer

// Options configures the server.
type Options struct {
	ListenAddr string
	Cataloguer CataloguerFunc
	Store      catalog.Store
	Recorder   metrics.Recorder
	// Registry, when set, enables the /metrics endpoint.
	Registry *prom.Registry
}

// Server serves the bookcat JSON API.
type Server struct {
	opts         Options
	httpServer   *http.Server
	errorAdapter *cerrors.HTTPErrorAdapter
}

// New constructs a Server. The store may be nil, in which case the
// book endpoints respond 404.
func New(opts Options) *Server {
	if opts.Cataloguer == nil {
		opts.Cataloguer = cataloguing.Default
	}
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.ListenAddr == "" {
		opts.ListenAddr = ":8080"
	}

	s := &Server{
		opts:         opts,
		errorAdapter: cerrors.NewHTTPErrorAdapter(slog.Default()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/v1/capitalize/title", s.handleCapitalize("title"))
	mux.HandleFunc("POST /api/v1/capitalize/author", s.handleCapitalize("author"))
	mux.HandleFunc("POST /api/v1/sortable/title", s.handleSortable("title"))
	mux.HandleFunc("POST /api/v1/sortable/author", s.handleSortable("author"))
	mux.HandleFunc("POST /api/v1/books", s.handleAddBook)
	mux.HandleFunc("GET /api/v1/books", s.handleListBooks)
	mux.HandleFunc("DELETE /api/v1/books/{id}", s.handleDeleteBook)
	if opts.Registry != nil {
		mux.Handle("GET /metrics", metrics.HTTPHandler(opts.Registry))
	}

	s.httpServer = &http.Server{
		Addr:              opts.ListenAddr,
		Handler:           middleware.Chain(slog.Default())(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the full handler chain, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", s.opts.ListenAddr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return cerrors.Wrap(err, cerrors.CategoryServer, cerrors.SeverityFatal, "http server failed")
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return cerrors.Wrap(err, cerrors.CategoryServer, cerrors.SeverityError, "http server shutdown")
	}
	return nil
}
