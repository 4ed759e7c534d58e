package main

import (
	"context"
	"log/slog"
	"os/signal"
	"sync/atomic"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/bookcat/internal/catalog"
	"git.home.luguber.info/inful/bookcat/internal/cataloguing"
	"git.home.luguber.info/inful/bookcat/internal/config"
	"git.home.luguber.info/inful/bookcat/internal/lexicon"
	"git.home.luguber.info/inful/bookcat/internal/metrics"
	"git.home.luguber.info/inful/bookcat/internal/server/httpserver"
)

// runServe starts the JSON API and blocks until SIGINT or SIGTERM.
func runServe(cfg *config.Config, initial *cataloguing.Cataloguer) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The handlers read the current snapshot per request; word list
	// reloads swap it without restarting the server.
	var current atomic.Pointer[cataloguing.Cataloguer]
	current.Store(initial)

	if cfg.Lexicon.Watch {
		watcher, err := lexicon.NewWatcher(lexiconFiles(cfg), func(lex *lexicon.Lexicon) {
			current.Store(cataloguing.NewWithOptions(lex, cataloguing.Options{
				DisableMcPrefix: cfg.Lexicon.DisableMcPrefix,
			}))
		})
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	store, err := catalog.NewSQLiteStore(cfg.Catalog.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	var registry *prom.Registry
	recorder := metrics.Recorder(metrics.NoopRecorder{})
	if cfg.Server.Metrics {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}
	store.WithRecorder(recorder)

	srv := httpserver.New(httpserver.Options{
		ListenAddr: cfg.Server.Listen,
		Cataloguer: current.Load,
		Store:      store,
		Recorder:   recorder,
		Registry:   registry,
	})

	slog.Info("Starting bookcat server", "addr", cfg.Server.Listen, "database", cfg.Catalog.Database)
	return srv.Start(ctx)
}
