package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/0jonjo/tripkit/internal/api"
	"github.com/0jonjo/tripkit/internal/cache"
	"github.com/0jonjo/tripkit/internal/config"
	"github.com/0jonjo/tripkit/internal/itinerary"
	"github.com/0jonjo/tripkit/internal/observability"
	"github.com/0jonjo/tripkit/internal/toolkit"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without REDIS_URL the server runs cacheless.
	var searchCache *cache.SearchCache
	var pinger api.CachePinger
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = client.Close() }()
		searchCache = cache.NewSearchCache(client)
		pinger = searchCache
		log.Info("search cache enabled")
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	gen := itinerary.NewGenerator(nil)
	registry := toolkit.NewTravelRegistry(gen, log, metrics)

	// Assign through a concrete nil check so a disabled cache stays a
	// nil interface, not a non-nil interface holding a nil pointer.
	var cacheDep api.SearchCache
	if searchCache != nil {
		cacheDep = searchCache
	}
	handlers := api.NewHandlers(gen, registry, cacheDep, log)
	router := api.NewRouter(handlers, cfg.BearerToken, cfg.RateLimitRPM, pinger, promhttp.Handler(), log)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server starting", "addr", cfg.HTTPAddr, "tools", registry.Names())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("listening: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server shut down cleanly")
	return nil
}
