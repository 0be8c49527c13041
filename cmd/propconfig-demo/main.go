// Command propconfig-demo exposes the propconfig library over a single
// HTTP endpoint: decode a property map, apply defaults, validate, and
// report both outcomes in one response.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-co-op/gocron/v2"

	"github.com/fieldguard/propconfig/internal/logging"
)

func main() {
	cfg := DefaultConfig
	if err := Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.LogConfig)
	slog.SetDefault(logger)

	registry, err := buildRegistry()
	if err != nil {
		logger.Error("failed to build property registry", "error", err)
		os.Exit(1)
	}

	a, err := newAPI(logger, registry, cfg.CacheMaxSize, cfg.CacheTTL)
	if err != nil {
		logger.Error("failed to build API", "error", err)
		os.Exit(1)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		logger.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}
	if _, err := scheduler.NewJob(
		gocron.DurationJob(cfg.EvictionEvery),
		gocron.NewTask(func() {
			before := a.cache.CacheSize()
			a.cache.ClearCache()
			logger.Debug("cache eviction sweep", "evicted", before)
		}),
	); err != nil {
		logger.Error("failed to schedule cache eviction", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Shutdown()

	router := chi.NewRouter()
	router.Use(middleware.RequestLogger(&logging.SlogFormatter{Logger: logger}))
	router.Use(middleware.Recoverer)
	router.Post("/validate", a.handleValidate)

	server := &http.Server{Addr: cfg.ListenAddr, Handler: router}

	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
