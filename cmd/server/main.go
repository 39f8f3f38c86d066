// Package main is the entry point for the jobtrack collection service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"jobtrack/internal/config"
	"jobtrack/internal/logger"
	"jobtrack/internal/observability"
	"jobtrack/internal/server"
	"jobtrack/internal/store/postgres"
)

func main() {
	migrateFlag := flag.Bool("migrate", false, "Run database migrations before starting")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if *migrateFlag {
		log.Info("running database migrations")
		if err := postgres.Migrate(store.DB()); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations completed")
	}

	shutdownTracer, err := observability.InitTracer(ctx, "jobtrack-collection", cfg.OTELEndpoint)
	if err != nil {
		log.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("failed to shutdown tracer", "error", err)
		}
	}()

	metricsHandler, shutdownMetrics, err := observability.InitMetrics()
	if err != nil {
		log.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownMetrics(context.Background()); err != nil {
			log.Warn("failed to shutdown metrics", "error", err)
		}
	}()

	// Observable gauge that queries the DB only when scraped.
	meter := otel.Meter("jobtrack-collection")
	_, err = meter.Int64ObservableGauge("jobtrack.records.count",
		metric.WithDescription("Current number of job records in the collection"),
		metric.WithInt64Callback(func(ctx context.Context, obs metric.Int64Observer) error {
			count, err := store.CountJobs(ctx)
			if err != nil {
				log.Warn("failed to count records", "error", err)
				return nil // Don't fail the scrape on a DB error
			}
			obs.Observe(count)
			return nil
		}),
	)
	if err != nil {
		log.Warn("failed to register record count metric", "error", err)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := server.New(addr, store, log, server.Options{
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
		MetricsHandler:     metricsHandler,
	})

	go func() {
		log.Info("collection service starting", "addr", addr)
		if err := srv.Run(ctx); err != nil {
			log.Error("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down collection service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server exited properly")
}
