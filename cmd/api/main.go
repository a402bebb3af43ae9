// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Fyyur HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/fyyur/internal/api"
	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/config"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/migration"
	pgstore "github.com/taibuivan/fyyur/internal/platform/postgres"
	redisstore "github.com/taibuivan/fyyur/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context: cancelled on shutdown, stops the rate limiter janitor.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.GlobalRequestTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckFlashStore: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	flashes := flash.NewStore(rdb)

	showRepository := show.NewPostgresRepository(pool)
	genreService := genre.NewService(genre.NewPostgresRepository(pool), log)
	venueService := venue.NewService(venue.NewPostgresRepository(pool), showRepository, genreService, log)
	artistService := artist.NewService(artist.NewPostgresRepository(pool), showRepository, genreService, log)
	showService := show.NewService(showRepository, artistService, venueService, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Genre:     genre.NewHandler(genreService),
		Venue:     venue.NewHandler(venueService, flashes),
		Artist:    artist.NewHandler(artistService, flashes),
		Show:      show.NewHandler(showService, flashes),
		Flash:     api.NewFlashHandler(flashes),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
