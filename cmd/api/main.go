// Copyright (c) 2026 Chaldea. All rights reserved.

// Command api is the entry point for the Chaldea HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/velkorra/chaldea/internal/api"
	"github.com/velkorra/chaldea/internal/core/contract"
	"github.com/velkorra/chaldea/internal/core/master"
	"github.com/velkorra/chaldea/internal/core/servant"
	"github.com/velkorra/chaldea/internal/core/skill"
	"github.com/velkorra/chaldea/internal/media"
	"github.com/velkorra/chaldea/internal/platform/config"
	"github.com/velkorra/chaldea/internal/platform/constants"
	"github.com/velkorra/chaldea/internal/platform/migration"
	pgstore "github.com/velkorra/chaldea/internal/platform/postgres"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	// LOG_PATH redirects the stream to a file; stdout otherwise. It is read
	// straight from the environment because the logger must exist before
	// config.Load can report its own failures.
	logSink, closeSink, err := openLogSink(os.Getenv("LOG_PATH"))
	if err != nil {
		slog.Error("cannot open log file", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeSink()

	rawLog := slog.New(slog.NewJSONHandler(logSink, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(logSink, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Media store ────────────────────────────────────────────────────
	mediaStore := media.NewStore(cfg.MediaPath)
	must(log, mediaStore.Check(), "prepare media root")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckMedia: mediaStore.Check,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	servantRepository := servant.NewPostgresRepository(pool)
	reportRepository := servant.NewPostgresReportRepository(pool)
	servantService := servant.NewService(servantRepository, reportRepository, log)
	servantHandler := servant.NewHandler(servantService, mediaStore)

	masterRepository := master.NewPostgresRepository(pool)
	masterService := master.NewService(masterRepository, log)
	masterHandler := master.NewHandler(masterService)

	contractRepository := contract.NewPostgresRepository(pool)
	contractService := contract.NewService(contractRepository, log)
	contractHandler := contract.NewHandler(contractService)

	skillRepository := skill.NewPostgresRepository(pool)
	skillService := skill.NewService(skillRepository, log)
	skillHandler := skill.NewHandler(skillService, mediaStore)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Servant:   servantHandler,
		Master:    masterHandler,
		Contract:  contractHandler,
		Skill:     skillHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// openLogSink returns the writer slog should emit to. An empty path means
// stdout and a no-op closer.
func openLogSink(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { file.Close() }, nil
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
