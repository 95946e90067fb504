// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the configured store (memory, PostgreSQL + migrations, or SQLite).
//  4. Connect to Redis when configured (existence cache).
//  5. Load token signing keys when configured.
//  6. Wire services and HTTP handlers.
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
	"time"

	"github.com/taibuivan/catalog/internal/api"
	"github.com/taibuivan/catalog/internal/catalog/account"
	"github.com/taibuivan/catalog/internal/catalog/author"
	"github.com/taibuivan/catalog/internal/catalog/book"
	"github.com/taibuivan/catalog/internal/catalog/facade"
	"github.com/taibuivan/catalog/internal/catalog/game"
	"github.com/taibuivan/catalog/internal/catalog/genre"
	"github.com/taibuivan/catalog/internal/catalog/movie"
	"github.com/taibuivan/catalog/internal/catalog/music"
	"github.com/taibuivan/catalog/internal/catalog/picture"
	"github.com/taibuivan/catalog/internal/catalog/register"
	"github.com/taibuivan/catalog/internal/catalog/show"
	"github.com/taibuivan/catalog/internal/platform/audit"
	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/duplicate"
	"github.com/taibuivan/catalog/internal/platform/existence"
	"github.com/taibuivan/catalog/internal/platform/identity"
	"github.com/taibuivan/catalog/internal/platform/metrics"
	"github.com/taibuivan/catalog/internal/platform/middleware"
	"github.com/taibuivan/catalog/internal/platform/migration"
	pgstore "github.com/taibuivan/catalog/internal/platform/postgres"
	redisstore "github.com/taibuivan/catalog/internal/platform/redis"
	"github.com/taibuivan/catalog/internal/platform/sec"
	sqlitestore "github.com/taibuivan/catalog/internal/platform/sqlite"
	"github.com/taibuivan/catalog/internal/platform/store"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Store ──────────────────────────────────────────────────────────
	var (
		backend  store.Backend
		sequence identity.Sequence
		checks   []api.HealthCheck
	)

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, cfg.DatabaseMaxConns, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		backend = store.NewPostgres(pool)
		sequence = identity.NewPostgresSequence(pool, schema.NodeSequence)
		checks = append(checks, api.HealthCheck{Name: "postgres", Check: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		}})

	case config.DriverSQLite:
		db, err := sqlitestore.Open(startupCtx, cfg.SQLitePath, log)
		must(log, err, "open sqlite")
		defer func() {
			log.Info("closing_sqlite_database")
			if cerr := db.Close(); cerr != nil {
				log.Error("sqlite_close_error", slog.Any("error", cerr))
			}
		}()

		backend = store.NewSQLite(db)
		sequence = identity.NewSQLiteSequence(db, schema.NodeSequence)
		checks = append(checks, api.HealthCheck{Name: "sqlite", Check: func(ctx context.Context) error {
			return sqlitestore.Ping(ctx, db)
		}})

	default:
		log.Warn("memory_store_in_use", slog.String("hint", "data is lost on restart"))
		backend = store.NewMemory()
		sequence = identity.NewMemorySequence(1)
	}

	genres := genre.NewRepository(backend)
	pictures := picture.NewRepository(backend)
	authors := author.NewRepository(backend)

	// ── 4. Existence Resolution ───────────────────────────────────────────
	registers := register.Default()
	registry := existence.NewRegistry().
		Register(existence.KindGenre, genres.Checker()).
		Register(existence.KindPicture, pictures.Checker()).
		Register(existence.KindAuthor, authors.Checker()).
		Register(existence.KindRegister, registers.Exists)

	var (
		resolver  existence.Resolver  = registry
		forgetter existence.Forgetter = existence.NopForgetter{}
	)

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, cfg.RedisPoolSize, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		cached := existence.NewCached(registry, rdb, cfg.ExistenceCacheTTL, log)
		resolver, forgetter = cached, cached
		checks = append(checks, api.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}})
	}

	// ── 5. Token Service ──────────────────────────────────────────────────
	var (
		verifier middleware.TokenVerifier
		tokens   account.TokenProvider
	)

	if cfg.HasTokens() {
		tokenService, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
		must(log, err, "initialize jwt service")
		verifier, tokens = tokenService, tokenService
	} else {
		log.Warn("token_signing_disabled", slog.String("hint", "requests act as the anonymous actor"))
	}

	// ── 6. Catalog Wiring ─────────────────────────────────────────────────
	collector := metrics.New()

	links := facade.NewLinks()
	deps := facade.Deps{
		Resolver:  resolver,
		Forgetter: forgetter,
		Links:     links,
		Engine:    duplicate.NewEngine(sequence, resolver, collector),
		Stamper:   audit.NewStamper(time.Now),
		Logger:    log,
	}

	movies := movie.NewService(movie.NewRepository(backend), deps)
	shows := show.NewService(show.NewRepository(backend), deps)
	books := book.NewService(book.NewRepository(backend), deps)

	links.Register(movies, existence.KindGenre, existence.KindPicture)
	links.Register(shows, existence.KindGenre, existence.KindPicture)
	links.Register(books, existence.KindAuthor)

	liveness, readiness := api.NewHealthHandlers(checks, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   collector,

		Account:  account.NewHandler(account.NewService(account.NewRepository(backend), deps, tokens)),
		Register: register.NewHandler(registers),

		Genre:   genre.NewHandler(genre.NewService(genres, deps)),
		Picture: picture.NewHandler(picture.NewService(pictures, deps)),
		Author:  author.NewHandler(author.NewService(authors, deps)),

		Movie: movie.NewHandler(movies),
		Show:  show.NewHandler(shows),
		Book:  book.NewHandler(books),
		Game:  game.NewHandler(game.NewService(game.NewRepository(backend), deps)),
		Music: music.NewHandler(music.NewService(music.NewRepository(backend), deps)),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
