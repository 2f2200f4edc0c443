// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Salesdesk HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when REDIS_URL is set.
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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/taibuivan/salesdesk/internal/api"
	"github.com/taibuivan/salesdesk/internal/platform/config"
	"github.com/taibuivan/salesdesk/internal/platform/constants"
	"github.com/taibuivan/salesdesk/internal/platform/metrics"
	"github.com/taibuivan/salesdesk/internal/platform/middleware"
	"github.com/taibuivan/salesdesk/internal/platform/migration"
	pgstore "github.com/taibuivan/salesdesk/internal/platform/postgres"
	redisstore "github.com/taibuivan/salesdesk/internal/platform/redis"
	"github.com/taibuivan/salesdesk/internal/platform/sec"
	"github.com/taibuivan/salesdesk/internal/sales/customer"
	"github.com/taibuivan/salesdesk/internal/sales/order"
	"github.com/taibuivan/salesdesk/internal/sales/product"
	"github.com/taibuivan/salesdesk/internal/users/auth"
)

func main() {
	// Monetary values leave the API as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("token_revocation", cfg.RevocationEnabled()),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives until shutdown; bounds background janitors.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, cfg.DBMaxConns, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	// Interfaces stay untyped nil when the deny-list is disabled.
	var (
		rdb           *goredis.Client
		revokedTokens auth.RevokedTokenRepository
		revocations   middleware.RevocationChecker
		checkCache    func(context.Context) error
	)
	if cfg.RevocationEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		store := auth.NewRevokedTokenRepository(rdb)
		revokedTokens, revocations = store, store
		checkCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security & Telemetry ───────────────────────────────────────────
	tokens, err := sec.NewTokenService([]byte(cfg.JWTSecret), constants.AuthIssuer, cfg.JWTTTL)
	must(log, err, "initialize token service")

	hasher := sec.NewPasswordHasher(sec.DefaultArgon2Params)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    checkCache,
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authService, err := auth.NewService(auth.NewUserRepository(pool), revokedTokens, hasher, tokens, collector, log)
	must(log, err, "initialize auth service")

	customerService := customer.NewService(customer.NewPostgresRepository(pool), log)
	productService := product.NewService(product.NewPostgresRepository(pool), log)
	orderService := order.NewService(
		order.NewPostgresRepository(pool),
		order.NewPricer(productService),
		customerService,
		collector,
		log,
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(appCtx, cfg, log,
		api.Guards{Verifier: tokens, Revocations: revocations, Observer: collector},
		api.Handlers{
			Liveness:  liveness,
			Readiness: readiness,
			Metrics:   metrics.Handler(registry),
			Auth:      auth.NewHandler(authService),
			Customer:  customer.NewHandler(customerService),
			Product:   product.NewHandler(productService),
			Order:     order.NewHandler(orderService),
		},
	)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the process-wide JSON logger and installs it as default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
