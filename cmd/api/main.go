// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the member HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Build the token codec and the security pipeline.
//  7. Wire the member module.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/memberauth/internal/api"
	"github.com/taibuivan/memberauth/internal/auth"
	"github.com/taibuivan/memberauth/internal/member"
	"github.com/taibuivan/memberauth/internal/platform/config"
	"github.com/taibuivan/memberauth/internal/platform/constants"
	"github.com/taibuivan/memberauth/internal/platform/middleware"
	"github.com/taibuivan/memberauth/internal/platform/migration"
	pgstore "github.com/taibuivan/memberauth/internal/platform/postgres"
	redisstore "github.com/taibuivan/memberauth/internal/platform/redis"
	"github.com/taibuivan/memberauth/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

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
		slog.Int("admin_emails", len(cfg.AdminEmails)),
	)

	// Startup gets a 30s deadline so misconfiguration fails instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.PoolSettings{}, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security ───────────────────────────────────────────────────────
	codec, err := sec.NewTokenCodec(cfg.JWTSecretKey, cfg.AccessTokenExpirationMinutes, cfg.RefreshTokenExpirationMinutes)
	must(log, err, "initialize token codec")

	resolver := sec.NewAuthorityResolver(cfg.AdminEmails)
	encoder := sec.NewPasswordEncoder(0)

	// Unknown usernames are compared against this hash so every login costs one bcrypt round.
	dummyHash, err := encoder.Encode("memberauth-timing-equalizer")
	must(log, err, "prepare dummy password hash")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	memberRepository := member.NewPostgresRepository(pool)
	memberService := member.NewService(memberRepository, encoder, resolver)
	memberHandler := member.NewHandler(memberService)

	details := auth.NewMemberDetailsService(memberRepository, encoder, dummyHash)

	security := api.Security{
		Login: auth.NewAuthenticationFilter(auth.AuthenticationFilterConfig{
			LoginPath:     cfg.LoginPath,
			Authenticator: details,
			Codec:         codec,
			Limiter:       auth.NewRedisAttemptLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow),
		}),
		Verification: auth.NewVerificationFilter(codec, resolver),
		Policy:       auth.DefaultPolicy(),
		EntryPoint:   auth.JSONEntryPoint{},
		AccessDenied: auth.JSONAccessDeniedHandler{},
		Refresh:      auth.NewRefreshHandler(codec, details),
	}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	runCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	ipLimiter := middleware.NewIPRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go ipLimiter.Run(runCtx)

	server := api.NewServer(cfg, log, ipLimiter, security, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Member:    memberHandler,
	})

	// ── Graceful Shutdown ─────────────────────────────────────────────────
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

	log.Info("shutting down server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
