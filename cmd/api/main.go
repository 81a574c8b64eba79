// Package main is the entry point for the trip-discovery API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for goose
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/catalog"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/config"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/handler"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/identity"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/middleware"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/repo"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/internal/service"
	"github.com/ellenangelinvest-ux/story-trip-v2-sub000/migrations"
)

// maxRequestBody caps incoming request bodies. The largest expected payload is
// a full member profile, well under this.
const maxRequestBody = 1 << 20 // 1 MiB

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	// The catalog is built once at boot and never mutated afterwards.
	cat, err := catalog.Build()
	if err != nil {
		slog.Error("failed to build catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog built", "listings", len(cat.Listings()), "members", len(cat.Members()))

	// --- Profile storage --------------------------------------------------
	// Without DATABASE_URL the server still runs; profiles just don't survive
	// a restart.
	var profileRepo repo.ProfileRepo
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(context.Background()); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		if err := migrate(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		slog.Info("database connection established")
		profileRepo = repo.NewProfileRepo(pool)
	} else {
		slog.Warn("DATABASE_URL not set; profiles are stored in memory")
		profileRepo = repo.NewMemoryProfileRepo()
	}

	// --- Identity ---------------------------------------------------------
	var auth identity.Provider
	if cfg.AuthProvider == "local" {
		auth = identity.NewLocal()
	} else {
		slog.Warn("no identity backend configured; auth endpoints are degraded")
		auth = identity.Unconfigured{}
	}

	// --- Services & handlers ----------------------------------------------
	srvHandler := handler.NewServer(
		service.NewTripService(cat),
		service.NewMemberService(cat),
		service.NewLinkService(),
		service.NewProfileService(profileRepo),
		auth,
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxRequestBody))

	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies the embedded goose migrations. goose needs a database/sql
// handle, so a short-lived one is opened alongside the pgx pool.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
