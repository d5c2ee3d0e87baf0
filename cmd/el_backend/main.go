package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/papillon-eventos/event_ledger_app/internal/core/ports/repositories"
	"github.com/papillon-eventos/event_ledger_app/internal/core/services"
	"github.com/papillon-eventos/event_ledger_app/internal/handlers"
	"github.com/papillon-eventos/event_ledger_app/internal/middleware"
	"github.com/papillon-eventos/event_ledger_app/internal/repositories/database/memory"
	"github.com/papillon-eventos/event_ledger_app/internal/repositories/database/pgsql"
	"github.com/papillon-eventos/event_ledger_app/internal/store"
	"github.com/papillon-eventos/event_ledger_app/pkg/config"
	"github.com/papillon-eventos/event_ledger_app/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var repos portsrepo.RepositoryProvider
	switch cfg.BackendMode {
	case config.BackendPgsql:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	case config.BackendMemory:
		logger.Info("Running with in-memory backend.")
		repos = memory.NewRepositoryProvider()
	}

	// Local snapshot and engine services
	st := store.New()
	svcContainer := services.NewServiceContainer(st, repos)

	// Restore the offline snapshot before touching the backend so a dead
	// backend still leaves us with the last known state.
	if cfg.SnapshotPath != "" {
		if err := svcContainer.Sync.LoadSnapshot(cfg.SnapshotPath); err != nil {
			logger.Warn("Could not load snapshot file", slog.String("path", cfg.SnapshotPath), slog.String("error", err.Error()))
		} else {
			logger.Info("Snapshot restored", slog.String("path", cfg.SnapshotPath))
		}
	}

	switch cfg.BackendMode {
	case config.BackendPgsql:
		if err := svcContainer.Sync.Hydrate(ctx); err != nil {
			logger.Warn("Initial hydration failed, continuing with local snapshot", slog.String("error", err.Error()))
		}
	case config.BackendMemory:
		// Disconnected mode has no remote state to hydrate from. The blank
		// in-memory backend mirrors the restored snapshot instead, so that
		// write-through updates find their targets.
		if err := svcContainer.Sync.SeedBackend(ctx); err != nil {
			logger.Error("Failed to seed in-memory backend from snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	ipLimiter := limiter.New(limitermem.NewStore(), rate)
	r.Use(middleware.RateLimit(ipLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer, st)

	// Persist the snapshot on shutdown so disconnected restarts resume
	// from the latest state.
	defer func() {
		if cfg.SnapshotPath == "" {
			return
		}
		if err := svcContainer.Sync.SaveSnapshot(cfg.SnapshotPath); err != nil {
			logger.Error("Failed to save snapshot", slog.String("path", cfg.SnapshotPath), slog.String("error", err.Error()))
		}
	}()

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.BackendMode))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
