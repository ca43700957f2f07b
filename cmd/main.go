package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"affiliate-ledger/internal/adapter/http"
	"affiliate-ledger/internal/adapter/memory"
	"affiliate-ledger/internal/adapter/postgres"
	"affiliate-ledger/internal/adapter/usecase"
	"affiliate-ledger/internal/config"
	"affiliate-ledger/internal/config/configs"
	"affiliate-ledger/internal/core/fraud"
	"affiliate-ledger/internal/core/port"
	"affiliate-ledger/internal/db"
)

// main is the entry point of the affiliate ledger. It loads configuration,
// selects the storage driver, optionally runs database migrations and the
// demo seed, then starts the HTTP server. On receiving a termination signal
// it gracefully shuts down the server.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	classifier, err := fraud.NewClassifier(cfg.Fraud.Rules())
	if err != nil {
		return fmt.Errorf("fraud rules: %w", err)
	}
	settings, err := cfg.Attribution.Settings()
	if err != nil {
		return fmt.Errorf("attribution settings: %w", err)
	}

	svc := usecase.NewAffiliateUseCase(store, logger, usecase.Options{
		DefaultCurrency:       cfg.Ledger.DefaultCurrency,
		DefaultCommissionRate: decimal.NewNullDecimal(cfg.Ledger.DefaultCommissionRate),
		Settings:              settings,
		Classifier:            classifier,
	})
	if err = svc.LoadSettings(ctx); err != nil {
		return fmt.Errorf("load attribution settings: %w", err)
	}

	if cfg.SeedDemo {
		if err = db.Seed(ctx, svc); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("demo data seeded", slog.Int("affiliates", len(db.DemoAffiliates)))
	}

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.Store, func(), error) {
	if cfg.Storage.Driver == configs.StorageMemory {
		logger.Warn("using in-memory storage; ledger state is lost on restart")
		return memory.NewStore(nil), func() {}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewStore(pool), pool.Close, nil
}
