// Package main is the entry point for the holidays API server.
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
	"time"

	"github.com/zapponejosh/holidays-api/internal/api"
	"github.com/zapponejosh/holidays-api/internal/config"
	"github.com/zapponejosh/holidays-api/internal/countries"
	"github.com/zapponejosh/holidays-api/internal/database"
	"github.com/zapponejosh/holidays-api/internal/logger"
	"github.com/zapponejosh/holidays-api/internal/scheduler"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting holidays API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	registry := countries.Default()
	if cfg.OverlayPath != "" {
		extras, err := config.LoadOverlay(cfg.OverlayPath)
		if err != nil {
			return err
		}
		if registry, err = registry.WithExtras(extras); err != nil {
			return err
		}
		log.Info("country overlay loaded",
			slog.String("path", cfg.OverlayPath),
			slog.Int("countries", len(extras)),
		)
	}

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations complete", slog.Int("applied", migrated))

	sched, err := scheduler.New(registry, db, scheduler.Options{
		Spec:       cfg.RefreshCron,
		Countries:  cfg.SnapshotCountries,
		YearsAhead: cfg.SnapshotYearsAhead,
		Language:   cfg.DefaultLanguage,
	}, log)
	if err != nil {
		return err
	}
	sched.Start()

	handlers := api.NewHandlers(db, registry, cfg, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("holidays API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown server: %w", err))
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Info("holidays API stopped")
	return nil
}
