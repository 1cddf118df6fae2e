package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/capsule-retail/inventory-dashboard/internal/config"
	"github.com/capsule-retail/inventory-dashboard/internal/database"
	"github.com/capsule-retail/inventory-dashboard/internal/server"
	"github.com/capsule-retail/inventory-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if err := run(ctx, cfg); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Component("main")
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	if err := database.Seed(ctx, db, database.SeedOptions{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		AdminEmail:    cfg.Auth.AdminEmail,
		BcryptCost:    cfg.Auth.BcryptCost,
		SampleData:    cfg.Seed.SampleData,
	}); err != nil {
		return err
	}

	r, err := server.NewRouter(cfg, db)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("db_driver", cfg.DB.Driver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
