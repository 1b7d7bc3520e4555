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

	"github.com/RaikyD/vila-sales-api/internal/application"
	"github.com/RaikyD/vila-sales-api/internal/auth"
	"github.com/RaikyD/vila-sales-api/internal/config"
	"github.com/RaikyD/vila-sales-api/internal/kafka"
	"github.com/RaikyD/vila-sales-api/internal/logger"
	"github.com/RaikyD/vila-sales-api/internal/presentation"
	"github.com/RaikyD/vila-sales-api/internal/repository"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger level comes from config, so report this one directly
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		os.Exit(1)
	}
	logger.Init(cfg.LOG_LEVEL)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("service stopped", "err", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// DB pool
	pool, err := repository.NewPool(ctx, cfg.DATABASE_URL, cfg.DB_TLS_SKIP_VERIFY)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("db connected")

	proj, err := repository.NewProjection(cfg.SALES_TABLE, cfg.SALES_EXTENDED_COLUMNS)
	if err != nil {
		return err
	}

	// Query audit, off unless brokers are configured
	var auditor application.Auditor
	if cfg.AuditEnabled() {
		prod := kafka.NewProducer(cfg.KAFKA_BROKERS, cfg.KAFKA_TOPIC)
		defer func() {
			if err := prod.Close(); err != nil {
				logger.Warn("kafka producer close failed", "err", err)
			}
		}()
		auditor = prod
		logger.Info("query audit enabled", "brokers", cfg.KAFKA_BROKERS, "topic", cfg.KAFKA_TOPIC)
	}

	// Wiring
	repo := repository.NewSalesRepository(pool, proj)
	svc := application.NewSalesService(repo, auditor)
	router := presentation.NewRouter(svc, auth.StaticKey(auth.HeaderAPIKey, cfg.API_KEY))

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP_PORT,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting http", "addr", srv.Addr, "table", proj.Table(), "extended_columns", proj.Extended)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server crashed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
