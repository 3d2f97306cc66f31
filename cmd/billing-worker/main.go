package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/facturio/facturio-api/internal/config"
	"github.com/facturio/facturio-api/internal/db"
	"github.com/facturio/facturio-api/internal/logger"
	"github.com/facturio/facturio-api/internal/server"
	"github.com/facturio/facturio-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer func() {
		_ = logger.Sync()
	}()
	logger.Info("Starting billing worker", zap.String("stage", cfg.Stage))

	ctx := context.Background()

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = cfg.Database.MaxConns
	poolConfig.MinConns = cfg.Database.MinConns
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = time.Minute * 15

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer connPool.Close()

	// The database may still be coming up when the worker starts; retry the
	// initial ping with exponential backoff before giving up.
	pingOp := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return connPool.Ping(pingCtx)
	}
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.MaxElapsedTime = 2 * time.Minute
	if err := backoff.Retry(pingOp, expBackoff); err != nil {
		logger.Fatal("Database unreachable", zap.Error(err))
	}
	logger.Info("Database connection established")

	dbQueries := db.New(connPool)
	txRunner := db.NewPoolTxRunner(connPool)
	clock := services.SystemClock{}

	// --- Service Wiring ---
	var emailService *services.EmailService
	if cfg.Resend.APIKey != "" {
		emailService = services.NewEmailService(cfg.Resend.APIKey, cfg.Resend.FromEmail, cfg.Resend.FromName, logger.Log)
	} else {
		logger.Warn("RESEND_API_KEY not set, invoice emails disabled")
	}

	maintenanceService := services.NewMaintenanceService(dbQueries, logger.Log)
	recurringService := services.NewRecurringInvoiceService(
		dbQueries,
		txRunner,
		services.NewInvoiceNumberAllocator(),
		emailService,
		clock,
		logger.Log,
	)

	scheduler := services.NewBillingScheduler(
		maintenanceService,
		recurringService,
		clock,
		cfg.Schedule.MaintenanceAt,
		cfg.Schedule.GenerationAt,
		logger.Log,
	)
	scheduler.Start()

	// --- Admin Server ---
	adminServer := server.New(scheduler, recurringService, cfg.Stage, cfg.Admin.Port, logger.Log)
	serverErrCh := make(chan error, 1)
	go func() {
		if err := adminServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	// --- Shutdown Handling ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serverErrCh:
		logger.Error("Admin server failed", zap.Error(err))
	}

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Admin server shutdown failed", zap.Error(err))
	}

	logger.Info("Billing worker stopped")
}
