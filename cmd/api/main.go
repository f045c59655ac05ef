package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daes-settlement-engine/config"
	"daes-settlement-engine/internal/adapter/events/rabbitmq"
	httpHandler "daes-settlement-engine/internal/adapter/http/handler"
	pgStorage "daes-settlement-engine/internal/adapter/storage/postgres"
	redisStorage "daes-settlement-engine/internal/adapter/storage/redis"
	"daes-settlement-engine/internal/core/domain"
	"daes-settlement-engine/internal/core/ports"
	"daes-settlement-engine/internal/service"
	"daes-settlement-engine/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting DAES Settlement Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	settlementRepo := pgStorage.NewSettlementRepo(pool)
	auditRepo := pgStorage.NewAuditLogRepo(pool)
	bankRepo := pgStorage.NewBankConfigRepo(pool)
	operatorRepo := pgStorage.NewOperatorRepo(pool)
	ledger := pgStorage.NewTreasuryLedger(pool, log)

	// Seed bank destinations from config
	if err := seedBanks(ctx, cfg, bankRepo, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed bank destination configs")
	}

	// Per-instruction confirm lock
	confirmLock := redisStorage.NewConfirmLock(rdb, cfg.Settlement.LockWaitTimeout)

	// Event producer (RabbitMQ optional; nop fallback keeps the engine running)
	var events ports.EventPublisher
	if cfg.RabbitMQ.Enabled {
		producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQ, log)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ unavailable, settlement events disabled")
			events = rabbitmq.NewNopPublisher(log)
		} else {
			events = producer
			log.Info().Str("exchange", cfg.RabbitMQ.Exchange).Msg("RabbitMQ connected")
		}
	} else {
		events = rabbitmq.NewNopPublisher(log)
	}
	defer events.Close()

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	auditSvc := service.NewAuditService(auditRepo, log)
	authSvc := service.NewAuthService(operatorRepo, hashSvc, tokenSvc)
	settlementSvc := service.NewSettlementService(
		settlementRepo,
		bankRepo,
		ledger,
		confirmLock,
		auditSvc,
		events,
		cfg.Settlement.DefaultBank,
		cfg.Settlement.ConfirmLockTTL,
		log,
	)
	reportSvc := service.NewReportService(settlementRepo, auditSvc, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		SettlementSvc:  settlementSvc,
		ReportSvc:      reportSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedBanks upserts the configured bank destination table so instructions can
// resolve beneficiary details on the first request.
func seedBanks(ctx context.Context, cfg *config.Config, bankRepo ports.BankConfigRepository, log zerolog.Logger) error {
	for _, seed := range cfg.BankSeeds() {
		bank, err := domain.NewBankDestinationConfig(
			seed.BankCode,
			seed.BankName,
			seed.BeneficiaryName,
			seed.SwiftCode,
			seed.IBANs,
			seed.Active,
		)
		if err != nil {
			return fmt.Errorf("bank seed %q: %w", seed.BankCode, err)
		}
		if err := bankRepo.Save(ctx, bank); err != nil {
			return fmt.Errorf("bank seed %q: %w", seed.BankCode, err)
		}
		log.Info().Str("bank_code", bank.BankCode).Msg("Bank destination seeded")
	}
	return nil
}
