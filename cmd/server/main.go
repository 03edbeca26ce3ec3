package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/khelbook/backoffice/internal/adapter/http"
	"github.com/khelbook/backoffice/internal/adapter/http/handler"
	"github.com/khelbook/backoffice/internal/adapter/http/middleware"
	postgresRepo "github.com/khelbook/backoffice/internal/adapter/repository/postgres"
	redisRepo "github.com/khelbook/backoffice/internal/adapter/repository/redis"
	"github.com/khelbook/backoffice/internal/infrastructure/auth"
	"github.com/khelbook/backoffice/internal/infrastructure/config"
	"github.com/khelbook/backoffice/internal/infrastructure/logger"
	"github.com/khelbook/backoffice/internal/infrastructure/metrics"
	"github.com/khelbook/backoffice/internal/infrastructure/postgres"
	"github.com/khelbook/backoffice/internal/infrastructure/redis"
	"github.com/khelbook/backoffice/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Run migrations
	if path := migrationsPath(); path != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, path, appLogger); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Metrics
	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	bankRepo := postgresRepo.NewBankRepository(pool)
	websiteRepo := postgresRepo.NewWebsiteRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	bankTxnRepo := postgresRepo.NewBankTxnRepository(pool)
	websiteTxnRepo := postgresRepo.NewWebsiteTxnRepository(pool)
	introducerTxnRepo := postgresRepo.NewIntroducerTxnRepository(pool)
	requestRepo := postgresRepo.NewRequestRepository(pool)
	archiveRepo := postgresRepo.NewArchiveRepository(pool)
	userIndexRepo := postgresRepo.NewUserIndexRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	// Initialize use cases
	balanceUC := usecase.NewBalanceUseCase(
		bankRepo, websiteRepo, userRepo,
		transactionRepo, bankTxnRepo, websiteTxnRepo, introducerTxnRepo,
		requestRepo, cache, appMetrics,
	)
	directoryUC := usecase.NewDirectoryUseCase(bankRepo, websiteRepo, userRepo, idGen, appLogger)
	ledgerUC := usecase.NewLedgerUseCase(
		txManager, bankRepo, websiteRepo, userRepo,
		transactionRepo, bankTxnRepo, websiteTxnRepo, introducerTxnRepo,
		userIndexRepo, idGen, balanceUC, appMetrics, appLogger,
	)
	approvalUC := usecase.NewApprovalUseCase(
		txManager, bankRepo, websiteRepo, userRepo,
		transactionRepo, bankTxnRepo, websiteTxnRepo, introducerTxnRepo,
		requestRepo, archiveRepo, userIndexRepo,
		idGen, retrier, balanceUC, appMetrics, appLogger,
	)

	// Initialize handlers
	routerCfg := httpAdapter.RouterConfig{
		DirectoryHandler: handler.NewDirectoryHandler(directoryUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		ApprovalHandler:  handler.NewApprovalHandler(approvalUC),
		BalanceHandler:   handler.NewBalanceHandler(balanceUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		Metrics:          middleware.NewMetricsMiddleware(appMetrics),
		Logging:          middleware.NewLoggingMiddleware(appLogger),
	}

	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		routerCfg.JWTManager = jwtManager
		routerCfg.AuthHandler = handler.NewAuthHandler(jwtManager)
	}

	router := httpAdapter.NewRouter(routerCfg)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}

// migrationsPath returns the migrations directory, or empty to skip
// migrations on startup.
func migrationsPath() string {
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		return path
	}
	if _, err := os.Stat("migrations"); err == nil {
		return "migrations"
	}
	return ""
}
