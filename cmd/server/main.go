package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "fluxocaixa/internal/adapter/http"
	"fluxocaixa/internal/adapter/http/handler"
	postgresRepo "fluxocaixa/internal/adapter/repository/postgres"
	redisRepo "fluxocaixa/internal/adapter/repository/redis"
	"fluxocaixa/internal/infrastructure/config"
	"fluxocaixa/internal/infrastructure/logger"
	"fluxocaixa/internal/infrastructure/metrics"
	"fluxocaixa/internal/infrastructure/postgres"
	"fluxocaixa/internal/infrastructure/redis"
	"fluxocaixa/internal/usecase"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.DatabaseConnectTimeout)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Repositories and ports
	accountLedger := postgresRepo.NewAccountLedgerRepository(pool)
	invoiceLedger := postgresRepo.NewInvoiceLedgerRepository(pool)
	reportCache := redisRepo.NewReportCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	// Use cases
	reportUC := usecase.NewReportUseCase(
		accountLedger,
		invoiceLedger,
		reportCache,
		idGen,
		cfg.ReportCacheTTL,
		appLogger,
	)

	// Handlers
	reportMetrics := metrics.New()
	reportHandler := handler.NewReportHandler(reportUC, reportMetrics)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler: reportHandler,
		HealthHandler: healthHandler,
		Logger:        appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
