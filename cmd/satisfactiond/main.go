package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alexassuncaodados/olist-satisfaction-service/internal/application/usecase"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/domain/service"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/infrastructure/artifact"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/infrastructure/config"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/infrastructure/messaging"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/infrastructure/postgres"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/observability"
	grpcpresentation "github.com/alexassuncaodados/olist-satisfaction-service/internal/presentation/grpc"
	"github.com/alexassuncaodados/olist-satisfaction-service/internal/presentation/rest"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: "json",
	})

	logger.Info("starting satisfaction-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"model_dir", cfg.ModelDir,
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: "satisfaction-service",
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer shutdownTracer(ctx)
	}

	// Initialize metrics.
	_, metrics, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: "satisfaction-service",
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}

	// Database connection and migrations.
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pgxpool.New(dbCtx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(dbCtx); err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Wire infrastructure adapters. The artifact provider loads lazily on
	// the first prediction or health request.
	artifacts := artifact.NewProvider(cfg.ModelDir, logger)
	predictionRepo := postgres.NewPredictionRepository(pool)
	eventPublisher := messaging.NewKafkaPublisher(
		[]string{cfg.KafkaBroker},
		"satisfaction.events",
		logger,
	)
	defer eventPublisher.Close()

	// Wire the domain pipeline and use cases.
	pipeline := service.NewPipeline()

	predictOrderUC := usecase.NewPredictOrder(artifacts, pipeline, predictionRepo, eventPublisher, metrics)
	predictBatchUC := usecase.NewPredictBatch(artifacts, pipeline, metrics)
	getPredictionUC := usecase.NewGetPrediction(predictionRepo)

	// gRPC server.
	grpcHandler := grpcpresentation.NewSatisfactionServiceHandler(predictOrderUC, getPredictionUC, logger)
	grpcServer := grpcpresentation.NewServer(grpcHandler, cfg.GRPCAddress(), logger)

	// HTTP server.
	restHandler := rest.NewHandler(predictOrderUC, predictBatchUC, getPredictionUC, logger)
	healthHandler := rest.NewHealthHandler(artifacts, logger)

	httpMux := http.NewServeMux()
	restHandler.RegisterRoutes(httpMux)
	healthHandler.RegisterRoutes(httpMux)
	if metricsHandler != nil {
		httpMux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      httpMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Start(); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	logger.Info("satisfaction-service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
	)

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	logger.Info("shutting down satisfaction-service")

	grpcServer.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("satisfaction-service stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
