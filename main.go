package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"windcast/internal/config"
	"windcast/internal/fetchers"
	"windcast/internal/forecast"
	"windcast/internal/reports"
	"windcast/internal/scheduler"
	"windcast/internal/server"
	"windcast/internal/spots"
	"windcast/internal/storage"
	"windcast/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("Starting wind forecast service")

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	mode := storage.DeploymentLocal
	if cfg.GCSBucket != "" {
		mode = storage.DeploymentGCS
	}

	storageClient, err := storage.NewStorageClient(ctx, mode, cfg.LocalReportsDir, cfg.GCSBucket)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storageClient.Close()

	registry := spots.NewRegistry()
	seriesStore := store.NewSeriesStore()

	fetcher := fetchers.NewWindFetcher(fetchers.FetcherConfig{
		ModelURL:      cfg.ModelURL,
		Token:         cfg.WFToken,
		ModelID:       cfg.ModelID,
		ForecastDays:  cfg.ForecastDays,
		IntervalHours: cfg.IntervalHours,
		UnitsWind:     cfg.UnitsWind,
		UnitsTemp:     cfg.UnitsTemp,
		UnitsDistance: cfg.UnitsDistance,
		UnitsPrecip:   cfg.UnitsPrecip,
		Timeout:       cfg.FetchTimeout,
	}, logger)

	service := forecast.NewService(fetcher, registry, seriesStore, logger)
	generator := reports.NewReportGenerator(storageClient, logger)

	srv := server.NewServer(cfg, service, generator, storageClient, registry, logger)

	// Warm the store so the first request does not have to wait for the
	// next scheduler tick.
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout*4)
		defer cancel()
		if err := service.RefreshAll(warmCtx, cfg.Locations()); err != nil {
			logger.Warn("Initial refresh incomplete", zap.Error(err))
		}
	}()

	sched := scheduler.New(cfg.Locations(), cfg.PollInterval, cfg.FetchTimeout, service, logger)
	if err := sched.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Report generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server listening", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
