package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trottparts/garage-api/internal/bootstrap"
	"github.com/trottparts/garage-api/internal/catalog"
	"github.com/trottparts/garage-api/internal/config"
	"github.com/trottparts/garage-api/internal/database"
	"github.com/trottparts/garage-api/internal/garage"
	"github.com/trottparts/garage-api/internal/modification"
	"github.com/trottparts/garage-api/internal/points"
	"github.com/trottparts/garage-api/internal/server"
	"github.com/trottparts/garage-api/internal/sse"
	"github.com/trottparts/garage-api/internal/xp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	dbPool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		return err
	}

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	pointsService := points.NewService(repos.Points, resilientPublisher)
	catalogService := catalog.NewService(repos.Catalog, repos.Points, pointsService, resilientPublisher)
	garageService := garage.NewService(repos.Garage, pointsService)
	modificationService := modification.NewService(
		repos.Modification, repos.Garage, catalogService, pointsService, xp.NewCalculator(), resilientPublisher)

	sseHub := sse.NewHub()
	sseHub.Start()

	bootstrap.RegisterEventHandlers(eventBus, sseHub)

	if err := bootstrap.SyncCatalog(context.Background(), cfg.CatalogSeedPath, catalogService); err != nil {
		return err
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies,
		dbPool, pointsService, catalogService, garageService, modificationService, sseHub)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "port", cfg.Port)
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Hub:                sseHub,
		ResilientPublisher: resilientPublisher,
		DBPool:             dbPool,
	})

	return nil
}
