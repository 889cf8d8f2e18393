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

	"go.uber.org/zap"

	apiHttp "github.com/referendum-atlas/backend/internal/api/http"
	"github.com/referendum-atlas/backend/internal/config"
	"github.com/referendum-atlas/backend/internal/dataset"
	"github.com/referendum-atlas/backend/internal/db"
	"github.com/referendum-atlas/backend/internal/render"
	"github.com/referendum-atlas/backend/internal/repository"
	"github.com/referendum-atlas/backend/internal/server"
	"github.com/referendum-atlas/backend/internal/service"
	"github.com/referendum-atlas/backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting referendum atlas", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx := context.Background()

	// Results archive (optional)
	var repos *repository.Repositories
	if cfg.Store.Enabled {
		archive, err := db.New(cfg.Store)
		if err != nil {
			logger.Error("archive open failed", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := archive.Close(); err != nil {
				logger.Error("archive close failed", zap.Error(err))
			}
		}()

		if err := db.Bootstrap(ctx, archive); err != nil {
			logger.Error("archive bootstrap failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("results archive ready", zap.String("path", cfg.Store.Path))

		repos = repository.NewRepositories(archive)
	}

	// Pipeline: load, merge, aggregate, archive
	datasets := dataset.NewLoader(cfg.Data)
	services := service.NewServices(service.Deps{
		Datasets: datasets,
		Repos:    repos,
	})

	report, err := services.Referendum.BuildReport(ctx)
	if err != nil {
		logger.Error("pipeline failed", zap.Error(err))
		os.Exit(1)
	}

	if err := render.WriteTable(os.Stdout, report.Results); err != nil {
		logger.Error("print table failed", zap.Error(err))
		os.Exit(1)
	}

	// Choropleth
	shapes, err := datasets.Shapes()
	if err != nil {
		logger.Error("load region shapes failed", zap.Error(err))
		os.Exit(1)
	}

	regionMap, err := render.NewRenderer(cfg.Render).RegionMap(shapes, report.Results)
	if err != nil {
		logger.Error("render map failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("map rendered", zap.Int("features", len(regionMap.Features)))

	// Viewer
	handlers := apiHttp.NewHandlers(services, cfg, report, regionMap)

	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
