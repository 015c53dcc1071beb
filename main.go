package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/M1ts0sGitHub/Earthquakes/internal/catalog"
	"github.com/M1ts0sGitHub/Earthquakes/internal/config"
	"github.com/M1ts0sGitHub/Earthquakes/internal/fetchers"
	"github.com/M1ts0sGitHub/Earthquakes/internal/logger"
	"github.com/M1ts0sGitHub/Earthquakes/internal/observability"
	"github.com/M1ts0sGitHub/Earthquakes/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	if level := logger.ParseLogLevel(cfg.LogLevel); level != -1 {
		logger.GetGlobalLogger().SetLevel(level)
	}

	logger.Infof("Starting Earthquake Catalog Service %s on port %s", config.GetVersion(), cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Catalog URL: %s", cfg.CatalogURL)
	logger.Infof("Reports Dir: %s", cfg.LocalReportsDir)

	metrics := observability.NewMetrics()

	fetcher := fetchers.NewCatalogFetcher(cfg.FetchTimeout, cfg.CatalogMaxEvents, metrics)
	cache := catalog.NewSnapshotCache(fetcher, cfg.CatalogURL, cfg.CacheTTL, nil, metrics)

	var advisories *fetchers.AdvisoryFetcher
	if cfg.AdvisoriesRSSURL != "" {
		advisories = fetchers.NewAdvisoryFetcher(cfg.FetchTimeout)
	}

	srv, err := server.NewServer(cfg, cache, advisories, metrics)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
