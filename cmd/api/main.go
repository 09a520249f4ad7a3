// Command api is the World Cup Hub data API server.
//
// Usage:
//
//	hub-api
//	API_PORT=8080 DATASET_DIR=./data hub-api

// @title World Cup Hub Data API
// @version 1.0.0
// @description Daily puzzle API (missing XI, who scored, Wordle Cup) with deterministic per-day selection, plus World Cup fixtures and news passthrough.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name World Cup Hub
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/worldcuphub/hub-data/internal/api"
	"github.com/worldcuphub/hub-data/internal/cache"
	"github.com/worldcuphub/hub-data/internal/config"
	"github.com/worldcuphub/hub-data/internal/dataset"

	_ "github.com/worldcuphub/hub-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Dataset provider — parse once up front so a broken dataset fails fast.
	provider := dataset.NewDir(cfg.DatasetDir)
	apps, err := provider.Appearances()
	if err != nil {
		logger.Error("Failed to load dataset", "dir", cfg.DatasetDir, "error", err)
		os.Exit(1)
	}
	goals, err := provider.Goals()
	if err != nil {
		logger.Error("Failed to load dataset", "dir", cfg.DatasetDir, "error", err)
		os.Exit(1)
	}
	logger.Info("Dataset loaded",
		"dir", cfg.DatasetDir,
		"appearances", len(apps),
		"goals", len(goals))

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(provider, appCache, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting World Cup Hub Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
