package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/VoidMesh/terragen/internal/api"
	"github.com/VoidMesh/terragen/internal/config"
	"github.com/VoidMesh/terragen/internal/db"
	"github.com/VoidMesh/terragen/internal/logging"
	"github.com/VoidMesh/terragen/internal/terrain"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	setupLogging(cfg.Logging)
	log := logging.GetLogger()
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "log_level", cfg.Logging.Level)

	// Load presets
	presets, err := config.LoadPresets(cfg.Generation.PresetsPath)
	if err != nil {
		log.Fatal("Failed to load presets", "error", err, "path", cfg.Generation.PresetsPath)
	}
	log.Debug("Presets loaded", "count", presets.Len(), "names", presets.Names())

	// Initialize database
	database, err := initializeDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer database.Close()

	// Run migrations
	log.Debug("Running database migrations")
	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run database migrations", "error", err)
	}
	log.Info("Database migrations completed")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := api.NewMetrics(registry)

	// Initialize terrain manager
	logger := terrain.NewDefaultLoggerWrapper()
	generator := terrain.NewGenerator(logger, terrain.WithStageObserver(metrics.ObserveStage))
	manager := terrain.NewManager(database, generator, logger)
	log.Debug("Terrain manager initialized")

	// Initialize API handlers
	handler := api.NewHandler(manager, presets, metrics, cfg.Generation.Timeout)
	router := api.SetupRoutes(handler, metrics, cfg.Server.WriteTimeout)
	log.Debug("API routes configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting terragen server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", "error", err)
		}
		log.Debug("Server stopped listening")
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Debug("Server shutdown completed gracefully")
	}

	log.Info("Server exited")
}

func setupLogging(cfg config.LoggingConfig) {
	format := cfg.Format
	if format == "pretty" || !cfg.Structured {
		format = "text"
	}

	logging.Setup(logging.Options{
		Level:  cfg.Level,
		Format: format,
		Prefix: "[terragen] ",
	})
}

func initializeDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	log := logging.GetLogger()

	log.Debug("Opening database connection", "path", cfg.Path)
	database, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	log.Debug("Configuring database connection pool", "max_open_conns", cfg.MaxOpenConns, "max_idle_conns", cfg.MaxIdleConns, "conn_max_lifetime", cfg.ConnMaxLifetime)
	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database initialized", "path", cfg.Path)
	return database, nil
}
