package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"factory-sim-backend/config"
	"factory-sim-backend/internal/api"
	"factory-sim-backend/internal/db"
	"factory-sim-backend/internal/export"
	"factory-sim-backend/internal/scenario"
	"factory-sim-backend/internal/sim"
	"factory-sim-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "factory-sim ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("no config file at %s, using defaults", configPath)
			cfg = config.Default()
		} else {
			logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
		}
	} else {
		logger.Printf("configuration loaded successfully from %s", configPath)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	// Run the base simulation once; scenarios are rewrites of its output.
	started := time.Now()
	base, err := sim.Run(cfg)
	if err != nil {
		logger.Fatalf("simulation failed: %v", err)
	}
	logger.Printf("simulation finished in %s (%d tables)", time.Since(started).Round(time.Millisecond), len(base.Tables))

	scenarioRNG := rand.New(rand.NewSource(cfg.Simulation.Seed))
	for _, name := range cfg.Simulation.Scenarios {
		ds, err := scenario.Apply(base, name, scenarioRNG)
		if err != nil {
			logger.Fatalf("scenario %s failed: %v", name, err)
		}
		if err := export.CSV(ds, cfg.Export.Dir, name); err != nil {
			logger.Fatalf("export failed for scenario %s: %v", name, err)
		}
		logger.Printf("exported scenario %s to %s", name, cfg.Export.Dir)
	}

	// Persist the base dataset when a warehouse is configured.
	if cfg.Database.DSN != "" {
		gormDB, err := db.Init(&cfg.Database)
		if err != nil {
			logger.Fatalf("failed to initialize database: %v", err)
		}
		appStore := store.NewGormStore(gormDB)
		ctx := context.Background()
		if err := appStore.Migrate(ctx, base.Line); err != nil {
			logger.Fatalf("migration failed: %v", err)
		}
		if err := appStore.Persist(ctx, base); err != nil {
			logger.Fatalf("persistence failed: %v", err)
		}
		logger.Println("dataset persisted to warehouse")
	}

	if !cfg.Server.Enabled {
		logger.Println("server disabled, done")
		return
	}

	// Serve the base dataset read-only.
	router := api.NewRouter(base, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
