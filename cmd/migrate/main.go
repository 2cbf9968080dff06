// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go              # Run all pending migrations
// go run cmd/migrate/main.go -down        # Rollback all migrations
// go run cmd/migrate/main.go -steps 1     # Run one migration
// go run cmd/migrate/main.go -steps -1    # Rollback one migration
// go run cmd/migrate/main.go -force 1     # Force version 1
package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/celestiaorg/jobtracker/config"
	"github.com/celestiaorg/jobtracker/internal/db"
	"github.com/celestiaorg/jobtracker/internal/db/migrations"
	"github.com/celestiaorg/jobtracker/internal/logger"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitializeAndConfigure(cfg.LogLevel)

	defaults := migrations.DefaultConfig()
	var (
		dbURLFlag = flag.String("db", "", "Database URL (optional, defaults to env vars)")
		down      = flag.Bool("down", false, "Roll back migrations")
		steps     = flag.Int("steps", 0, "Number of migrations to apply (up or down)")
		force     = flag.Int("force", -1, "Force a specific version")
		retries   = flag.Int("retries", defaults.RetryAttempts, "Number of connection retries")
		retryWait = flag.Duration("retry-wait", defaults.RetryDelay, "Wait time between retries")
	)
	flag.Parse()

	driver := cfg.DB.Driver
	if driver == "" {
		driver = db.DefaultDriver
	}

	// Use command line flag if provided, otherwise use env vars
	dbURL := db.MigrationURL(cfg.DB)
	if *dbURLFlag != "" {
		dbURL = *dbURLFlag
	}

	service, err := migrations.NewMigrationService(migrations.Config{
		Driver:        driver,
		DatabaseURL:   dbURL,
		RetryAttempts: *retries,
		RetryDelay:    *retryWait,
	})
	if err != nil {
		logger.Fatalf("Failed to create migration service: %v", err)
	}
	defer func() { _ = service.Close() }()

	start := time.Now()

	// Handle force version
	if *force >= 0 {
		if err := service.Force(*force); err != nil {
			logger.Fatalf("Failed to force version %d: %v", *force, err)
		}
		logger.Infof("Successfully forced version to %d", *force)
		return
	}

	// Handle steps
	if *steps != 0 {
		if err := service.Steps(*steps); err != nil {
			logger.Fatalf("Failed to apply %d steps: %v", *steps, err)
		}
		logger.Infof("Successfully applied %d steps", *steps)
		return
	}

	// Handle up/down
	if *down {
		if err := service.Down(); err != nil {
			logger.Fatalf("Migration rollback failed: %v", err)
		}
	} else {
		if err := service.Up(); err != nil {
			logger.Fatalf("Migration failed: %v", err)
		}
	}

	version, dirty, err := service.Version()
	if err != nil {
		logger.Warnf("Could not get final version: %v", err)
		return
	}
	logger.InfoWithFields("Migrations done", map[string]interface{}{
		"version":  version,
		"dirty":    dirty,
		"duration": time.Since(start).String(),
	})
}
