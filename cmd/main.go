package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/celestiaorg/jobtracker/config"
	"github.com/celestiaorg/jobtracker/internal/api/v1/middleware"
	"github.com/celestiaorg/jobtracker/internal/db"
	"github.com/celestiaorg/jobtracker/internal/db/repos"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/internal/services"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/handlers"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env file is fine, the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitializeAndConfigure(cfg.LogLevel)

	// Initialize database
	database, err := db.New(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize services and handlers
	jobRepo := repos.NewJobRepository(database)
	jobService := services.NewJobService(jobRepo)
	jobHandler := handlers.NewJobHandler(jobService)

	app := fiber.New(fiber.Config{
		AppName:      "jobtracker",
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(middleware.Logger())

	routes.RegisterRoutes(app, jobHandler)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logger.Infof("Starting server on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("Server stopped: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Errorf("Failed to shut down server: %v", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server stopped")
}
