package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tastebite/tastebite-backend/config"
	"github.com/tastebite/tastebite-backend/internal/app/controller"
	"github.com/tastebite/tastebite-backend/internal/app/repository"
	"github.com/tastebite/tastebite-backend/internal/app/service"
	"github.com/tastebite/tastebite-backend/internal/db"
	"github.com/tastebite/tastebite-backend/internal/router"
	"github.com/tastebite/tastebite-backend/internal/storage"
	"github.com/tastebite/tastebite-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting TASTEBITE Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed sample menu (optional)
	if err := db.Seed(); err != nil {
		logger.Warn("Failed to seed sample menu", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())

	// Initialize services
	menuService := service.NewMenuService(menuRepo)
	cartService := service.NewCartService(cartRepo)

	// Initialize controllers
	restaurantController := controller.NewRestaurantController(menuService, cartService)

	var uploadController *controller.UploadController
	if cfg.S3.AccessKeyID != "" {
		s3Storage := storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
		uploadController = controller.NewUploadController(s3Storage)
	}

	// Setup router
	r := router.NewRouter(restaurantController, uploadController, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
