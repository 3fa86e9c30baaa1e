package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"agrihero-admin/internal/adapters/http/middleware"
	"agrihero-admin/internal/adapters/http/routes"
	"agrihero-admin/internal/adapters/persistence/memory"
	"agrihero-admin/internal/adapters/persistence/models"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/config"
	"agrihero-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "agrihero-admin/docs" // Swagger docs
)

// @title AgriHero6 Admin API
// @version 1.0
// @description Administrative back-office API for the AgriHero6 agricultural platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@agrihero6.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host admin-api.agrihero6.com
// @BasePath /api
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Select storage backend
	var store repositories.Storage
	if cfg.UseMemoryStorage() {
		store = memory.New()
		log.Println("✅ Using in-memory storage")
	} else {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase()

		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to auto migrate: %v", err)
		}
		log.Println("✅ Database migration completed")

		store = repositories.New(db)
	}

	// Seed baseline data
	if err := config.NewSeeder(store).Run(context.Background()); err != nil {
		log.Printf("⚠️ Warning: Failed to seed baseline data: %v", err)
	}

	// Start token cleanup cron (daily 03:00)
	cleanupService := services.NewCleanupService(store)
	cleanupService.Start()
	defer cleanupService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AgriHero6 Admin API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass store and cfg for dependency injection)
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
