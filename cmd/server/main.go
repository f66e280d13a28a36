package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus-libsys/internal/adapters/http/middleware"
	"campus-libsys/internal/adapters/http/routes"
	"campus-libsys/internal/adapters/persistence/repositories"
	"campus-libsys/internal/config"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// User store: seed default operator accounts on first run
	userRepo := repositories.NewUserRepository(cfg.Storage.UsersFile)
	if err := userRepo.EnsureDefaults(); err != nil {
		log.Fatalf("❌ Failed to prepare user store: %v", err)
	}

	// Book store: a missing file just means an empty catalog
	bookRepo := repositories.NewBookRepository(cfg.Storage.BooksFile)
	if err := bookRepo.LoadAll(); err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Campus LibSys API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, cfg, bookRepo, userRepo)

	// Graceful shutdown
	go gracefulShutdown(app, bookRepo)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown. The catalog is written back so
// no add or delete since the last save point is lost.
func gracefulShutdown(app *fiber.App, bookRepo repositories.BookRepository) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	if err := bookRepo.SaveAll(); err != nil {
		log.Printf("❌ Error saving catalog: %v", err)
	} else {
		log.Println("✅ Catalog saved")
	}
	log.Println("✅ Server stopped gracefully")
}
