package routes

import (
	"campus-libsys/internal/adapters/http/handlers"
	"campus-libsys/internal/adapters/http/middleware"
	"campus-libsys/internal/adapters/persistence/repositories"
	"campus-libsys/internal/config"
	"campus-libsys/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, cfg *config.Config, bookRepo repositories.BookRepository, userRepo repositories.UserRepository) {
	// Initialize services
	catalogService := services.NewCatalogService(bookRepo)
	lendingService := services.NewLendingService(bookRepo, cfg)
	authService := services.NewAuthService(userRepo, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, catalogService, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	lendingHandler := handlers.NewLendingHandler(lendingService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Catalog routes
	bookRoutes := apiV1.Group("/books")
	bookRoutes.Use(middleware.AuthMiddleware(cfg))
	setupBookRoutes(bookRoutes, catalogHandler)

	// Lending routes (any authenticated user; students act as themselves)
	lendingRoutes := apiV1.Group("/lending")
	lendingRoutes.Use(middleware.AuthMiddleware(cfg))
	setupLendingRoutes(lendingRoutes, lendingHandler)

	// Catalog save point (Librarian/Admin)
	catalogRoutes := apiV1.Group("/catalog")
	catalogRoutes.Use(middleware.AuthMiddleware(cfg))
	catalogRoutes.Use(middleware.LibrarianOrAdmin())
	catalogRoutes.Post("/save", catalogHandler.Save)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Student registration (Admin only, 3 req/min/IP)
	router.Post("/register",
		middleware.StrictRateLimiter(),
		middleware.AuthMiddleware(cfg),
		middleware.AdminOnly(),
		handler.Register)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
}

// setupBookRoutes configures catalog routes
func setupBookRoutes(router fiber.Router, handler *handlers.CatalogHandler) {
	// Readable by any authenticated user
	router.Get("/", handler.List)
	router.Get("/search", handler.Search)
	router.Get("/:id", handler.Get)

	// Catalog maintenance (Librarian/Admin only)
	staffRoutes := router.Group("")
	staffRoutes.Use(middleware.LibrarianOrAdmin())
	staffRoutes.Post("/", handler.Create)
	staffRoutes.Delete("/:id", handler.Delete)
}

// setupLendingRoutes configures issue/return routes
func setupLendingRoutes(router fiber.Router, handler *handlers.LendingHandler) {
	router.Post("/issue", handler.Issue)
	router.Post("/return", handler.Return)
}
