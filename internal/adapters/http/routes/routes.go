package routes

import (
	"time"

	"agrihero-admin/internal/adapters/http/handlers"
	"agrihero-admin/internal/adapters/http/middleware"
	"agrihero-admin/internal/adapters/persistence/repositories"
	"agrihero-admin/internal/config"
	"agrihero-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application. The storage implementation
// (in-memory or MySQL) is injected at process start.
func Setup(app *fiber.App, store repositories.Storage, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(store, cfg)
	userService := services.NewUserService(store)
	contentService := services.NewContentService(store)
	flagService := services.NewFeatureFlagService(store)
	complianceService := services.NewComplianceService(store)
	marketService := services.NewMarketService(store)
	dashboardService := services.NewDashboardService(store)
	auditService := services.NewAuditService(store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	contentHandler := handlers.NewContentHandler(contentService)
	flagHandler := handlers.NewFeatureFlagHandler(flagService)
	complianceHandler := handlers.NewComplianceHandler(complianceService)
	marketHandler := handlers.NewMarketHandler(marketService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	// Auth routes (public, strict rate limit on login)
	authRoutes := api.Group("/auth", middleware.NoCacheHeaders())
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Admin-or-above resources
	adminGuard := []fiber.Handler{middleware.AuthMiddleware(cfg), middleware.AdminOrAbove()}

	userRoutes := api.Group("/users", adminGuard...)
	setupUserRoutes(userRoutes, userHandler)

	contentRoutes := api.Group("/contents", adminGuard...)
	setupContentRoutes(contentRoutes, contentHandler)

	flagRoutes := api.Group("/feature-flags", adminGuard...)
	setupFeatureFlagRoutes(flagRoutes, flagHandler)

	complianceRoutes := api.Group("/compliance-reports", adminGuard...)
	setupComplianceRoutes(complianceRoutes, complianceHandler)

	marketRoutes := api.Group("/produce-markets", adminGuard...)
	setupMarketRoutes(marketRoutes, marketHandler)

	// Metric snapshots change slowly; let clients cache briefly
	metricRoutes := api.Group("/metrics", append(adminGuard, middleware.CacheControl(time.Minute))...)
	metricRoutes.Get("/", dashboardHandler.ListMetrics)

	dashboardRoutes := api.Group("/dashboard", adminGuard...)
	dashboardRoutes.Get("/stats", dashboardHandler.GetStats)

	// Audit trail is super-admin only
	auditRoutes := api.Group("/audit-logs",
		middleware.AuthMiddleware(cfg),
		middleware.SuperAdminOnly(),
		middleware.NoCacheHeaders(),
	)
	auditRoutes.Get("/", auditHandler.ListAuditLogs)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupUserRoutes configures user management routes
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/:id", handler.GetUser)
	router.Post("/", handler.CreateUser)
	router.Put("/:id", handler.UpdateUser)
	router.Delete("/:id", middleware.SuperAdminOnly(), handler.DeleteUser)
}

// setupContentRoutes configures content moderation routes
func setupContentRoutes(router fiber.Router, handler *handlers.ContentHandler) {
	router.Get("/", handler.ListContents)
	router.Get("/:id", handler.GetContent)
	router.Put("/:id/moderate", handler.ModerateContent)
}

// setupFeatureFlagRoutes configures feature flag routes.
// Creation and updates are super-admin only.
func setupFeatureFlagRoutes(router fiber.Router, handler *handlers.FeatureFlagHandler) {
	router.Get("/", handler.ListFeatureFlags)
	router.Get("/:id", handler.GetFeatureFlag)
	router.Post("/", middleware.SuperAdminOnly(), handler.CreateFeatureFlag)
	router.Put("/:id", middleware.SuperAdminOnly(), handler.UpdateFeatureFlag)
}

// setupComplianceRoutes configures compliance report routes
func setupComplianceRoutes(router fiber.Router, handler *handlers.ComplianceHandler) {
	router.Get("/", handler.ListReports)
	router.Get("/:id", handler.GetReport)
	router.Post("/:id/generate", handler.GenerateReport)
}

// setupMarketRoutes configures produce market routes.
// Deletion is super-admin only.
func setupMarketRoutes(router fiber.Router, handler *handlers.MarketHandler) {
	router.Get("/", handler.ListProduceMarkets)
	router.Get("/:id", handler.GetProduceMarket)
	router.Post("/", handler.CreateProduceMarket)
	router.Put("/:id", handler.UpdateProduceMarket)
	router.Delete("/:id", middleware.SuperAdminOnly(), handler.DeleteProduceMarket)
}
