package handlers

import (
	"sokoni/internal/middleware"
	"sokoni/internal/models"
	"sokoni/internal/repositories"
	"sokoni/internal/repositories/cache"
	"sokoni/internal/services/auth"
	"sokoni/internal/services/kyc"
	"sokoni/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers, and registers all
// application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.ObjectStorage) {
	userRepo := repositories.NewUserRepository(db)
	kycRepo := repositories.NewKYCRepository(db)

	var kycCache kyc.Cache
	if repositories.CacheService != nil {
		kycCache = cache.NewKYCCache(repositories.CacheService)
	}

	authService := auth.NewService(userRepo)
	kycService := kyc.NewService(kycRepo, store, authService, kycCache, kyc.Config{})

	authHandler := NewAuthHandler(authService)
	kycHandler := NewKYCHandler(kycService)
	adminHandler := NewAdminKYCHandler(kycService)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Public routes
	app.Get("/health", HealthCheck)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("Welcome to the Sokoni seller API!") })

	// Signed document downloads. Only the local backend is served by this
	// process; other backends issue URLs they serve themselves.
	if local, ok := store.(*storage.Local); ok {
		app.Get("/documents/*", NewDocumentHandler(local).Serve)
	}

	api := app.Group("/api")
	api.Post("/register", authHandler.RegisterUser)
	api.Post("/login", authHandler.LoginUser)
	api.Post("/refresh", authHandler.RefreshToken)

	// Authenticated seller routes
	authenticated := app.Group("/api", authMiddleware.Handler)
	authenticated.Post("/logout", authHandler.LogoutUser)

	kycRoutes := authenticated.Group("/kyc")
	kycRoutes.Get("/", middleware.HasPermission(models.PermissionKYCRead), kycHandler.GetStatus)
	kycRoutes.Post("/upload", middleware.HasPermission(models.PermissionKYCWrite), kycHandler.UploadDocument)
	kycRoutes.Post("/wizard", middleware.HasPermission(models.PermissionKYCWrite), kycHandler.Wizard)
	kycRoutes.Post("/submit", middleware.HasPermission(models.PermissionKYCWrite), kycHandler.Submit)
	kycRoutes.Post("/documents", middleware.HasPermission(models.PermissionKYCWrite), kycHandler.SubmitDocuments)

	// Admin routes
	admin := authenticated.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Get("/kyc", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListRecords)
	admin.Post("/kyc/:id/approve", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.Approve)
	admin.Post("/kyc/:id/reject", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.Reject)
	admin.Patch("/kyc/:id", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.Update)
	admin.Delete("/kyc/:id", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.Delete)
}
