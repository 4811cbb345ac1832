// Package main is the entry point for the seller verification API.
// It initializes dependencies, sets up the HTTP server and starts the
// application.
package main

import (
	"log"
	"time"

	"sokoni/internal/config"
	"sokoni/internal/handlers"
	"sokoni/internal/repositories"
	"sokoni/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("⚠️ Failed to close database connection: %v", err)
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	store, err := storage.NewLocal(
		config.GetEnv("STORAGE_DIR", "./data/documents"),
		config.GetEnv("STORAGE_BASE_URL", "http://localhost:3000/documents"),
		config.GetEnv("STORAGE_SIGNING_SECRET", "dev-signing-secret"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize document storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		// Bank statements cap at 10 MB; leave headroom for form fields.
		BodyLimit: 12 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	handlers.SetupRoutes(app, repositories.DB, store)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
