package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/autoassist/auto-assist-api/internal/config"
	"github.com/autoassist/auto-assist-api/internal/handlers"
	"github.com/autoassist/auto-assist-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	userHandler *handlers.UserHandler,
	vehicleHandler *handlers.VehicleHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	dataHandler *handlers.DataHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Locally stored vehicle images are served statically; with the S3 driver
	// image URLs point at the bucket/CDN instead.
	if cfg.StorageDriver == "local" {
		app.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	users := app.Group("/users")

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := users.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", userHandler.Register)
	auth.Post("/login", userHandler.Login)

	users.Get("/", middleware.JWTProtected(cfg), userHandler.List)
	users.Get("/me", middleware.JWTProtected(cfg), userHandler.Me)
	users.Get("/refresh", middleware.JWTProtected(cfg), userHandler.Refresh)
	users.Get("/:id", middleware.JWTProtected(cfg), userHandler.GetByID)
	users.Put("/:id", middleware.JWTProtected(cfg), userHandler.Update)
	users.Delete("/:id", middleware.JWTProtected(cfg), userHandler.Delete)

	vehicles := app.Group("/vehicles", middleware.JWTProtected(cfg))
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/user/:userId", vehicleHandler.ListByUser)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id/image", vehicleHandler.DeleteImage)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	maintenances := app.Group("/maintenances", middleware.JWTProtected(cfg))
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Get("/:id", maintenanceHandler.GetByID)
	maintenances.Post("/", maintenanceHandler.Create)
	maintenances.Put("/:id", maintenanceHandler.Update)
	maintenances.Delete("/:id", maintenanceHandler.Delete)

	data := app.Group("/data")
	data.Get("/brands", dataHandler.Brands)
	data.Get("/colors", dataHandler.Colors)
}
