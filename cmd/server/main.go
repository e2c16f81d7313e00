package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"github.com/autoassist/auto-assist-api/internal/config"
	"github.com/autoassist/auto-assist-api/internal/database"
	"github.com/autoassist/auto-assist-api/internal/dto"
	"github.com/autoassist/auto-assist-api/internal/handlers"
	"github.com/autoassist/auto-assist-api/internal/logging"
	"github.com/autoassist/auto-assist-api/internal/middleware"
	"github.com/autoassist/auto-assist-api/internal/routes"
	"github.com/autoassist/auto-assist-api/internal/services"
	"github.com/autoassist/auto-assist-api/internal/storage"
)

func main() {
	// Stdout-only logging until the database is up
	logging.Bootstrap()

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info(".env file loaded")
	}

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if err := database.SeedCatalogs(); err != nil {
		slog.Error("catalog seeding failed", "error", err)
		os.Exit(1)
	}

	// ERROR+ records now also land in system_logs
	pgLogHandler := logging.AttachStore(database.DB)
	stopLogCleanup := logging.StartCleanup(database.DB)

	// Image storage
	images, err := newImageStore(cfg)
	if err != nil {
		slog.Error("image storage init failed", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	slog.Info("image storage ready", "driver", cfg.StorageDriver)

	// Services
	userService := services.NewUserService(database.DB, cfg)
	vehicleService := services.NewVehicleService(database.DB, images)
	maintenanceService := services.NewMaintenanceService(database.DB)
	dataService := services.NewDataService(database.DB)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, images)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	dataHandler := handlers.NewDataHandler(dataService)
	healthHandler := handlers.NewHealthHandler()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app; the body limit leaves room for a 5MB image plus form fields.
	app := fiber.New(fiber.Config{
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, userHandler, vehicleHandler, maintenanceHandler, dataHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	stopLogCleanup()
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func newImageStore(cfg *config.Config) (storage.ImageStore, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Store(context.Background(), cfg)
	}
	return storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "route", c.Path(), "error", err.Error())
		message = "internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Message: message})
}
