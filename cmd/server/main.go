package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/christainc3213/Intex-II-V3/internal/config"
	"github.com/christainc3213/Intex-II-V3/internal/database"
	"github.com/christainc3213/Intex-II-V3/internal/handler"
	"github.com/christainc3213/Intex-II-V3/internal/middleware"
	"github.com/christainc3213/Intex-II-V3/internal/repository"
	"github.com/christainc3213/Intex-II-V3/internal/service"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to SQLite
	db, err := database.NewSQLite(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
		rdb = nil
	}

	// Initialize layers
	titleRepo := repository.NewTitleRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	userRepo := repository.NewUserRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	handlers := handler.Handlers{
		Catalog:         handler.NewCatalogHandler(service.NewCatalogService(titleRepo)),
		Ratings:         handler.NewRatingHandler(service.NewRatingService(ratingRepo)),
		Users:           handler.NewUserHandler(service.NewUserService(userRepo)),
		Recommendations: handler.NewRecommendationHandler(service.NewRecommendationService(recRepo, rdb)),
		Interactions:    handler.NewInteractionHandler(service.NewInteractionService(interactionRepo)),
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:         "catalog-api",
		ServerHeader:    "catalog-api",
		StructValidator: handler.NewStructValidator(),
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	if rdb != nil {
		app.Use(middleware.NewRateLimiter(rdb, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSec).Handler())
	}

	// Routes
	handler.Register(app, handlers)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.Port
		slog.Info("catalog-api starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down catalog-api")
	_ = app.Shutdown()
}
