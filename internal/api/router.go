package api

import (
	"strings"

	"shopsmart-ai/internal/api/handlers"
	"shopsmart-ai/internal/dto"
	"shopsmart-ai/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// allowedOrigins is the fixed local-dev allow-list (Vite on 5173/5174, Next
// on 3000, each reachable as localhost or 127.0.0.1).
var allowedOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:5174",
	"http://127.0.0.1:5174",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

func SetupRouter(assistantHandler *handlers.AssistantHandler, serverCfg *config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{
				Detail: err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/product-qa", assistantHandler.ProductQA)
	app.Post("/ai-search", assistantHandler.AISearch)
	app.Post("/recommend", assistantHandler.Recommend)

	appLogger.Info("Router configured", zap.Int("allowed_origins", len(allowedOrigins)))

	return app
}
