package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/image/font/opentype"

	"giftbox/backend/config"
	"giftbox/backend/controllers"
	"giftbox/backend/middleware"
	"giftbox/backend/session"
)

// NewApp builds the Fiber app with middleware and routes. Handler errors and panics fall through to
// Fiber's default error handler. colors enables ANSI colors in the request log.
func NewApp(cfg *config.Config, registry *session.Registry, font *opentype.Font, clock controllers.Clock, logger *log.Logger, colors bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "GiftBox",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: false,
	}))
	app.Use(middleware.LoggingMiddleware(logger, colors))

	SetupRoutes(app, registry, cfg, font, clock)

	return app
}
