package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"snowschool_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the middleware shared by every route.
func SetupMiddlewares(app *fiber.App, corsOrigins string) {
	app.Use(RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(corsOrigins))
	app.Use(GlobalRateLimiter())
}
