package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the configured origins (comma separated) to call the
// JSON endpoints with credentials.
func CorsMiddleware(origins string) fiber.Handler {
	if origins == "" {
		origins = "http://localhost:5001, http://127.0.0.1:5001"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
