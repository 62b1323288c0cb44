package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/configs"
	"snowschool_backend/internals/features/users/auth/controller"
	rateLimiter "snowschool_backend/internals/middlewares"
)

// AuthRoutes mounts the login pages. optionalAuth resolves the current user
// without requiring one; requireLogin rejects anonymous requests.
func AuthRoutes(app fiber.Router, db *gorm.DB, cfg configs.Config, optionalAuth, requireLogin fiber.Handler) {
	authController := controller.NewAuthController(db, cfg)

	app.Get("/login", optionalAuth, authController.LoginPage)
	app.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	app.Get("/logout", requireLogin, authController.Logout)
}
