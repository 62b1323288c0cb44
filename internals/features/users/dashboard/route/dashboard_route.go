package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/features/users/dashboard/controller"
)

func DashboardRoutes(app fiber.Router, db *gorm.DB, optionalAuth, requireLogin fiber.Handler) {
	ctrl := controller.NewDashboardController(db)

	app.Get("/", optionalAuth, ctrl.Index)
	app.Get("/dashboard", requireLogin, ctrl.Dashboard)
}
