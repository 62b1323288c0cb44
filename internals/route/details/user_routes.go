package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/configs"
	authRoute "snowschool_backend/internals/features/users/auth/route"
	dashboardRoute "snowschool_backend/internals/features/users/dashboard/route"
	userRoute "snowschool_backend/internals/features/users/users/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config, optionalAuth, requireLogin fiber.Handler) {
	authRoute.AuthRoutes(app, db, cfg, optionalAuth, requireLogin)
	dashboardRoute.DashboardRoutes(app, db, optionalAuth, requireLogin)
}

func UserRoutes(app *fiber.App, db *gorm.DB, requireLogin fiber.Handler) {
	userRoute.UserRoutes(app, db, requireLogin)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
