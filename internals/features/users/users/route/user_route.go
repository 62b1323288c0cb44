package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/users/users/controller"
	authMiddleware "snowschool_backend/internals/middlewares/auth"
)

// UserRoutes mounts /register for admins.
func UserRoutes(app fiber.Router, db *gorm.DB, requireLogin fiber.Handler) {
	ctrl := controller.NewUserController(db)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("create new users"), constants.RoleAdmin)

	app.Get("/register", requireLogin, adminOnly, ctrl.RegisterPage)
	app.Post("/register", requireLogin, adminOnly, ctrl.Register)
}

// UserAdminRoutes mounts under the /admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	admin.Get("/athletes", ctrl.Athletes)
	admin.Post("/create_athlete", ctrl.CreateAthlete)
	admin.Get("/athlete/:id", ctrl.Athlete)
}
