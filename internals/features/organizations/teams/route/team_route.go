package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/features/organizations/teams/controller"
)

// TeamAdminRoutes mounts under the /admin group.
func TeamAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeamController(db)

	admin.Get("/teams", ctrl.List)
	admin.Post("/create_team", ctrl.Create)
	admin.Post("/update_team/:id", ctrl.Update)
	admin.Post("/delete_team/:id", ctrl.Delete)
}
