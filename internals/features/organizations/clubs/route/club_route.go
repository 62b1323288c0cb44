package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/features/organizations/clubs/controller"
)

// ClubAdminRoutes mounts under the /admin group.
func ClubAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClubController(db)

	admin.Get("/clubs", ctrl.List)
	admin.Post("/create_club", ctrl.Create)
	admin.Post("/update_club/:id", ctrl.Update)
	admin.Post("/delete_club/:id", ctrl.Delete)
}
