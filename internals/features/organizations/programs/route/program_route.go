package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/features/organizations/programs/controller"
)

// ProgramAdminRoutes mounts under the /admin group.
func ProgramAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramController(db)

	admin.Get("/programs", ctrl.List)
	admin.Post("/create_program", ctrl.Create)
	admin.Post("/update_program/:id", ctrl.Update)
	admin.Post("/delete_program/:id", ctrl.Delete)
}
