package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/features/training/attendance/controller"
	middleware "snowschool_backend/internals/middlewares/features"
)

func AttendanceRoutes(app fiber.Router, db *gorm.DB, requireLogin fiber.Handler) {
	ctrl := controller.NewAttendanceController(db)
	teamAccess := middleware.TeamAccess(db)

	app.Get("/attendance/:team_id", requireLogin, teamAccess, ctrl.Manage)
	app.Post("/attendance/:team_id/record", requireLogin, teamAccess, ctrl.Record)
}
