package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "snowschool_backend/internals/features/training/attendance/route"
	evaluationRoute "snowschool_backend/internals/features/training/evaluations/route"
)

func TrainingRoutes(app *fiber.App, db *gorm.DB, requireLogin fiber.Handler) {
	evaluationRoute.EvaluationRoutes(app, db, requireLogin)
	attendanceRoute.AttendanceRoutes(app, db, requireLogin)
}
