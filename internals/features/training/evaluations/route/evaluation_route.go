package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/training/evaluations/controller"
	authMiddleware "snowschool_backend/internals/middlewares/auth"
)

func EvaluationRoutes(app fiber.Router, db *gorm.DB, requireLogin fiber.Handler) {
	ctrl := controller.NewEvaluationController(db)
	coachOnly := authMiddleware.OnlyRoles(constants.RoleErrorCoach("evaluate athletes"), constants.RoleCoach)

	app.Get("/evaluate/:student_id", requireLogin, coachOnly, ctrl.Form)
	app.Post("/evaluate/:student_id", requireLogin, coachOnly, ctrl.Submit)
	app.Get("/evaluations/:id", requireLogin, ctrl.View)
}
