package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	evaluationDTO "snowschool_backend/internals/features/training/evaluations/dto"
	"snowschool_backend/internals/features/users/dashboard/service"
	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /
func (dc *DashboardController) Index(c *fiber.Ctx) error {
	if authHelper.CurrentUser(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return helper.Render(c, "index", fiber.Map{"Title": "Welcome"})
}

// GET /dashboard
func (dc *DashboardController) Dashboard(c *fiber.Ctx) error {
	user := authHelper.CurrentUser(c)
	ctx := c.UserContext()

	switch {
	case user.IsAdmin():
		users, err := service.AdminUsers(ctx, dc.DB)
		if err != nil {
			return dashboardFailed(c, err)
		}
		return helper.Render(c, "dashboard_admin", fiber.Map{
			"Title": "Admin Dashboard",
			"Users": users,
		})

	case user.IsCoach():
		data, err := service.Coach(ctx, dc.DB, user.ID)
		if err != nil {
			return dashboardFailed(c, err)
		}
		return helper.Render(c, "dashboard_coach", fiber.Map{
			"Title":       "Coach Dashboard",
			"Teams":       data.Teams,
			"Students":    data.Students,
			"Evaluations": evaluationDTO.NewEvaluationViews(data.Evaluations),
		})

	default:
		evals, err := service.Student(ctx, dc.DB, user.ID)
		if err != nil {
			return dashboardFailed(c, err)
		}
		return helper.Render(c, "dashboard_student", fiber.Map{
			"Title":       "My Evaluations",
			"Evaluations": evaluationDTO.NewEvaluationViews(evals),
		})
	}
}

// The dashboard is the redirect target of every other page, so a failure
// here renders the error page instead of redirecting.
func dashboardFailed(c *fiber.Ctx, err error) error {
	return fiber.NewError(fiber.StatusInternalServerError, "Could not load the dashboard: "+err.Error())
}
