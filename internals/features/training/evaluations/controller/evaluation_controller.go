package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/training/evaluations/dto"
	"snowschool_backend/internals/features/training/evaluations/service"
	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
)

const dashboardPath = "/dashboard"

// participationLabels complete "Student does not participate in ..."
var participationLabels = map[string]string{
	constants.SportSkier:       "skiing",
	constants.SportSnowboarder: "snowboarding",
	constants.SportSnowStars:   "Snow Stars",
}

type EvaluationController struct {
	DB *gorm.DB
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{DB: db}
}

type categoryOption struct {
	Column string
	Label  string
}

type sportOption struct {
	Value       string
	Label       string
	ProgramName string
	Categories  []categoryOption
}

// GET /evaluate/:student_id
func (ec *EvaluationController) Form(c *fiber.Ctx) error {
	coach := authHelper.CurrentUser(c)
	id, err := helper.ParamUint(c, "student_id")
	if err != nil {
		return err
	}
	student, err := service.StudentForCoach(c.UserContext(), ec.DB, coach.ID, id)
	if err != nil {
		return ec.studentFailed(c, err)
	}

	completed, err := service.CompletedLevels(c.UserContext(), ec.DB, student.ID)
	if err != nil {
		return helper.FailWithFlash(c, dashboardPath, "completed levels", err)
	}

	var sports []sportOption
	for _, s := range student.AvailableSports() {
		opt := sportOption{Value: s, Label: constants.SportLabels[s], ProgramName: constants.ProgramNames[s]}
		for _, col := range constants.SportCategories[s] {
			opt.Categories = append(opt.Categories, categoryOption{Column: col, Label: constants.CategoryLabels[col]})
		}
		sports = append(sports, opt)
	}

	return helper.Render(c, "evaluate", fiber.Map{
		"Title":           "Evaluate " + student.FullName,
		"Student":         student,
		"AvailableSports": sports,
		"CompletedLevels": completed,
	})
}

// POST /evaluate/:student_id
func (ec *EvaluationController) Submit(c *fiber.Ctx) error {
	coach := authHelper.CurrentUser(c)
	id, err := helper.ParamUint(c, "student_id")
	if err != nil {
		return err
	}
	student, err := service.StudentForCoach(c.UserContext(), ec.DB, coach.ID, id)
	if err != nil {
		return ec.studentFailed(c, err)
	}

	var req dto.EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, "Invalid form data")
	}
	req.Categories = make(map[string]string, 4)
	for _, col := range constants.SportCategories[helper.CleanString(req.SportType)] {
		req.Categories[col] = c.FormValue(col)
	}
	req.Normalize()

	_, err = service.Submit(c.UserContext(), ec.DB, coach.ID, student, req)
	var dup *service.DuplicateLevelError
	switch {
	case err == nil:
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashSuccess, "Evaluation submitted successfully")
	case errors.Is(err, service.ErrNotParticipating):
		msg := fmt.Sprintf("Student does not participate in %s. Please update student profile.", participationLabels[req.SportType])
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, msg)
	case errors.Is(err, service.ErrSportRequired):
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, "Please select a sport for evaluation.")
	case errors.Is(err, service.ErrInvalidLevel):
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, "Please enter a valid level.")
	case errors.As(err, &dup):
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, dup.Error())
	case errors.Is(err, service.ErrInvalidScore):
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, "Please enter valid scores.")
	default:
		return helper.FailWithFlash(c, dashboardPath, "submit evaluation", err)
	}
}

// GET /evaluations/:id
func (ec *EvaluationController) View(c *fiber.Ctx) error {
	viewer := authHelper.CurrentUser(c)
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	eval, err := service.Viewable(c.UserContext(), ec.DB, viewer, id)
	switch {
	case errors.Is(err, service.ErrEvaluationNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, service.ErrAccessDenied):
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, constants.MsgAccessDenied)
	case err != nil:
		return helper.FailWithFlash(c, dashboardPath, "load evaluation", err)
	}

	return helper.Render(c, "view_evaluation", fiber.Map{
		"Title":      "Evaluation",
		"Evaluation": dto.NewEvaluationView(*eval),
		"CoachName":  service.CoachName(c.UserContext(), ec.DB, eval.CoachID),
	})
}

func (ec *EvaluationController) studentFailed(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, service.ErrNotAssigned):
		return helper.RedirectWithFlash(c, dashboardPath, helper.FlashError, "You can only evaluate your assigned students")
	}
	return helper.FailWithFlash(c, dashboardPath, "load student", err)
}
