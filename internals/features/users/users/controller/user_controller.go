package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	clubService "snowschool_backend/internals/features/organizations/clubs/service"
	programService "snowschool_backend/internals/features/organizations/programs/service"
	teamService "snowschool_backend/internals/features/organizations/teams/service"
	evaluationDTO "snowschool_backend/internals/features/training/evaluations/dto"
	evaluationService "snowschool_backend/internals/features/training/evaluations/service"
	"snowschool_backend/internals/features/users/users/dto"
	"snowschool_backend/internals/features/users/users/repository"
	"snowschool_backend/internals/features/users/users/service"
	helper "snowschool_backend/internals/helpers"
)

const athletesPath = "/admin/athletes"

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* =========================
   REGISTER (admin)
   ========================= */

// GET /register
func (uc *UserController) RegisterPage(c *fiber.Ctx) error {
	return uc.renderRegister(c)
}

// POST /register
func (uc *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		helper.SetFlash(c, helper.FlashError, "Invalid form data")
		return uc.renderRegister(c)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		helper.SetFlash(c, helper.FlashError, helper.ValidationMessage(err))
		return uc.renderRegister(c)
	}

	_, err := service.Create(c.UserContext(), uc.DB, req.ToInput())
	switch {
	case err == nil:
		return helper.RedirectWithFlash(c, "/dashboard", helper.FlashSuccess, "User created successfully")
	case errors.Is(err, service.ErrUsernameTaken):
		helper.SetFlash(c, helper.FlashError, "Username already exists")
		return uc.renderRegister(c)
	case errors.Is(err, service.ErrEmailTaken):
		helper.SetFlash(c, helper.FlashError, "Email already exists")
		return uc.renderRegister(c)
	default:
		return helper.FailWithFlash(c, "/register", "register user", err)
	}
}

func (uc *UserController) renderRegister(c *fiber.Ctx) error {
	ctx := c.UserContext()
	coaches, err := repository.ListByRole(ctx, uc.DB, constants.RoleCoach)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list coaches", err)
	}
	teams, err := teamService.List(ctx, uc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list teams", err)
	}
	programs, err := programService.List(ctx, uc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list programs", err)
	}
	clubs, err := clubService.List(ctx, uc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list clubs", err)
	}
	return helper.Render(c, "register", fiber.Map{
		"Title":     "Create User",
		"Coaches":   coaches,
		"Teams":     teams,
		"Programs":  programs,
		"Clubs":     clubs,
		"UserTypes": constants.AllRoles,
	})
}

/* =========================
   ATHLETES (admin)
   ========================= */

// GET /admin/athletes
func (uc *UserController) Athletes(c *fiber.Ctx) error {
	ctx := c.UserContext()
	athletes, err := service.Athletes(ctx, uc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list athletes", err)
	}
	teams, err := teamService.List(ctx, uc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list teams", err)
	}
	clubs, err := clubService.List(ctx, uc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list clubs", err)
	}
	coaches, err := repository.ListByRole(ctx, uc.DB, constants.RoleCoach)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list coaches", err)
	}
	return helper.Render(c, "manage_athletes", fiber.Map{
		"Title":    "Athletes",
		"Athletes": athletes,
		"Teams":    teams,
		"Clubs":    clubs,
		"Coaches":  coaches,
	})
}

// POST /admin/create_athlete
func (uc *UserController) CreateAthlete(c *fiber.Ctx) error {
	var req dto.AthleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RedirectWithFlash(c, athletesPath, helper.FlashError, "Invalid form data")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.RedirectWithFlash(c, athletesPath, helper.FlashError, helper.ValidationMessage(err))
	}

	_, err := service.Create(c.UserContext(), uc.DB, req.ToInput())
	switch {
	case err == nil:
		return helper.RedirectWithFlash(c, athletesPath, helper.FlashSuccess, "Athlete created successfully")
	case errors.Is(err, service.ErrUsernameTaken):
		return helper.RedirectWithFlash(c, athletesPath, helper.FlashError, "Username already exists")
	case errors.Is(err, service.ErrEmailTaken):
		return helper.RedirectWithFlash(c, athletesPath, helper.FlashError, "Email already exists")
	default:
		return helper.FailWithFlash(c, athletesPath, "create athlete", err)
	}
}

// GET /admin/athlete/:id
func (uc *UserController) Athlete(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	athlete, err := service.Athlete(c.UserContext(), uc.DB, id)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, service.ErrNotAthlete):
		return helper.RedirectWithFlash(c, "/dashboard", helper.FlashError, "User is not an athlete")
	case err != nil:
		return helper.FailWithFlash(c, athletesPath, "load athlete", err)
	}

	evals, err := evaluationService.HistoryForStudent(c.UserContext(), uc.DB, athlete.ID)
	if err != nil {
		return helper.FailWithFlash(c, athletesPath, "athlete evaluations", err)
	}
	return helper.Render(c, "view_athlete", fiber.Map{
		"Title":       athlete.FullName,
		"Athlete":     athlete,
		"Evaluations": evaluationDTO.NewEvaluationViews(evals),
	})
}
