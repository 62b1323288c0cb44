package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	clubService "snowschool_backend/internals/features/organizations/clubs/service"
	programService "snowschool_backend/internals/features/organizations/programs/service"
	"snowschool_backend/internals/features/organizations/teams/dto"
	"snowschool_backend/internals/features/organizations/teams/service"
	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

const teamsPath = "/admin/teams"

var validate = validator.New()

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// GET /admin/teams
func (tc *TeamController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()
	teams, err := service.List(ctx, tc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list teams", err)
	}
	programs, err := programService.List(ctx, tc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list programs", err)
	}
	clubs, err := clubService.List(ctx, tc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list clubs", err)
	}
	var coaches []models.User
	if err := tc.DB.WithContext(ctx).Where("user_type = ?", constants.RoleCoach).Order("full_name ASC").Find(&coaches).Error; err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list coaches", err)
	}

	return helper.Render(c, "manage_teams", fiber.Map{
		"Title":    "Teams",
		"Teams":    teams,
		"Programs": programs,
		"Coaches":  coaches,
		"Clubs":    clubs,
	})
}

// POST /admin/create_team
func (tc *TeamController) Create(c *fiber.Ctx) error {
	req, msg := parseTeamRequest(c)
	if msg != "" {
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashError, msg)
	}
	team := &models.Team{}
	req.ApplyTo(team)

	if err := service.Create(c.UserContext(), tc.DB, team); err != nil {
		return tc.saveFailed(c, "create team", err)
	}
	return helper.RedirectWithFlash(c, teamsPath, helper.FlashSuccess, "Team created successfully")
}

// POST /admin/update_team/:id
func (tc *TeamController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	team, err := service.Get(c.UserContext(), tc.DB, id)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			return fiber.ErrNotFound
		}
		return helper.FailWithFlash(c, teamsPath, "load team", err)
	}

	req, msg := parseTeamRequest(c)
	if msg != "" {
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashError, msg)
	}
	req.ApplyTo(team)

	if err := service.Save(c.UserContext(), tc.DB, team); err != nil {
		return tc.saveFailed(c, "update team", err)
	}
	return helper.RedirectWithFlash(c, teamsPath, helper.FlashSuccess, "Team updated successfully")
}

// POST /admin/delete_team/:id
func (tc *TeamController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	switch err := service.Delete(c.UserContext(), tc.DB, id); {
	case err == nil:
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashSuccess, "Team deleted successfully")
	case errors.Is(err, service.ErrTeamNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, service.ErrTeamHasStudents):
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashError, "Cannot delete team that has students assigned")
	case errors.Is(err, service.ErrTeamHasAttendance):
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashError, "Cannot delete team that has attendance records")
	default:
		return helper.FailWithFlash(c, teamsPath, "delete team", err)
	}
}

func (tc *TeamController) saveFailed(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashError, "Selected program does not exist")
	case errors.Is(err, service.ErrInvalidCoach):
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashError, "Selected coach does not exist")
	case errors.Is(err, service.ErrClubNotFound):
		return helper.RedirectWithFlash(c, teamsPath, helper.FlashError, "Selected club does not exist")
	}
	return helper.FailWithFlash(c, teamsPath, op, err)
}

func parseTeamRequest(c *fiber.Ctx) (*dto.TeamRequest, string) {
	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "Invalid form data"
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, helper.ValidationMessage(err)
	}
	return &req, ""
}
