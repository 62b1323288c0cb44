package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/features/organizations/clubs/dto"
	"snowschool_backend/internals/features/organizations/clubs/service"
	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

const clubsPath = "/admin/clubs"

var validate = validator.New()

type ClubController struct {
	DB *gorm.DB
}

func NewClubController(db *gorm.DB) *ClubController {
	return &ClubController{DB: db}
}

// GET /admin/clubs
func (cc *ClubController) List(c *fiber.Ctx) error {
	clubs, err := service.List(c.UserContext(), cc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list clubs", err)
	}
	return helper.Render(c, "manage_clubs", fiber.Map{
		"Title": "Clubs",
		"Clubs": clubs,
	})
}

// POST /admin/create_club
func (cc *ClubController) Create(c *fiber.Ctx) error {
	req, msg := parseClubRequest(c)
	if msg != "" {
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashError, msg)
	}
	club := &models.Club{}
	req.ApplyTo(club)

	switch err := service.Create(c.UserContext(), cc.DB, club); {
	case err == nil:
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashSuccess, "Club created successfully")
	case errors.Is(err, service.ErrClubNameTaken):
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashError, "Club name already exists")
	default:
		return helper.FailWithFlash(c, clubsPath, "create club", err)
	}
}

// POST /admin/update_club/:id
func (cc *ClubController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	club, err := service.Get(c.UserContext(), cc.DB, id)
	if err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			return fiber.ErrNotFound
		}
		return helper.FailWithFlash(c, clubsPath, "load club", err)
	}

	req, msg := parseClubRequest(c)
	if msg != "" {
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashError, msg)
	}
	req.ApplyTo(club)

	switch err := service.Save(c.UserContext(), cc.DB, club); {
	case err == nil:
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashSuccess, "Club updated successfully")
	case errors.Is(err, service.ErrClubNameTaken):
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashError, "Club name already exists")
	default:
		return helper.FailWithFlash(c, clubsPath, "update club", err)
	}
}

// POST /admin/delete_club/:id
func (cc *ClubController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	switch err := service.Delete(c.UserContext(), cc.DB, id); {
	case err == nil:
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashSuccess, "Club deleted successfully")
	case errors.Is(err, service.ErrClubNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, service.ErrClubInUse):
		return helper.RedirectWithFlash(c, clubsPath, helper.FlashError, "Cannot delete club with associated teams or users")
	default:
		return helper.FailWithFlash(c, clubsPath, "delete club", err)
	}
}

// parseClubRequest returns a flash message when the form is unusable.
func parseClubRequest(c *fiber.Ctx) (*dto.ClubRequest, string) {
	var req dto.ClubRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "Invalid form data"
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		if req.Name == "" {
			return nil, "Club name is required"
		}
		return nil, helper.ValidationMessage(err)
	}
	return &req, ""
}
