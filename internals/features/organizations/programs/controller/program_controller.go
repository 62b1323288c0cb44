package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/organizations/programs/dto"
	"snowschool_backend/internals/features/organizations/programs/service"
	helper "snowschool_backend/internals/helpers"
)

const programsPath = "/admin/programs"

var validate = validator.New()

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// GET /admin/programs
func (pc *ProgramController) List(c *fiber.Ctx) error {
	rows, err := service.List(c.UserContext(), pc.DB)
	if err != nil {
		return helper.FailWithFlash(c, "/dashboard", "list programs", err)
	}
	return helper.Render(c, "manage_programs", fiber.Map{
		"Title":          "Programs",
		"Programs":       rows,
		"FrequencyTypes": constants.FrequencyTypes,
	})
}

// POST /admin/create_program
func (pc *ProgramController) Create(c *fiber.Ctx) error {
	req, err := parseProgramRequest(c)
	if err != nil {
		return helper.RedirectWithFlash(c, programsPath, helper.FlashError, err.Error())
	}
	program, err := req.ToModel()
	if err != nil {
		return helper.RedirectWithFlash(c, programsPath, helper.FlashError, err.Error())
	}
	if err := service.Create(c.UserContext(), pc.DB, program); err != nil {
		return helper.FailWithFlash(c, programsPath, "create program", err)
	}
	return helper.RedirectWithFlash(c, programsPath, helper.FlashSuccess, "Program created successfully")
}

// POST /admin/update_program/:id
func (pc *ProgramController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	program, err := service.Get(c.UserContext(), pc.DB, id)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			return fiber.ErrNotFound
		}
		return helper.FailWithFlash(c, programsPath, "load program", err)
	}

	req, err := parseProgramRequest(c)
	if err != nil {
		return helper.RedirectWithFlash(c, programsPath, helper.FlashError, err.Error())
	}
	if err := req.ApplyTo(program); err != nil {
		return helper.RedirectWithFlash(c, programsPath, helper.FlashError, err.Error())
	}
	if err := service.Save(c.UserContext(), pc.DB, program); err != nil {
		return helper.FailWithFlash(c, programsPath, "update program", err)
	}
	return helper.RedirectWithFlash(c, programsPath, helper.FlashSuccess, "Program updated successfully")
}

// POST /admin/delete_program/:id
func (pc *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return err
	}
	switch err := service.Delete(c.UserContext(), pc.DB, id); {
	case err == nil:
		return helper.RedirectWithFlash(c, programsPath, helper.FlashSuccess, "Program deleted successfully")
	case errors.Is(err, service.ErrProgramNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, service.ErrProgramInUse):
		return helper.RedirectWithFlash(c, programsPath, helper.FlashError, "Cannot delete program that has teams assigned")
	default:
		return helper.FailWithFlash(c, programsPath, "delete program", err)
	}
}

func parseProgramRequest(c *fiber.Ctx) (*dto.ProgramRequest, error) {
	var req dto.ProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.New("Invalid form data")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return nil, errors.New(helper.ValidationMessage(err))
	}
	return &req, nil
}
