package dto

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"snowschool_backend/internals/constants"
	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

/* =========================
   REQUEST
   ========================= */

// ProgramRequest is the create/update program form.
type ProgramRequest struct {
	Name           string `form:"name" validate:"required,max=100"`
	Description    string `form:"description"`
	FrequencyType  string `form:"frequency_type" validate:"omitempty,oneof=daily weekly consecutive custom"`
	FrequencyValue string `form:"frequency_value" validate:"omitempty,numeric"`
	FrequencyDays  string `form:"frequency_days" validate:"max=50"`
	StartDate      string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string `form:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

var ErrInvalidFrequencyValue = errors.New("Frequency value must be a positive number")

func (r *ProgramRequest) Normalize() {
	r.Name = helper.CleanString(r.Name)
	r.Description = helper.CleanString(r.Description)
	r.FrequencyType = helper.CleanString(r.FrequencyType)
	r.FrequencyValue = helper.CleanString(r.FrequencyValue)
	r.FrequencyDays = helper.CleanString(r.FrequencyDays)
	r.StartDate = helper.CleanString(r.StartDate)
	r.EndDate = helper.CleanString(r.EndDate)
	if r.FrequencyType == "" {
		r.FrequencyType = constants.FrequencyConsecutive
	}
}

// ApplyTo copies the form onto p. Dates left empty keep the stored value.
func (r ProgramRequest) ApplyTo(p *models.Program) error {
	value := constants.DefaultFrequencyValue
	if r.FrequencyValue != "" {
		n, err := strconv.Atoi(r.FrequencyValue)
		if err != nil || n <= 0 {
			return ErrInvalidFrequencyValue
		}
		value = n
	}

	p.Name = r.Name
	p.Description = optional(r.Description)
	p.FrequencyType = r.FrequencyType
	p.FrequencyValue = value
	p.FrequencyDays = models.ParseWeekDays(r.FrequencyDays)

	if r.StartDate != "" {
		d, err := helper.ParseDate(r.StartDate)
		if err != nil {
			return err
		}
		p.StartDate = dateOf(d)
	}
	if r.EndDate != "" {
		d, err := helper.ParseDate(r.EndDate)
		if err != nil {
			return err
		}
		p.EndDate = dateOf(d)
	}
	return nil
}

func (r ProgramRequest) ToModel() (*models.Program, error) {
	p := &models.Program{}
	if err := r.ApplyTo(p); err != nil {
		return nil, err
	}
	return p, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func dateOf(t time.Time) *datatypes.Date {
	d := datatypes.Date(t)
	return &d
}
