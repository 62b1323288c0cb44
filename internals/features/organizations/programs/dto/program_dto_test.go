package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/models"
)

func TestProgramRequestDefaults(t *testing.T) {
	r := ProgramRequest{Name: "  U12 "}
	r.Normalize()
	require.NoError(t, validator.New().Struct(r))

	p, err := r.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "U12", p.Name)
	assert.Nil(t, p.Description)
	assert.Equal(t, constants.FrequencyConsecutive, p.FrequencyType)
	assert.Equal(t, constants.DefaultFrequencyValue, p.FrequencyValue)
	assert.Nil(t, p.FrequencyDays)
	assert.Nil(t, p.StartDate)
}

func TestProgramRequestValidation(t *testing.T) {
	v := validator.New()
	assert.Error(t, v.Struct(ProgramRequest{}))
	assert.Error(t, v.Struct(ProgramRequest{Name: "x", FrequencyType: "monthly"}))
	assert.Error(t, v.Struct(ProgramRequest{Name: "x", StartDate: "01/12/2024"}))
	assert.NoError(t, v.Struct(ProgramRequest{Name: "x", FrequencyType: "weekly", StartDate: "2024-12-01"}))

	_, err := ProgramRequest{Name: "x", FrequencyType: "daily", FrequencyValue: "0"}.ToModel()
	assert.ErrorIs(t, err, ErrInvalidFrequencyValue)
}

func TestProgramRequestApplyKeepsDates(t *testing.T) {
	start := datatypes.Date(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	p := &models.Program{Name: "U14", StartDate: &start}

	r := ProgramRequest{Name: "U14", FrequencyType: "weekly", FrequencyValue: "6", FrequencyDays: "saturday, sunday", EndDate: "2025-03-30"}
	require.NoError(t, r.ApplyTo(p))

	assert.Equal(t, &start, p.StartDate)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC), time.Time(*p.EndDate))
	assert.Equal(t, 6, p.FrequencyValue)
	assert.Equal(t, models.WeekDays{"saturday", "sunday"}, p.FrequencyDays)
}
