package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowschool_backend/internals/constants"
)

func TestRegisterRequest(t *testing.T) {
	req := RegisterRequest{
		Username:          " student1 ",
		Email:             " John@Example.com",
		Password:          "secret",
		FullName:          "John  Doe ",
		UserType:          "Student",
		TeamID:            "3",
		ClubID:            "",
		CoachID:           "abc",
		ParticipatesSkier: "on",
	}
	req.Normalize()
	assert.Equal(t, "student1", req.Username)
	assert.Equal(t, "john@example.com", req.Email)
	assert.Equal(t, constants.RoleStudent, req.UserType)

	v := validator.New()
	assert.Error(t, v.Struct(req), "coach_id must be numeric")

	req.CoachID = "2"
	require.NoError(t, v.Struct(req))

	in := req.ToInput()
	require.NotNil(t, in.TeamID)
	assert.Equal(t, uint(3), *in.TeamID)
	assert.Nil(t, in.ClubID)
	assert.True(t, in.ParticipatesSkier)
	assert.False(t, in.ParticipatesSnowStars)
}

func TestAthleteRequestIsStudent(t *testing.T) {
	req := AthleteRequest{Username: "a", Email: "a@example.com", Password: "p", FullName: "A", ParticipatesSnowStars: "on"}
	in := req.ToInput()
	assert.Equal(t, constants.RoleStudent, in.UserType)
	assert.True(t, in.ParticipatesSnowStars)
	assert.Nil(t, in.TeamID)
}
