package dto

import (
	"strconv"
	"strings"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/users/users/service"
	helper "snowschool_backend/internals/helpers"
)

/* =========================
   REQUEST
   ========================= */

// RegisterRequest is the admin "create user" form.
type RegisterRequest struct {
	Username                string `form:"username" validate:"required,max=80"`
	Email                   string `form:"email" validate:"required,email,max=120"`
	Password                string `form:"password" validate:"required"`
	FullName                string `form:"full_name" validate:"required,max=100"`
	UserType                string `form:"user_type" validate:"required,oneof=admin coach student instructor"`
	CoachID                 string `form:"coach_id" validate:"omitempty,numeric"`
	TeamID                  string `form:"team_id" validate:"omitempty,numeric"`
	ClubID                  string `form:"club_id" validate:"omitempty,numeric"`
	ProgramID               string `form:"program_id" validate:"omitempty,numeric"`
	ParticipatesSkier       string `form:"participates_skier"`
	ParticipatesSnowboarder string `form:"participates_snowboarder"`
	ParticipatesSnowStars   string `form:"participates_snow_stars"`
}

func (r *RegisterRequest) Normalize() {
	r.Username = helper.CleanString(r.Username)
	r.Email = strings.ToLower(helper.CleanString(r.Email))
	r.FullName = helper.CleanString(r.FullName)
	r.UserType = strings.ToLower(helper.CleanString(r.UserType))
	r.CoachID = helper.CleanString(r.CoachID)
	r.TeamID = helper.CleanString(r.TeamID)
	r.ClubID = helper.CleanString(r.ClubID)
	r.ProgramID = helper.CleanString(r.ProgramID)
}

func (r RegisterRequest) ToInput() service.CreateUserInput {
	return service.CreateUserInput{
		Username:                r.Username,
		Email:                   r.Email,
		Password:                r.Password,
		FullName:                r.FullName,
		UserType:                r.UserType,
		CoachID:                 optionalID(r.CoachID),
		TeamID:                  optionalID(r.TeamID),
		ClubID:                  optionalID(r.ClubID),
		ProgramID:               optionalID(r.ProgramID),
		ParticipatesSkier:       r.ParticipatesSkier == "on",
		ParticipatesSnowboarder: r.ParticipatesSnowboarder == "on",
		ParticipatesSnowStars:   r.ParticipatesSnowStars == "on",
	}
}

// AthleteRequest is the quick "add athlete" form of the athletes page.
type AthleteRequest struct {
	Username              string `form:"username" validate:"required,max=80"`
	Email                 string `form:"email" validate:"required,email,max=120"`
	Password              string `form:"password" validate:"required"`
	FullName              string `form:"full_name" validate:"required,max=100"`
	ClubID                string `form:"club_id" validate:"omitempty,numeric"`
	TeamID                string `form:"team_id" validate:"omitempty,numeric"`
	CoachID               string `form:"coach_id" validate:"omitempty,numeric"`
	ParticipatesSnowStars string `form:"participates_snow_stars"`
}

func (r *AthleteRequest) Normalize() {
	r.Username = helper.CleanString(r.Username)
	r.Email = strings.ToLower(helper.CleanString(r.Email))
	r.FullName = helper.CleanString(r.FullName)
	r.ClubID = helper.CleanString(r.ClubID)
	r.TeamID = helper.CleanString(r.TeamID)
	r.CoachID = helper.CleanString(r.CoachID)
}

func (r AthleteRequest) ToInput() service.CreateUserInput {
	return service.CreateUserInput{
		Username:              r.Username,
		Email:                 r.Email,
		Password:              r.Password,
		FullName:              r.FullName,
		UserType:              constants.RoleStudent,
		ClubID:                optionalID(r.ClubID),
		TeamID:                optionalID(r.TeamID),
		CoachID:               optionalID(r.CoachID),
		ParticipatesSnowStars: r.ParticipatesSnowStars == "on",
	}
}

func optionalID(s string) *uint {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}
