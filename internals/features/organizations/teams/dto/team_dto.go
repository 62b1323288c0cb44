package dto

import (
	"strconv"

	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

type TeamRequest struct {
	Name      string `form:"name" validate:"required,max=100"`
	ProgramID string `form:"program_id" validate:"required,numeric"`
	CoachID   string `form:"coach_id" validate:"required,numeric"`
	ClubID    string `form:"club_id" validate:"omitempty,numeric"`
}

func (r *TeamRequest) Normalize() {
	r.Name = helper.CleanString(r.Name)
	r.ProgramID = helper.CleanString(r.ProgramID)
	r.CoachID = helper.CleanString(r.CoachID)
	r.ClubID = helper.CleanString(r.ClubID)
}

// ApplyTo copies a validated form onto team.
func (r TeamRequest) ApplyTo(team *models.Team) {
	team.Name = r.Name
	team.ProgramID = parseUint(r.ProgramID)
	team.CoachID = parseUint(r.CoachID)
	team.ClubID = nil
	if r.ClubID != "" {
		id := parseUint(r.ClubID)
		team.ClubID = &id
	}
	// the loaded associations no longer match the ids
	team.Program = nil
	team.Club = nil
}

func parseUint(s string) uint {
	n, _ := strconv.ParseUint(s, 10, 64)
	return uint(n)
}
