package dto

import (
	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

type ClubRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Description string `form:"description"`
}

func (r *ClubRequest) Normalize() {
	r.Name = helper.CleanString(r.Name)
	r.Description = helper.CleanString(r.Description)
}

func (r ClubRequest) ApplyTo(club *models.Club) {
	club.Name = r.Name
	club.Description = nil
	if r.Description != "" {
		d := r.Description
		club.Description = &d
	}
}
