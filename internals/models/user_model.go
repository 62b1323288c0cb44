package models

import (
	"time"

	"snowschool_backend/internals/constants"
)

type User struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	Username                string    `gorm:"size:80;not null;uniqueIndex:ux_user_username" json:"username"`
	Email                   string    `gorm:"size:120;not null;uniqueIndex:ux_user_email" json:"email"`
	PasswordHash            string    `gorm:"size:255;not null" json:"-"`
	FullName                string    `gorm:"size:100;not null" json:"full_name"`
	UserType                string    `gorm:"size:20;not null" json:"user_type"`
	ClubID                  *uint     `gorm:"index:idx_user_club" json:"club_id,omitempty"`
	ParticipatesSkier       bool      `json:"participates_skier"`
	ParticipatesSnowboarder bool      `json:"participates_snowboarder"`
	ParticipatesSnowStars   bool      `json:"participates_snow_stars"`
	CoachID                 *uint     `gorm:"index:idx_user_coach" json:"coach_id,omitempty"`
	TeamID                  *uint     `gorm:"index:idx_user_team" json:"team_id,omitempty"`
	ProgramID               *uint     `json:"program_id,omitempty"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"created_at"`

	Club    *Club    `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	Coach   *User    `gorm:"foreignKey:CoachID" json:"coach,omitempty"`
	Team    *Team    `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

func (User) TableName() string {
	return "user"
}

func (u *User) IsAdmin() bool   { return u.UserType == constants.RoleAdmin }
func (u *User) IsCoach() bool   { return u.UserType == constants.RoleCoach }
func (u *User) IsStudent() bool { return u.UserType == constants.RoleStudent }

// Participates reports whether the user is enrolled in the given sport.
func (u *User) Participates(sport string) bool {
	switch sport {
	case constants.SportSkier:
		return u.ParticipatesSkier
	case constants.SportSnowboarder:
		return u.ParticipatesSnowboarder
	case constants.SportSnowStars:
		return u.ParticipatesSnowStars
	}
	return false
}

// AvailableSports returns the enabled sports the user participates in.
func (u *User) AvailableSports() []string {
	var out []string
	for _, s := range constants.EnabledSports {
		if u.Participates(s) {
			out = append(out, s)
		}
	}
	return out
}
