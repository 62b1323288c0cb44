package models

import "time"

// Team.coach_id has no GORM association: User carries a coach_id column as
// well, which would make GORM guess a has-one relation. The constraint is added
// by database.Migrate.
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	ProgramID uint      `gorm:"not null;index:idx_team_program" json:"program_id"`
	CoachID   uint      `gorm:"not null;index:idx_team_coach" json:"coach_id"`
	ClubID    *uint     `gorm:"index:idx_team_club" json:"club_id,omitempty"`
	TeamType  string    `gorm:"size:20;not null" json:"team_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Club    *Club    `gorm:"foreignKey:ClubID" json:"club,omitempty"`
}

func (Team) TableName() string {
	return "team"
}
