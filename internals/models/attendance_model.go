package models

import (
	"time"

	"gorm.io/datatypes"
)

type Attendance struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	StudentID   uint           `gorm:"not null;uniqueIndex:ux_attendance_session,priority:1" json:"student_id"`
	TeamID      uint           `gorm:"not null;uniqueIndex:ux_attendance_session,priority:2" json:"team_id"`
	SessionDate datatypes.Date `gorm:"not null;uniqueIndex:ux_attendance_session,priority:3" json:"session_date"`
	Attended    bool           `json:"attended"`
	Notes       string         `gorm:"type:text" json:"notes"`
	RecordedBy  uint           `gorm:"not null" json:"recorded_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`

	Student  *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Team     *Team `gorm:"foreignKey:TeamID" json:"-"`
	Recorder *User `gorm:"foreignKey:RecordedBy" json:"recorder,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}
