package service

import (
	"context"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/models"
)

// RecentLimit is how many records the attendance page shows.
const RecentLimit = 50

// Mark is the submitted state of one rostered student.
type Mark struct {
	Attended bool
	Notes    string
}

// Roster returns the students assigned to a team.
func Roster(ctx context.Context, db *gorm.DB, teamID uint) ([]models.User, error) {
	var students []models.User
	err := db.WithContext(ctx).
		Where("team_id = ? AND user_type = ?", teamID, constants.RoleStudent).
		Order("full_name ASC").
		Find(&students).Error
	return students, err
}

// Recent returns the latest records of a team, newest session first.
func Recent(ctx context.Context, db *gorm.DB, teamID uint, limit int) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := db.WithContext(ctx).
		Preload("Student").Preload("Recorder").
		Where("team_id = ?", teamID).
		Order("session_date DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Record upserts one row per rostered student for the session date. Each
// upsert stands on its own; an error stops the batch and keeps the rows
// already written.
func Record(ctx context.Context, db *gorm.DB, teamID, recordedBy uint, day time.Time, marks func(studentID uint) Mark) (int, error) {
	students, err := Roster(ctx, db, teamID)
	if err != nil {
		return 0, err
	}

	date := datatypes.Date(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC))
	for i, s := range students {
		m := marks(s.ID)
		row := models.Attendance{
			StudentID:   s.ID,
			TeamID:      teamID,
			SessionDate: date,
			Attended:    m.Attended,
			Notes:       m.Notes,
			RecordedBy:  recordedBy,
		}
		err := db.WithContext(ctx).
			Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "student_id"}, {Name: "team_id"}, {Name: "session_date"}},
				DoUpdates: clause.AssignmentColumns([]string{"attended", "notes", "recorded_by"}),
			}).
			Create(&row).Error
		if err != nil {
			return i, err
		}
	}
	log.Printf("[INFO] attendance team=%d date=%s: %d student(s) by user=%d", teamID, day.Format(constants.DateLayout), len(students), recordedBy)
	return len(students), nil
}
