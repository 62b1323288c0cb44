package testutil

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"snowschool_backend/internals/constants"
	database "snowschool_backend/internals/databases"
	"snowschool_backend/internals/models"
)

// PrepareDB opens a private in-memory SQLite database with every table migrated.
func PrepareDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.TunePool(db)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateClub(t *testing.T, db *gorm.DB, name string) models.Club {
	t.Helper()
	club := models.Club{Name: name}
	require.NoError(t, db.Create(&club).Error)
	return club
}

func CreateProgram(t *testing.T, db *gorm.DB, name string) models.Program {
	t.Helper()
	start := datatypes.Date(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	program := models.Program{
		Name:           name,
		FrequencyType:  constants.FrequencyWeekly,
		FrequencyValue: constants.DefaultFrequencyValue,
		FrequencyDays:  models.WeekDays{"saturday"},
		StartDate:      &start,
	}
	require.NoError(t, db.Create(&program).Error)
	return program
}

func CreateTeam(t *testing.T, db *gorm.DB, name string, programID, coachID uint) models.Team {
	t.Helper()
	team := models.Team{
		Name:      name,
		ProgramID: programID,
		CoachID:   coachID,
		TeamType:  constants.TeamTypeTeam,
	}
	require.NoError(t, db.Omit("Program", "Club").Create(&team).Error)
	return team
}

// CreateUser stores a user with password "<username>-pass". opts may adjust
// the record before it is saved.
func CreateUser(t *testing.T, db *gorm.DB, username, role string, opts ...func(*models.User)) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(Password(username)), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		FullName:     username,
		UserType:     role,
	}
	for _, opt := range opts {
		opt(&user)
	}
	require.NoError(t, db.Omit("Club", "Coach", "Team", "Program").Create(&user).Error)
	return user
}

func Password(username string) string {
	return username + "-pass"
}

func UintPtr(v uint) *uint { return &v }

func FloatPtr(v float64) *float64 { return &v }
