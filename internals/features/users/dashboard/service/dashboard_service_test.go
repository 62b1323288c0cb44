package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/users/dashboard/service"
	"snowschool_backend/internals/models"
	"snowschool_backend/internals/testutil"
)

func TestCoachDashboard(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)

	coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach)
	other := testutil.CreateUser(t, db, "coach2", constants.RoleCoach)
	program := testutil.CreateProgram(t, db, "U12")
	mine := testutil.CreateTeam(t, db, "Mine", program.ID, coach.ID)
	theirs := testutil.CreateTeam(t, db, "Theirs", program.ID, other.ID)

	student := testutil.CreateUser(t, db, "student1", constants.RoleStudent, func(u *models.User) { u.TeamID = &mine.ID })
	testutil.CreateUser(t, db, "student2", constants.RoleStudent, func(u *models.User) { u.TeamID = &theirs.ID })
	testutil.CreateUser(t, db, "instructor1", constants.RoleInstructor, func(u *models.User) { u.TeamID = &mine.ID })

	for level := 1; level <= 6; level++ {
		require.NoError(t, db.Omit("Student").Create(&models.Evaluation{
			StudentID: student.ID, CoachID: coach.ID, SportType: constants.SportSnowStars,
			Level: level, SkillsScore: 3, AttitudeScore: 3, PerformanceScore: 3,
			CreatedAt: time.Now().Add(time.Duration(level) * time.Minute),
		}).Error)
	}

	data, err := service.Coach(ctx, db, coach.ID)
	require.NoError(t, err)
	require.Len(t, data.Teams, 1)
	require.Len(t, data.Students, 1)
	assert.Equal(t, "student1", data.Students[0].Username)
	require.Len(t, data.Evaluations, 5)
	assert.Equal(t, 6, data.Evaluations[0].Level)

	empty, err := service.Coach(ctx, db, other.ID)
	require.NoError(t, err)
	assert.Len(t, empty.Students, 1)
	assert.Empty(t, empty.Evaluations)
}

func TestStudentDashboardOrderedByLevel(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)
	coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach)
	student := testutil.CreateUser(t, db, "student1", constants.RoleStudent)
	for _, level := range []int{3, 1, 2} {
		require.NoError(t, db.Omit("Student").Create(&models.Evaluation{
			StudentID: student.ID, CoachID: coach.ID, SportType: constants.SportSnowStars,
			Level: level, CreatedAt: time.Now(),
		}).Error)
	}

	evals, err := service.Student(ctx, db, student.ID)
	require.NoError(t, err)
	require.Len(t, evals, 3)
	assert.Equal(t, 1, evals[0].Level)
	assert.Equal(t, 3, evals[2].Level)

	users, err := service.AdminUsers(ctx, db)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
