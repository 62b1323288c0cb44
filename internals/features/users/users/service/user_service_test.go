package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/users/users/service"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
	"snowschool_backend/internals/testutil"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)

	coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach)
	program := testutil.CreateProgram(t, db, "U12")
	team := testutil.CreateTeam(t, db, "U12 A", program.ID, coach.ID)

	student, err := service.Create(ctx, db, service.CreateUserInput{
		Username:              "student1",
		Email:                 "student@example.com",
		Password:              "student123",
		FullName:              "John Doe",
		UserType:              constants.RoleStudent,
		CoachID:               &coach.ID,
		TeamID:                &team.ID,
		ParticipatesSnowStars: true,
	})
	require.NoError(t, err)
	assert.True(t, student.ParticipatesSnowStars)
	require.NotNil(t, student.TeamID)
	assert.Equal(t, team.ID, *student.TeamID)
	assert.NoError(t, authHelper.CheckPasswordHash(student.PasswordHash, "student123"))

	instructor, err := service.Create(ctx, db, service.CreateUserInput{
		Username:          "instructor1",
		Email:             "instructor1@example.com",
		Password:          "pw",
		FullName:          "Ivy",
		UserType:          constants.RoleInstructor,
		TeamID:            &team.ID,
		ParticipatesSkier: true,
	})
	require.NoError(t, err)
	assert.Nil(t, instructor.TeamID, "team is only kept for students")
	assert.False(t, instructor.ParticipatesSkier)
}

func TestCreateUserDuplicates(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)
	testutil.CreateUser(t, db, "coach1", constants.RoleCoach)

	in := service.CreateUserInput{Username: "coach1", Email: "new@example.com", Password: "pw", FullName: "X", UserType: constants.RoleCoach}
	_, err := service.Create(ctx, db, in)
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	in.Username = "coach2"
	in.Email = "COACH1@example.com"
	_, err = service.Create(ctx, db, in)
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	in.Email = "coach2@example.com"
	in.UserType = "root"
	_, err = service.Create(ctx, db, in)
	assert.ErrorIs(t, err, service.ErrInvalidRole)

	var n int64
	require.NoError(t, db.Model(&models.User{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestAthlete(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)
	coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach)
	student := testutil.CreateUser(t, db, "student1", constants.RoleStudent, func(u *models.User) { u.CoachID = &coach.ID })

	got, err := service.Athlete(ctx, db, student.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Coach)
	assert.Equal(t, "coach1", got.Coach.Username)

	_, err = service.Athlete(ctx, db, coach.ID)
	assert.ErrorIs(t, err, service.ErrNotAthlete)
	_, err = service.Athlete(ctx, db, 999)
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	athletes, err := service.Athletes(ctx, db)
	require.NoError(t, err)
	assert.Len(t, athletes, 1)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)
	admin := testutil.CreateUser(t, db, "admin", constants.RoleAdmin)

	require.NoError(t, service.ResetPassword(ctx, db, "admin", "n3w-pass"))
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, admin.ID).Error)
	assert.NoError(t, authHelper.CheckPasswordHash(reloaded.PasswordHash, "n3w-pass"))

	assert.ErrorIs(t, service.ResetPassword(ctx, db, "ghost", "x"), service.ErrUserNotFound)
}
