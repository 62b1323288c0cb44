package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/organizations/programs/service"
	"snowschool_backend/internals/models"
	"snowschool_backend/internals/testutil"
)

func TestDeleteProgram(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)

	coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach)
	used := testutil.CreateProgram(t, db, "U12")
	free := testutil.CreateProgram(t, db, "U14")
	testutil.CreateTeam(t, db, "U12 Saturday", used.ID, coach.ID)
	athlete := testutil.CreateUser(t, db, "athlete", constants.RoleStudent, func(u *models.User) {
		u.ProgramID = &free.ID
	})

	assert.ErrorIs(t, service.Delete(ctx, db, used.ID), service.ErrProgramInUse)
	_, err := service.Get(ctx, db, used.ID)
	assert.NoError(t, err, "blocked program is kept")

	require.NoError(t, service.Delete(ctx, db, free.ID))
	_, err = service.Get(ctx, db, free.ID)
	assert.ErrorIs(t, err, service.ErrProgramNotFound)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, athlete.ID).Error)
	assert.Nil(t, reloaded.ProgramID)

	assert.ErrorIs(t, service.Delete(ctx, db, 999), service.ErrProgramNotFound)
}

func TestListPrograms(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)

	coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach)
	u14 := testutil.CreateProgram(t, db, "U14")
	u12 := testutil.CreateProgram(t, db, "U12")
	testutil.CreateTeam(t, db, "A", u12.ID, coach.ID)
	testutil.CreateTeam(t, db, "B", u12.ID, coach.ID)

	rows, err := service.List(ctx, db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "U12", rows[0].Name)
	assert.Equal(t, int64(2), rows[0].TeamCount)
	assert.Equal(t, u14.ID, rows[1].ID)
	assert.Equal(t, int64(0), rows[1].TeamCount)
}
