package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/organizations/clubs/service"
	"snowschool_backend/internals/models"
	"snowschool_backend/internals/testutil"
)

func TestCreateClubDuplicateName(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)

	require.NoError(t, service.Create(ctx, db, &models.Club{Name: "Alpine Ontario"}))
	assert.ErrorIs(t, service.Create(ctx, db, &models.Club{Name: "Alpine Ontario"}), service.ErrClubNameTaken)
}

func TestDeleteClub(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)

	withUser := testutil.CreateClub(t, db, "Alpine Ontario")
	withTeam := testutil.CreateClub(t, db, "Mount St. Louis")
	empty := testutil.CreateClub(t, db, "Blue Mountain")

	coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach, func(u *models.User) {
		u.ClubID = &withUser.ID
	})
	program := testutil.CreateProgram(t, db, "U12")
	team := testutil.CreateTeam(t, db, "U12 A", program.ID, coach.ID)
	require.NoError(t, db.Model(&team).Update("club_id", withTeam.ID).Error)

	assert.ErrorIs(t, service.Delete(ctx, db, withUser.ID), service.ErrClubInUse)
	assert.ErrorIs(t, service.Delete(ctx, db, withTeam.ID), service.ErrClubInUse)
	require.NoError(t, service.Delete(ctx, db, empty.ID))
	assert.ErrorIs(t, service.Delete(ctx, db, empty.ID), service.ErrClubNotFound)

	clubs, err := service.List(ctx, db)
	require.NoError(t, err)
	assert.Len(t, clubs, 2)
}
