package seeds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
	"snowschool_backend/internals/testutil"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedDemo(t *testing.T) {
	db := testutil.PrepareDB(t)

	require.NoError(t, RunAllSeeds(db, ProfileDemo))
	assert.Equal(t, int64(1), countRows(t, db, &models.Club{}))
	assert.Equal(t, int64(4), countRows(t, db, &models.Program{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.User{}), "no Snowflakes program, so no demo team or student")
	assert.Equal(t, int64(0), countRows(t, db, &models.Team{}))

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, constants.RoleAdmin, admin.UserType)
	require.NotNil(t, admin.ClubID)
	assert.NoError(t, authHelper.CheckPasswordHash(admin.PasswordHash, "admin123"))

	// Idempotent
	require.NoError(t, SeedDemo(db))
	assert.Equal(t, int64(4), countRows(t, db, &models.Program{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.User{}))
}

func TestSeedDemoWithSnowflakes(t *testing.T) {
	db := testutil.PrepareDB(t)
	testutil.CreateProgram(t, db, "Snowflakes")

	require.NoError(t, SeedDemo(db))

	var coach, student models.User
	require.NoError(t, db.Where("username = ?", "coach1").First(&coach).Error)
	require.NoError(t, db.Where("username = ?", "student1").First(&student).Error)

	var team models.Team
	require.NoError(t, db.Where("name = ?", "Snowflakes Demo Team").First(&team).Error)
	assert.Equal(t, coach.ID, team.CoachID)
	assert.Equal(t, constants.TeamTypeTeam, team.TeamType)

	require.NotNil(t, student.TeamID)
	assert.Equal(t, team.ID, *student.TeamID)
	require.NotNil(t, student.CoachID)
	assert.Equal(t, coach.ID, *student.CoachID)
	assert.True(t, student.ParticipatesSnowStars)
}

func TestSeedNeon(t *testing.T) {
	db := testutil.PrepareDB(t)

	require.NoError(t, RunAllSeeds(db, ProfileNeon))
	assert.Equal(t, int64(3), countRows(t, db, &models.User{}))
	assert.Equal(t, int64(6), countRows(t, db, &models.Program{}))

	var lit models.Program
	require.NoError(t, db.Where("name = ?", "LIT").First(&lit).Error)
	assert.Equal(t, models.WeekDays{"monday", "wednesday", "friday"}, lit.FrequencyDays)
	assert.NotNil(t, lit.StartDate)

	var instructor models.User
	require.NoError(t, db.Where("username = ?", "instructor1").First(&instructor).Error)
	assert.NoError(t, authHelper.CheckPasswordHash(instructor.PasswordHash, "password123"))

	require.NoError(t, SeedNeon(db))
	assert.Equal(t, int64(3), countRows(t, db, &models.User{}))
	assert.Equal(t, int64(6), countRows(t, db, &models.Program{}))
}

func TestSeedNeonSkipsPopulatedTables(t *testing.T) {
	db := testutil.PrepareDB(t)
	testutil.CreateUser(t, db, "someone", constants.RoleCoach)

	require.NoError(t, SeedNeon(db))
	assert.Equal(t, int64(1), countRows(t, db, &models.User{}))
	assert.Equal(t, int64(6), countRows(t, db, &models.Program{}))
}

func TestRunAllSeedsUnknownProfile(t *testing.T) {
	db := testutil.PrepareDB(t)
	assert.Error(t, RunAllSeeds(db, "prod"))
}
