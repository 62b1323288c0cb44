package migration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/models"
	"snowschool_backend/internals/testutil"
)

func programNames(t *testing.T, res *Result) []string {
	t.Helper()
	var names []string
	for _, p := range res.Programs {
		names = append(names, p.Name)
	}
	return names
}

func TestRunOnEmptyDatabase(t *testing.T) {
	db := testutil.PrepareDB(t)
	var out bytes.Buffer
	m := &Migrator{DB: db, Out: &out}

	res, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Removed)
	assert.Equal(t, 4, res.Created)
	assert.Equal(t, []string{"U12", "U14", "U16", "U18/U21"}, programNames(t, res))
	assert.Contains(t, out.String(), "Total programs in database: 4")
	assert.Contains(t, out.String(), "  - U12: 0 team(s)")

	var u12 models.Program
	require.NoError(t, db.Where("name = ?", "U12").First(&u12).Error)
	assert.Equal(t, constants.FrequencyWeekly, u12.FrequencyType)
	assert.Equal(t, models.WeekDays{"saturday"}, u12.FrequencyDays)

	// A second run creates nothing.
	out.Reset()
	res, err = m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Contains(t, out.String(), "✓ 'U12' already exists")
	assert.Contains(t, out.String(), "✓ All new programs already exist")
}

func TestRunRemovesUnusedLegacyPrograms(t *testing.T) {
	db := testutil.PrepareDB(t)
	snowflakes := testutil.CreateProgram(t, db, "Snowflakes")
	testutil.CreateProgram(t, db, "Snowflakes")
	testutil.CreateProgram(t, db, "LIT")
	testutil.CreateProgram(t, db, "Masters")
	student := testutil.CreateUser(t, db, "student1", constants.RoleStudent, func(u *models.User) { u.ProgramID = &snowflakes.ID })

	var out bytes.Buffer
	res, err := (&Migrator{DB: db, Out: &out}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Removed)
	assert.Equal(t, []string{"Masters", "U12", "U14", "U16", "U18/U21"}, programNames(t, res))
	assert.Contains(t, out.String(), "✓ Removed 3 old program(s)")
	assert.NotContains(t, out.String(), "Do you want to continue?")

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, student.ID).Error)
	assert.Nil(t, reloaded.ProgramID)
}

func TestRunWithLinkedTeams(t *testing.T) {
	setup := func(t *testing.T) *Migrator {
		db := testutil.PrepareDB(t)
		coach := testutil.CreateUser(t, db, "coach1", constants.RoleCoach)
		adult := testutil.CreateProgram(t, db, "Adult")
		testutil.CreateTeam(t, db, "Sunday Adults", adult.ID, coach.ID)
		return &Migrator{DB: db, Out: &bytes.Buffer{}}
	}

	t.Run("declined", func(t *testing.T) {
		m := setup(t)
		var asked string
		m.Confirm = func(prompt string) (bool, error) { asked = prompt; return false, nil }

		_, err := m.Run(context.Background())
		assert.ErrorIs(t, err, ErrCancelled)
		assert.Equal(t, confirmPrompt, asked)
		out := m.Out.(*bytes.Buffer).String()
		assert.Contains(t, out, "Found 1 team(s) associated with 'Adult':")
		assert.Contains(t, out, "- Sunday Adults (ID: 1)")
		assert.Contains(t, out, "Migration cancelled.")

		var n int64
		require.NoError(t, m.DB.Model(&models.Program{}).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})

	t.Run("confirmed but still linked", func(t *testing.T) {
		m := setup(t)
		m.Confirm = func(string) (bool, error) { return true, nil }

		_, err := m.Run(context.Background())
		assert.ErrorIs(t, err, ErrTeamsStillLinked)
		assert.Contains(t, m.Out.(*bytes.Buffer).String(), "❌ ERROR: Still 1 team(s) associated with old programs!")
	})

	t.Run("no confirmer", func(t *testing.T) {
		m := setup(t)
		_, err := m.Run(context.Background())
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("confirm error", func(t *testing.T) {
		m := setup(t)
		boom := errors.New("tty closed")
		m.Confirm = func(string) (bool, error) { return false, boom }
		_, err := m.Run(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}

func TestRunRollsBackFailedRemoval(t *testing.T) {
	db := testutil.PrepareDB(t)
	snowflakes := testutil.CreateProgram(t, db, "Snowflakes")
	testutil.CreateProgram(t, db, "Adult")
	athlete := testutil.CreateUser(t, db, "student1", constants.RoleStudent, func(u *models.User) { u.ProgramID = &snowflakes.ID })

	// the first legacy program goes, the second delete fails
	boom := errors.New("connection reset")
	deletes := 0
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_program_delete", func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.Table != "program" {
			return
		}
		deletes++
		if deletes%2 == 0 {
			tx.AddError(boom)
		}
	}))

	var out bytes.Buffer
	m := &Migrator{DB: db, Out: &out}
	res, err := m.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "remove legacy programs")
	assert.Contains(t, fmt.Sprintf("%+v", err), "removeLegacy")
	assert.NotContains(t, out.String(), "Migration completed")

	var names []string
	require.NoError(t, db.Model(&models.Program{}).Order("name").Pluck("name", &names).Error)
	assert.Equal(t, []string{"Adult", "Snowflakes"}, names)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, athlete.ID).Error)
	require.NotNil(t, reloaded.ProgramID)
	assert.Equal(t, snowflakes.ID, *reloaded.ProgramID)

	partial := &Result{}
	require.Error(t, m.removeLegacy(db, partial))
	assert.Equal(t, 0, partial.Removed)
}

func TestStdinConfirmer(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"yes\n", true},
		{"YES\n", true},
		{" yes ", true},
		{"y\n", false},
		{"no\n", false},
		{"", false},
	}
	for _, tt := range tests {
		var w bytes.Buffer
		ok, err := StdinConfirmer(strings.NewReader(tt.in), &w)("continue? ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, ok, "%q", tt.in)
		assert.Equal(t, "continue? ", w.String())
	}
}
