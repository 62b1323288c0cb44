package helper

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Coach Johnson", CleanString("  Coach Johnson \n"))
	// full width letters fold to ASCII
	assert.Equal(t, "admin", CleanString("ａｄｍｉｎ"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestFormParsing(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		id, err := FormOptionalUint(c, "coach_id")
		assert.NoError(t, err)
		assert.Nil(t, id)

		team, err := FormOptionalUint(c, "team_id")
		assert.NoError(t, err)
		if assert.NotNil(t, team) {
			assert.Equal(t, uint(3), *team)
		}

		_, err = FormUint(c, "program_id")
		assert.Error(t, err)

		n, err := FormInt(c, "frequency_value", 8)
		assert.NoError(t, err)
		assert.Equal(t, 8, n)

		score, err := FormFloat(c, "skills_score")
		assert.NoError(t, err)
		assert.Equal(t, 4.5, score)

		assert.True(t, FormChecked(c, "participates_snow_stars"))
		assert.False(t, FormChecked(c, "participates_skier"))
		assert.Nil(t, FormOptionalString(c, "description"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	form := url.Values{
		"coach_id":                {""},
		"team_id":                 {"3"},
		"program_id":              {"abc"},
		"skills_score":            {"4.5"},
		"participates_snow_stars": {"on"},
		"description":             {"   "},
	}
	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: user.username (2067)")))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
