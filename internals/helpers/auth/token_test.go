package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	club := uint(4)
	raw, exp, err := GenerateToken("secret", 7, "coach1", "coach", &club, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ParseToken("secret", raw)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "coach1", claims.Username)
	assert.Equal(t, "coach", claims.Role)
	require.NotNil(t, claims.ClubID)
	assert.Equal(t, club, *claims.ClubID)
	assert.NotEmpty(t, claims.ID)

	_, err = ParseToken("other", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	raw, _, err := GenerateToken("secret", 7, "coach1", "coach", nil, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken("secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	_, _, err := GenerateToken("", 1, "a", "admin", nil, time.Hour)
	assert.Error(t, err)
}
