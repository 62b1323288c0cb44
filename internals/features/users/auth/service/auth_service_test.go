package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/users/auth/service"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
	"snowschool_backend/internals/testutil"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)
	testutil.CreateUser(t, db, "coach1", constants.RoleCoach)

	user, err := service.Login(ctx, db, "coach1", testutil.Password("coach1"))
	require.NoError(t, err)
	assert.Equal(t, "coach1", user.Username)

	_, err = service.Login(ctx, db, "coach1", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = service.Login(ctx, db, "ghost", "x")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = service.Login(ctx, db, "", "x")
	assert.ErrorIs(t, err, service.ErrMissingCredentials)
	_, err = service.Login(ctx, db, "coach1", "")
	assert.ErrorIs(t, err, service.ErrMissingCredentials)
}

func TestLoginUpgradesLegacyHash(t *testing.T) {
	ctx := context.Background()
	db := testutil.PrepareDB(t)

	salt := "abcdefgh12345678"
	key := pbkdf2.Key([]byte("admin123"), []byte(salt), 1000, sha256.Size, sha256.New)
	legacy := "pbkdf2:sha256:1000$" + salt + "$" + hex.EncodeToString(key)
	admin := testutil.CreateUser(t, db, "admin", constants.RoleAdmin, func(u *models.User) { u.PasswordHash = legacy })

	_, err := service.Login(ctx, db, "admin", "admin123")
	require.NoError(t, err)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, admin.ID).Error)
	assert.False(t, authHelper.IsLegacyHash(reloaded.PasswordHash))
	assert.NoError(t, authHelper.CheckPasswordHash(reloaded.PasswordHash, "admin123"))
}
