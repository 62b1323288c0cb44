package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"snowschool_backend/internals/features/users/users/repository"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Login checks username/password. A legacy pbkdf2 hash is replaced by a
// bcrypt hash after a successful check.
func Login(ctx context.Context, db *gorm.DB, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	log.Printf("[INFO] login attempt for %q", username)
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] login: user %q not found", username)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := authHelper.CheckPasswordHash(user.PasswordHash, password); err != nil {
		if !errors.Is(err, authHelper.ErrPasswordMismatch) {
			log.Printf("[WARN] login: password hash of %q: %v", username, err)
		}
		return nil, ErrInvalidCredentials
	}

	if authHelper.IsLegacyHash(user.PasswordHash) {
		if hash, err := authHelper.HashPassword(password); err == nil {
			if err := repository.UpdateUserPassword(ctx, db, user.ID, hash); err != nil {
				log.Printf("[WARN] login: rehash %q: %v", username, err)
			} else {
				user.PasswordHash = hash
			}
		}
	}
	return user, nil
}
