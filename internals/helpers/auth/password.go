package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

var (
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrUnsupportedHash  = errors.New("unsupported password hash format")
	ErrEmptyPassword    = errors.New("password must not be empty")
)

// HashPassword hashes new passwords with bcrypt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash verifies bcrypt hashes and the werkzeug
// "pbkdf2:sha256:<iterations>$<salt>$<hex>" hashes written by the first
// version of the club site.
func CheckPasswordHash(hash, password string) error {
	if strings.HasPrefix(hash, "pbkdf2:") {
		return checkPBKDF2(hash, password)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return ErrUnsupportedHash
	}
	return nil
}

func checkPBKDF2(hash, password string) error {
	parts := strings.SplitN(hash, "$", 3)
	if len(parts) != 3 {
		return ErrUnsupportedHash
	}
	method := strings.Split(parts[0], ":")
	if len(method) != 3 || method[1] != "sha256" {
		return ErrUnsupportedHash
	}
	iterations, err := strconv.Atoi(method[2])
	if err != nil || iterations <= 0 {
		return ErrUnsupportedHash
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return ErrUnsupportedHash
	}

	got := pbkdf2.Key([]byte(password), []byte(parts[1]), iterations, sha256.Size, sha256.New)
	if !hmac.Equal(got, want) {
		return ErrPasswordMismatch
	}
	return nil
}

// IsLegacyHash reports hashes that should be replaced by bcrypt on next login.
func IsLegacyHash(hash string) bool {
	return strings.HasPrefix(hash, "pbkdf2:")
}
