package repository

import (
	"context"

	"gorm.io/gorm"

	"snowschool_backend/internals/models"
)

func FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, id uint, hash string) error {
	return db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func UsernameExists(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	return exists(ctx, db, "username = ?", username)
}

func EmailExists(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	return exists(ctx, db, "LOWER(email) = LOWER(?)", email)
}

func exists(ctx context.Context, db *gorm.DB, query string, args ...interface{}) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where(query, args...).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByRole returns the users of a role ordered by full name.
func ListByRole(ctx context.Context, db *gorm.DB, role string) ([]models.User, error) {
	var users []models.User
	err := db.WithContext(ctx).Where("user_type = ?", role).Order("full_name ASC").Find(&users).Error
	return users, err
}

func ListAll(ctx context.Context, db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.WithContext(ctx).Preload("Club").Preload("Team").Order("id ASC").Find(&users).Error
	return users, err
}

func Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&models.User{}).Count(&n).Error
	return n, err
}
