package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

var (
	ErrClubNotFound  = errors.New("club not found")
	ErrClubNameTaken = errors.New("club name already exists")
	ErrClubInUse     = errors.New("club has teams or users")
)

func List(ctx context.Context, db *gorm.DB) ([]models.Club, error) {
	var clubs []models.Club
	err := db.WithContext(ctx).Order("name ASC").Find(&clubs).Error
	return clubs, err
}

func Get(ctx context.Context, db *gorm.DB, id uint) (*models.Club, error) {
	var club models.Club
	if err := db.WithContext(ctx).First(&club, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return &club, nil
}

func Create(ctx context.Context, db *gorm.DB, club *models.Club) error {
	return mapDuplicate(db.WithContext(ctx).Create(club).Error)
}

func Save(ctx context.Context, db *gorm.DB, club *models.Club) error {
	return mapDuplicate(db.WithContext(ctx).Save(club).Error)
}

// Delete removes a club that has neither teams nor users.
func Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var club models.Club
		if err := tx.First(&club, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClubNotFound
			}
			return err
		}

		var teams, users int64
		if err := tx.Model(&models.Team{}).Where("club_id = ?", id).Count(&teams).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("club_id = ?", id).Count(&users).Error; err != nil {
			return err
		}
		if teams > 0 || users > 0 {
			return ErrClubInUse
		}
		return tx.Delete(&club).Error
	})
}

func mapDuplicate(err error) error {
	if helper.IsUniqueViolation(err) {
		return ErrClubNameTaken
	}
	return err
}
