package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/users/users/repository"
	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotAthlete    = errors.New("user is not an athlete")
	ErrInvalidRole   = errors.New("invalid user type")
)

type CreateUserInput struct {
	Username                string
	Email                   string
	Password                string
	FullName                string
	UserType                string
	ClubID                  *uint
	CoachID                 *uint
	TeamID                  *uint
	ProgramID               *uint
	ParticipatesSkier       bool
	ParticipatesSnowboarder bool
	ParticipatesSnowStars   bool
}

// Create registers a user. Participation flags and the team are kept for
// students only.
func Create(ctx context.Context, db *gorm.DB, in CreateUserInput) (*models.User, error) {
	if !constants.IsValidRole(in.UserType) {
		return nil, ErrInvalidRole
	}

	taken, err := repository.UsernameExists(ctx, db, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = repository.EmailExists(ctx, db, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	student := in.UserType == constants.RoleStudent
	user := &models.User{
		Username:                in.Username,
		Email:                   in.Email,
		PasswordHash:            hash,
		FullName:                in.FullName,
		UserType:                in.UserType,
		ClubID:                  in.ClubID,
		CoachID:                 in.CoachID,
		ProgramID:               in.ProgramID,
		ParticipatesSkier:       student && in.ParticipatesSkier,
		ParticipatesSnowboarder: student && in.ParticipatesSnowboarder,
		ParticipatesSnowStars:   student && in.ParticipatesSnowStars,
	}
	if student {
		user.TeamID = in.TeamID
	}

	if err := db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	log.Printf("[INFO] user %q created (%s)", user.Username, user.UserType)
	return user, nil
}

// Athlete loads a student with club, team and coach.
func Athlete(ctx context.Context, db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).
		Preload("Club").Preload("Team").Preload("Team.Program").Preload("Coach").Preload("Program").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsStudent() {
		return nil, ErrNotAthlete
	}
	return &user, nil
}

// Athletes lists every student.
func Athletes(ctx context.Context, db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.WithContext(ctx).
		Preload("Club").Preload("Team").Preload("Coach").
		Where("user_type = ?", constants.RoleStudent).
		Order("full_name ASC").
		Find(&users).Error
	return users, err
}

// ResetPassword replaces the password of username with a bcrypt hash.
func ResetPassword(ctx context.Context, db *gorm.DB, username, password string) error {
	user, err := repository.FindUserByUsername(ctx, db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return err
	}
	return repository.UpdateUserPassword(ctx, db, user.ID, hash)
}
