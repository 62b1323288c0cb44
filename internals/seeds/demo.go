package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"snowschool_backend/internals/constants"
	"snowschool_backend/internals/features/organizations/programs/migration"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
)

const (
	demoClub    = "Alpine Ontario"
	demoTeam    = "Snowflakes Demo Team"
	demoProgram = "Snowflakes"
	demoCoach   = "coach1"
)

// SeedDemo loads the development data set. Every record is created only when
// missing.
func SeedDemo(db *gorm.DB) error {
	log.Println("📥 Seeding demo data")
	return db.Transaction(func(tx *gorm.DB) error {
		club, err := firstOrCreateClub(tx, demoClub, "Provincial sport organization")
		if err != nil {
			return err
		}

		if err := ensureUser(tx, &models.User{
			Username: "admin",
			Email:    "admin@example.com",
			FullName: "System Administrator",
			UserType: constants.RoleAdmin,
			ClubID:   &club.ID,
		}, "admin123"); err != nil {
			return err
		}

		for _, def := range migration.RacingPrograms {
			if err := ensureProgram(tx, def.Model()); err != nil {
				return err
			}
		}

		if err := ensureUser(tx, &models.User{
			Username: demoCoach,
			Email:    "coach@example.com",
			FullName: "Coach Johnson",
			UserType: constants.RoleCoach,
		}, "coach123"); err != nil {
			return err
		}
		var coach models.User
		if err := tx.Where("username = ?", demoCoach).First(&coach).Error; err != nil {
			return err
		}

		// The demo team only exists next to a legacy Snowflakes program.
		var snowflakes models.Program
		err = tx.Where("name = ?", demoProgram).First(&snowflakes).Error
		switch {
		case err == nil:
			if err := ensureTeam(tx, &models.Team{
				Name:      demoTeam,
				ProgramID: snowflakes.ID,
				CoachID:   coach.ID,
				ClubID:    &club.ID,
				TeamType:  constants.TeamTypeTeam,
			}); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		var team models.Team
		err = tx.Where("name = ?", demoTeam).First(&team).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return ensureUser(tx, &models.User{
			Username:                "student1",
			Email:                   "student@example.com",
			FullName:                "John Doe",
			UserType:                constants.RoleStudent,
			ParticipatesSkier:       true,
			ParticipatesSnowboarder: true,
			ParticipatesSnowStars:   true,
			CoachID:                 &coach.ID,
			TeamID:                  &team.ID,
			ClubID:                  &club.ID,
		}, "student123")
	})
}

func firstOrCreateClub(tx *gorm.DB, name, description string) (*models.Club, error) {
	desc := description
	club := models.Club{Name: name}
	if err := tx.Where(models.Club{Name: name}).Attrs(models.Club{Description: &desc}).FirstOrCreate(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

// ensureUser stores u with a hash of password unless the username is taken.
func ensureUser(tx *gorm.DB, u *models.User, password string) error {
	var n int64
	if err := tx.Model(&models.User{}).Where("username = ?", u.Username).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Printf("ℹ️ user '%s' already exists, skipped", u.Username)
		return nil
	}
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
		return err
	}
	log.Printf("✅ user '%s' created", u.Username)
	return nil
}

func ensureProgram(tx *gorm.DB, p models.Program) error {
	var n int64
	if err := tx.Model(&models.Program{}).Where("name = ?", p.Name).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return tx.Create(&p).Error
}

func ensureTeam(tx *gorm.DB, t *models.Team) error {
	var n int64
	if err := tx.Model(&models.Team{}).Where("name = ?", t.Name).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(t).Error
}
