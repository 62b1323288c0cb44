package seeds

import (
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"snowschool_backend/internals/models"
)

//go:embed data/*.json
var dataFS embed.FS

type UserSeed struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
}

type ProgramSeed struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	FrequencyType  string `json:"frequency_type"`
	FrequencyValue int    `json:"frequency_value"`
	FrequencyDays  string `json:"frequency_days"`
}

func readSeed(name string, out interface{}) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// SeedNeon loads the hosted data set: three accounts when the user table is
// empty and the legacy programs when the program table is empty.
func SeedNeon(db *gorm.DB) error {
	var users []UserSeed
	if err := readSeed("neon_users.json", &users); err != nil {
		return err
	}
	var programs []ProgramSeed
	if err := readSeed("neon_programs.json", &programs); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("⚠️ found %d existing users, skipping user creation", n)
		} else {
			for _, u := range users {
				if err := ensureUser(tx, &models.User{
					Username: u.Username,
					Email:    u.Email,
					FullName: u.FullName,
					UserType: u.UserType,
				}, u.Password); err != nil {
					return err
				}
			}
		}

		if err := tx.Model(&models.Program{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("⚠️ found %d existing programs, skipping program creation", n)
			return nil
		}
		today := datatypes.Date(time.Now().UTC())
		for _, p := range programs {
			desc := p.Description
			start := today
			program := models.Program{
				Name:           p.Name,
				Description:    &desc,
				FrequencyType:  p.FrequencyType,
				FrequencyValue: p.FrequencyValue,
				FrequencyDays:  models.ParseWeekDays(p.FrequencyDays),
				StartDate:      &start,
			}
			if err := tx.Create(&program).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ %d programs created", len(programs))
		return nil
	})
}
