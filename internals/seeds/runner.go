package seeds

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	ProfileDemo = "demo"
	ProfileNeon = "neon"
)

func RunAllSeeds(db *gorm.DB, profile string) error {
	switch profile {
	case ProfileDemo:
		return SeedDemo(db)
	case ProfileNeon:
		return SeedNeon(db)
	}
	return fmt.Errorf("unknown seed profile %q (want %s or %s)", profile, ProfileDemo, ProfileNeon)
}
