package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubRoute "snowschool_backend/internals/features/organizations/clubs/route"
	programRoute "snowschool_backend/internals/features/organizations/programs/route"
	teamRoute "snowschool_backend/internals/features/organizations/teams/route"
)

func OrganizationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	clubRoute.ClubAdminRoutes(admin, db)
	programRoute.ProgramAdminRoutes(admin, db)
	teamRoute.TeamAdminRoutes(admin, db)
}
