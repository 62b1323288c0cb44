package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/constants"
	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
)

const LocTeam = "team"

// TeamAccess loads the team of :team_id. Admins see every team, coaches only
// the teams they coach.
func TeamAccess(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := authHelper.CurrentUser(c)
		if user == nil || (!user.IsAdmin() && !user.IsCoach()) {
			return helper.RedirectWithFlash(c, "/dashboard", helper.FlashError, constants.MsgAccessDenied)
		}

		teamID, err := helper.ParamUint(c, "team_id")
		if err != nil {
			return err
		}

		var team models.Team
		if err := db.WithContext(c.UserContext()).Preload("Program").First(&team, teamID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.ErrNotFound
			}
			log.Printf("[ERROR] TeamAccess load team %d: %v", teamID, err)
			return fiber.ErrInternalServerError
		}

		if user.IsCoach() && team.CoachID != user.ID {
			return helper.RedirectWithFlash(c, "/dashboard", helper.FlashError, constants.MsgAccessDenied)
		}

		c.Locals(LocTeam, &team)
		return c.Next()
	}
}

func CurrentTeam(c *fiber.Ctx) *models.Team {
	t, _ := c.Locals(LocTeam).(*models.Team)
	return t
}
