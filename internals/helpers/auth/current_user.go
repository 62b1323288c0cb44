package helper

import (
	"github.com/gofiber/fiber/v2"

	helper "snowschool_backend/internals/helpers"
	"snowschool_backend/internals/models"
)

// CurrentUser returns the user stored by the auth middleware, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(helper.LocCurrentUser).(*models.User)
	return u
}

func SetCurrentUser(c *fiber.Ctx, u *models.User) {
	c.Locals(helper.LocCurrentUser, u)
}
