package helper

import (
	"github.com/gofiber/fiber/v2"
)

// LocCurrentUser holds the *models.User loaded by the auth middleware.
const LocCurrentUser = "current_user"

// Render renders a page inside the main layout with the pending flashes and
// the logged in user.
func Render(c *fiber.Ctx, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = PopFlashes(c)
	if u := c.Locals(LocCurrentUser); u != nil {
		data["CurrentUser"] = u
	}
	return c.Render(view, data)
}

func RenderStatus(c *fiber.Ctx, status int, view string, data fiber.Map) error {
	c.Status(status)
	return Render(c, view, data)
}
