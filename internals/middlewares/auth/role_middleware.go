package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"snowschool_backend/internals/constants"
	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError lets allowedRoles through; anyone else is sent
// back to the dashboard with the message flashed.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := authHelper.CurrentUser(c)
		if user == nil {
			return LoginRequired(c)
		}

		for _, allowed := range allowedRoles {
			if user.UserType == allowed {
				return c.Next()
			}
		}

		log.Printf("[WARN] role %q denied for %s %s", user.UserType, c.Method(), c.Path())
		if customForbiddenMessage == "" {
			customForbiddenMessage = constants.MsgAccessDenied
		}
		return helper.RedirectWithFlash(c, "/dashboard", helper.FlashError, customForbiddenMessage)
	}
}

// Shortcut
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
