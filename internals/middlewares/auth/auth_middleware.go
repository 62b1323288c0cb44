// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
	"snowschool_backend/internals/models"
)

type AuthJWTOpts struct {
	DB     *gorm.DB
	Secret string
	// Optional lets anonymous requests through without a current user.
	Optional bool
}

// AuthJWT resolves the access_token cookie to a user and stores it in Locals.
func AuthJWT(opts AuthJWTOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := authHelper.GetRawAccessToken(c)
		if raw == "" {
			if opts.Optional {
				return c.Next()
			}
			return LoginRequired(c)
		}

		claims, err := authHelper.ParseToken(opts.Secret, raw)
		if err != nil {
			authHelper.ClearAccessTokenCookie(c)
			if opts.Optional {
				return c.Next()
			}
			log.Printf("[WARN] AuthJWT: %v", err)
			return LoginRequired(c)
		}

		var user models.User
		if err := opts.DB.WithContext(c.UserContext()).First(&user, claims.UserID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[ERROR] AuthJWT load user %d: %v", claims.UserID, err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			authHelper.ClearAccessTokenCookie(c)
			if opts.Optional {
				return c.Next()
			}
			return LoginRequired(c)
		}

		authHelper.SetCurrentUser(c, &user)
		return c.Next()
	}
}

// LoginRequired sends anonymous visitors to the login page, keeping the
// requested path in ?next=.
func LoginRequired(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	to := "/login"
	if c.Method() == fiber.MethodGet {
		to += "?next=" + url.QueryEscape(c.OriginalURL())
	}
	return helper.RedirectWithFlash(c, to, helper.FlashMessage, "Please log in to access this page.")
}

// SafeNext accepts only local paths as a post-login redirect target.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return ""
	}
	return next
}
