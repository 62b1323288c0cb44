package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/configs"
	"snowschool_backend/internals/features/users/auth/service"
	helper "snowschool_backend/internals/helpers"
	authHelper "snowschool_backend/internals/helpers/auth"
	authMiddleware "snowschool_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg configs.Config
}

func NewAuthController(db *gorm.DB, cfg configs.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// GET /login
func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	if authHelper.CurrentUser(c) != nil {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return ac.renderLogin(c)
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	username := helper.FormString(c, "username")
	password := helper.FormString(c, "password")

	user, err := service.Login(c.UserContext(), ac.DB, username, password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		helper.SetFlash(c, helper.FlashError, "Please enter both username and password")
		return ac.renderLogin(c)
	case errors.Is(err, service.ErrInvalidCredentials):
		helper.SetFlash(c, helper.FlashError, "Invalid username or password")
		return ac.renderLogin(c)
	case err != nil:
		log.Printf("[ERROR] login %q: %v", username, err)
		helper.SetFlash(c, helper.FlashError, "An error occurred during login. Please try again.")
		return ac.renderLogin(c)
	}

	token, exp, err := authHelper.GenerateToken(ac.Cfg.JWTSecret, user.ID, user.Username, user.UserType, user.ClubID, ac.Cfg.SessionTTL)
	if err != nil {
		log.Printf("[ERROR] login token %q: %v", username, err)
		helper.SetFlash(c, helper.FlashError, "An error occurred during login. Please try again.")
		return ac.renderLogin(c)
	}
	authHelper.SetAccessTokenCookie(c, token, exp, ac.Cfg.CookieSecure)

	to := authMiddleware.SafeNext(c.FormValue("next", c.Query("next")))
	if to == "" {
		to = "/dashboard"
	}
	return helper.RedirectWithFlash(c, to, helper.FlashSuccess, "Login successful!")
}

// GET /logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	authHelper.ClearAccessTokenCookie(c)
	return helper.RedirectWithFlash(c, "/", helper.FlashInfo, "Logged out successfully")
}

func (ac *AuthController) renderLogin(c *fiber.Ctx) error {
	return helper.Render(c, "login", fiber.Map{
		"Title": "Login",
		"Next":  authMiddleware.SafeNext(c.FormValue("next", c.Query("next"))),
	})
}
