package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/configs"
	"snowschool_backend/internals/constants"
	authMiddleware "snowschool_backend/internals/middlewares/auth"
	routeDetails "snowschool_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	startTime = time.Now()

	optionalAuth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{DB: db, Secret: cfg.JWTSecret, Optional: true})
	requireLogin := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{DB: db, Secret: cfg.JWTSecret})

	// ===================== BASE =====================
	BaseRoutes(app, db, cfg)

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, cfg, optionalAuth, requireLogin)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db, requireLogin)

	// ===================== TRAINING =====================
	log.Println("[INFO] Setting up TrainingRoutes...")
	routeDetails.TrainingRoutes(app, db, requireLogin)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/admin",
		requireLogin,
		authMiddleware.OnlyRoles(constants.MsgAccessDenied, constants.RoleAdmin),
	)
	routeDetails.OrganizationAdminRoutes(admin, db)
	routeDetails.UserAdminRoutes(admin, db)
}
