package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"snowschool_backend/internals/configs"
	database "snowschool_backend/internals/databases"
	"snowschool_backend/internals/models"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		var users, programs int64
		err := database.Ping(ctx, db)
		if err == nil {
			err = db.WithContext(ctx).Model(&models.User{}).Count(&users).Error
		}
		if err == nil {
			err = db.WithContext(ctx).Model(&models.Program{}).Count(&programs).Error
		}
		if err != nil {
			log.Printf("[ERROR] health check: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":      "error",
				"error":       err.Error(),
				"environment": cfg.Env,
			})
		}

		return c.JSON(fiber.Map{
			"status":         "healthy",
			"database":       "connected",
			"users":          users,
			"programs":       programs,
			"environment":    cfg.Env,
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
