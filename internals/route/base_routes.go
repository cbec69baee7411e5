package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "ksms_backend/internals/databases"
	helper "ksms_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/healthcheck", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"detail": "STATUS_OK"})
	})

	// Deep check: also pings the database.
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database connection error")
		}
		return c.JSON(fiber.Map{
			"status":         "OK",
			"database":       "Connected",
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
