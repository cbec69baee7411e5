package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware turns panics into 500 responses.
func RecoveryMiddleware(stackTrace bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: stackTrace,
	})
}
