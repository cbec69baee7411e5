package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "ksms_backend/internals/helpers"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every route.
func GlobalRateLimiter() fiber.Handler {
	return ipLimiter(100, time.Minute, "Too many requests, please try again later")
}

func LoginRateLimiter() fiber.Handler {
	return ipLimiter(5, time.Minute, "Too many login attempts, please wait a moment")
}

func RegisterRateLimiter() fiber.Handler {
	return ipLimiter(3, 5*time.Minute, "Too many registration attempts, please wait a few minutes")
}

// Password resets are sensitive; two per ten minutes.
func PasswordRateLimiter() fiber.Handler {
	return ipLimiter(2, 10*time.Minute, "Too many password reset requests, try again in 10 minutes")
}
