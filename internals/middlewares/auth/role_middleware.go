package auth

import (
	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/constants"
	helperAuth "ksms_backend/internals/helpers/auth"
)

// RequirePolicy must run after AuthMiddleware.
func RequirePolicy(pred helperAuth.Predicate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := helperAuth.CurrentUser(c)
		if err != nil {
			return err
		}
		if _, err := helperAuth.Require(user, pred); err != nil {
			return err
		}
		return c.Next()
	}
}

// OnlyRoles is RequirePolicy over a role list with a custom message.
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	pred := helperAuth.HasRole(roles...)
	if customMessage != "" {
		pred = pred.WithMessage(customMessage)
	}
	return RequirePolicy(pred)
}
