package auth

import (
	"github.com/gofiber/fiber/v2"

	authService "ksms_backend/internals/features/users/auth/service"
	helperAuth "ksms_backend/internals/helpers/auth"
)

// AuthMiddleware resolves the session credential into the request principal.
// Failures are returned to the global error handler as 401s.
func AuthMiddleware(resolver *authService.SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolver.Resolve(c.UserContext(), extractCredential(c))
		if err != nil {
			return err
		}
		helperAuth.SetPrincipal(c, user)
		return c.Next()
	}
}
