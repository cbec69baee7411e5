package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const AccessTokenCookie = "access_token"

/* ======== Extractors ======== */

// extractCredential prefers the Authorization header and falls back to the cookie.
// The value is passed on raw; the resolver strips the Bearer prefix.
func extractCredential(c *fiber.Ctx) string {
	if h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); h != "" {
		return h
	}
	return strings.TrimSpace(c.Cookies(AccessTokenCookie))
}
