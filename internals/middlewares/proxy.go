package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ApplyTrustedProxies makes c.IP() read X-Forwarded-For only when the peer is a listed proxy.
// With no proxies the header is never read, so clients cannot pick their rate-limit key.
func ApplyTrustedProxies(conf *fiber.Config, proxies []string) {
	if len(proxies) == 0 {
		conf.ProxyHeader = ""
		conf.EnableTrustedProxyCheck = false
		return
	}
	conf.ProxyHeader = fiber.HeaderXForwardedFor
	conf.EnableTrustedProxyCheck = true
	conf.TrustedProxies = proxies
	log.Printf("[INFO] trusting %s from %v", fiber.HeaderXForwardedFor, proxies)
}
