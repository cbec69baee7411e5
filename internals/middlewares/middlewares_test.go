package middlewares

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "ksms_backend/internals/helpers"
)

func TestRequestContextEchoesOrGeneratesID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestContext(time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		_, hasDeadline := c.UserContext().Deadline()
		assert.True(t, hasDeadline)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestLoginRateLimiter(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Post("/login", LoginRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestRecoveryMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	app.Use(RecoveryMiddleware(false))
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func loginApp(proxies []string) *fiber.App {
	conf := fiber.Config{ErrorHandler: helper.ErrorHandler}
	ApplyTrustedProxies(&conf, proxies)
	app := fiber.New(conf)
	app.Post("/login", LoginRateLimiter(), func(c *fiber.Ctx) error {
		return c.SendString(c.IP())
	})
	return app
}

func TestLoginRateLimiterIgnoresForwardedForWithoutTrustedProxies(t *testing.T) {
	app := loginApp(nil)

	var last int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest("POST", "/login", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, fmt.Sprintf("203.0.113.%d", i))
		resp, err := app.Test(req)
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}

func TestTrustedProxyForwardsClientIP(t *testing.T) {
	app := loginApp([]string{"0.0.0.0/0"})

	req := httptest.NewRequest("POST", "/login", nil)
	req.Header.Set(fiber.HeaderXForwardedFor, "203.0.113.7")
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", string(body))
}
