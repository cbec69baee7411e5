package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"ksms_backend/internals/configs"
	"ksms_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain. Order matters: recovery wraps everything.
func SetupMiddlewares(app *fiber.App, cfg *configs.Settings) {
	app.Use(RecoveryMiddleware(!cfg.IsProduction()))
	app.Use(RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.AllowedOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
