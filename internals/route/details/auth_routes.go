package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	authController "ksms_backend/internals/features/users/auth/controller"
	authRoute "ksms_backend/internals/features/users/auth/route"
	authService "ksms_backend/internals/features/users/auth/service"
	userRepo "ksms_backend/internals/features/users/user/repository"
)

func NewAuthController(db *gorm.DB, tokens *authService.TokenService, cfg *configs.Settings) *authController.AuthController {
	svc := authService.NewAuthService(
		userRepo.NewUserRepository(db),
		tokens,
		cfg.AccessTokenTTL,
		authService.NewGoogleVerifier(cfg.GoogleClientID),
	)
	return authController.NewAuthController(svc, cfg.CookieSecure)
}

func AuthPublicRoutes(app *fiber.App, ctl *authController.AuthController) {
	authRoute.AuthPublicRoutes(app, ctl)
}

func AuthUserRoutes(r fiber.Router, ctl *authController.AuthController) {
	authRoute.AuthUserRoutes(r, ctl)
}
