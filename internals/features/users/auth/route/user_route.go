package route

import (
	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/features/users/auth/controller"
	rateLimiter "ksms_backend/internals/middlewares"
)

// AuthPublicRoutes mounts the endpoints that need no session.
func AuthPublicRoutes(app fiber.Router, ctrl *controller.AuthController) {
	app.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	app.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
	app.Post("/login/google", rateLimiter.LoginRateLimiter(), ctrl.LoginGoogle)
	app.Post("/logout", ctrl.Logout)
}

// AuthUserRoutes mounts password management behind the session.
func AuthUserRoutes(r fiber.Router, ctrl *controller.AuthController) {
	r.Patch("/reset-password/:user_id", ctrl.ResetPassword)
	r.Post("/change-password", ctrl.ChangePassword)
}
