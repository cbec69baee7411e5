package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ksms_backend/internals/features/users/auth/dto"
	"ksms_backend/internals/features/users/auth/service"
	helper "ksms_backend/internals/helpers"
	helperAuth "ksms_backend/internals/helpers/auth"
	authMiddleware "ksms_backend/internals/middlewares/auth"
)

const afterLoginPath = "/me"

type AuthController struct {
	Auth         *service.AuthService
	CookieSecure bool
}

func NewAuthController(auth *service.AuthService, cookieSecure bool) *AuthController {
	return &AuthController{Auth: auth, CookieSecure: cookieSecure}
}

// POST /register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	_, token, err := ac.Auth.Register(c.UserContext(), in)
	if err != nil {
		return helper.FromError(c, err)
	}
	return ac.sessionRedirect(c, token)
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	_, token, err := ac.Auth.Login(c.UserContext(), in)
	if err != nil {
		return helper.FromError(c, err)
	}
	return ac.sessionRedirect(c, token)
}

// POST /login/google
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var in dto.GoogleLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	_, token, err := ac.Auth.LoginGoogle(c.UserContext(), in.IDToken)
	if err != nil {
		return helper.FromError(c, err)
	}
	return ac.sessionRedirect(c, token)
}

// POST /logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   ac.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})
	return helper.JsonOK(c, "Logout successful", nil)
}

// PATCH /reset-password/:user_id
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	me, err := helperAuth.CurrentUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	target, err := helperAuth.ParseIDParam(c, "user_id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if _, err := helperAuth.Require(me, helperAuth.IsSelfOrAdmin(target)); err != nil {
		return helper.FromError(c, err)
	}

	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Auth.ResetPassword(c.UserContext(), target, in.NewPassword); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Password reset successfully", nil)
}

// POST /change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	me, err := helperAuth.CurrentUser(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ac.Auth.ChangePassword(c.UserContext(), me, in.CurrentPassword, in.NewPassword); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

func (ac *AuthController) sessionRedirect(c *fiber.Ctx, token string) error {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.AccessTokenCookie,
		Value:    "Bearer " + token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   ac.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(ac.Auth.TTL()),
	})
	return c.Redirect(afterLoginPath, fiber.StatusSeeOther)
}
