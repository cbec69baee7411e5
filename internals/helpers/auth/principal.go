package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
)

// Locals keys written by the auth middleware.
const (
	LocUser   = "user"
	LocUserID = "user_id"
	LocRole   = "userRole"
)

func SetPrincipal(c *fiber.Ctx, u *model.UserModel) {
	c.Locals(LocUser, u)
	c.Locals(LocUserID, u.ID.String())
	c.Locals(LocRole, string(u.Role))
}

// CurrentUser returns the resolved principal or an Unauthenticated error.
func CurrentUser(c *fiber.Ctx) (*model.UserModel, error) {
	u, ok := c.Locals(LocUser).(*model.UserModel)
	if !ok || u == nil {
		return nil, helper.Unauthenticated("Not authenticated")
	}
	return u, nil
}

func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	u, err := CurrentUser(c)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

// ParseIDParam reads a UUID path parameter.
func ParseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, helper.InvalidField(name, "must be a valid UUID")
	}
	return id, nil
}
