package service

import (
	"context"

	"github.com/google/uuid"

	authHelper "ksms_backend/internals/features/users/auth/helper"
	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
)

// ========================== RESET PASSWORD ==========================
// Access (self or admin) is decided by the caller.
func (s *AuthService) ResetPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if err := authHelper.ValidatePassword("new_password", newPassword); err != nil {
		return err
	}
	hash, err := authHelper.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

// ========================== CHANGE PASSWORD ==========================
func (s *AuthService) ChangePassword(ctx context.Context, user *model.UserModel, current, next string) error {
	if err := authHelper.CheckPasswordHash(user.Password, current); err != nil {
		return helper.InvalidField("current_password", "is incorrect")
	}
	if current == next {
		return helper.InvalidField("new_password", "must differ from the current password")
	}
	return s.ResetPassword(ctx, user.ID, next)
}
