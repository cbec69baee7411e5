package users

import (
	"context"
	"log"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	authHelper "ksms_backend/internals/features/users/auth/helper"
	"ksms_backend/internals/features/users/user/model"
	userRepo "ksms_backend/internals/features/users/user/repository"
	helper "ksms_backend/internals/helpers"
)

// SeedAdmin creates the bootstrap ADMIN account when the email is free.
// It never touches an existing account.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, password string) (bool, error) {
	if email == "" || password == "" {
		log.Println("[INFO] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return false, nil
	}
	if err := authHelper.ValidatePassword("admin_password", password); err != nil {
		return false, err
	}

	repo := userRepo.NewUserRepository(db)
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return false, nil
	} else if !pkgerrors.Is(err, helper.ErrNotFound) {
		return false, pkgerrors.Wrap(err, "lookup admin")
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := &model.UserModel{
		Email:      email,
		Password:   hash,
		FirstName:  "Admin",
		Role:       constants.RoleAdmin,
		IsActive:   true,
		IsVerified: true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return false, pkgerrors.Wrap(err, "create admin")
	}
	log.Printf("[INFO] bootstrap admin %s created", admin.Email)
	return true, nil
}
