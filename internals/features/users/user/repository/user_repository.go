package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{DB: tx}
}

// FindByEmail looks among non-deleted users.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).Where("email = ?", model.NormalizeEmail(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find user by email")
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find user by id")
	}
	return &u, nil
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).Where("google_id = ?", googleID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("User not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find user by google id")
	}
	return &u, nil
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	var n int64
	q := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", model.NormalizeEmail(email))
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, pkgerrors.Wrap(err, "count users by email")
	}
	return n > 0, nil
}

func (r *UserRepository) PhoneTaken(ctx context.Context, phone string, exclude uuid.UUID) (bool, error) {
	var n int64
	q := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("phone_number = ?", phone)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, pkgerrors.Wrap(err, "count users by phone")
	}
	return n > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.UserModel) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Conflict("Email already registered")
		}
		return pkgerrors.Wrap(err, "create user")
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("password", hash)
	if res.Error != nil {
		return pkgerrors.Wrap(res.Error, "update password")
	}
	if res.RowsAffected == 0 {
		return helper.NotFound("User not found")
	}
	return nil
}
