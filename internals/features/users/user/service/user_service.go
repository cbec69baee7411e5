package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/user/dto"
	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
)

type UserService struct {
	lc *lifecycle.Manager[model.UserModel]
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{lc: lifecycle.New[model.UserModel](db, "user")}
}

func roleNoun(role constants.Role) string {
	r := strings.ToLower(string(role))
	return strings.ToUpper(r[:1]) + r[1:]
}

// uniquePhone rejects a phone number held by another live user.
func uniquePhone(tx *gorm.DB, u *model.UserModel) error {
	if u.PhoneNumber == nil {
		return nil
	}
	var n int64
	err := tx.Model(&model.UserModel{}).
		Where("phone_number = ? AND id <> ?", *u.PhoneNumber, u.ID).
		Count(&n).Error
	if err != nil {
		return pkgerrors.Wrap(err, "check phone number")
	}
	if n > 0 {
		return helper.Conflict("Phone number already registered")
	}
	return nil
}

func uniqueEmail(tx *gorm.DB, u *model.UserModel) error {
	var n int64
	err := tx.Model(&model.UserModel{}).
		Where("email = ? AND id <> ?", model.NormalizeEmail(u.Email), u.ID).
		Count(&n).Error
	if err != nil {
		return pkgerrors.Wrap(err, "check email")
	}
	if n > 0 {
		return helper.Conflict("Email already registered")
	}
	return nil
}

func hasRole(role constants.Role) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Where("role = ?", role) }
}

// ListByRole pages through live users of one role. q matches name or email.
func (s *UserService) ListByRole(ctx context.Context, role constants.Role, p helper.Paging, q string) ([]model.UserModel, int64, error) {
	scopes := []lifecycle.Scope{hasRole(role)}
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(first_name) LIKE ? OR LOWER(COALESCE(last_name, '')) LIKE ? OR email LIKE ?", like, like, like)
		})
	}
	return s.lc.List(ctx, p, scopes...)
}

// GetByRole loads a user and reports NotFound when the role does not match.
func (s *UserService) GetByRole(ctx context.Context, id uuid.UUID, role constants.Role, includeDeleted bool) (*model.UserModel, error) {
	u, err := s.lc.Get(ctx, id, lifecycle.IncludeDeletedIf(includeDeleted))
	if err != nil {
		if pkgerrors.Is(err, helper.ErrNotFound) {
			return nil, helper.NotFound("%s not found", roleNoun(role))
		}
		return nil, err
	}
	if u.Role != role {
		return nil, helper.NotFound("%s not found", roleNoun(role))
	}
	return u, nil
}

func (s *UserService) UpdateStudent(ctx context.Context, id uuid.UUID, patch dto.StudentUpdate) (*model.UserModel, error) {
	return s.lc.Update(ctx, id, patch, uniquePhone)
}

func (s *UserService) UpdateTeacher(ctx context.Context, id uuid.UUID, patch dto.TeacherUpdate) (*model.UserModel, error) {
	return s.lc.Update(ctx, id, patch, uniquePhone)
}

func (s *UserService) DeleteByRole(ctx context.Context, id uuid.UUID, role constants.Role) (*model.UserModel, error) {
	if _, err := s.GetByRole(ctx, id, role, false); err != nil {
		return nil, err
	}
	return s.lc.SoftDelete(ctx, id)
}

// Restore brings back a soft-deleted user if its email and phone are still free.
func (s *UserService) Restore(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	return s.lc.Restore(ctx, id, uniqueEmail, uniquePhone)
}

// ToggleActive flips is_active on a student account.
func (s *UserService) ToggleActive(ctx context.Context, studentID uuid.UUID) (*model.UserModel, error) {
	return s.lc.Mutate(ctx, studentID, func(u *model.UserModel) error {
		if u.Role != constants.RoleStudent {
			return helper.NotFound("Student not found")
		}
		u.IsActive = !u.IsActive
		return nil
	})
}

// SetCheckedOut records a teacher check-in (false) or check-out (true).
func (s *UserService) SetCheckedOut(ctx context.Context, teacherID uuid.UUID, out bool) (*model.UserModel, error) {
	return s.lc.Mutate(ctx, teacherID, func(u *model.UserModel) error {
		if u.Role != constants.RoleTeacher {
			return helper.NotFound("Teacher not found")
		}
		now := time.Now()
		u.IsCheckedOut = out
		if out {
			u.LastCheckedOut = &now
		} else {
			u.LastCheckedIn = &now
		}
		return nil
	})
}
