package helper

import (
	"github.com/google/uuid"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
)

// Predicate is a named access rule over the principal.
type Predicate struct {
	Name    string
	Message string
	Check   func(u *model.UserModel) bool
}

var (
	IsAdmin   = HasRole(constants.RoleAdmin)
	IsStudent = HasRole(constants.RoleStudent)
	IsTeacher = HasRole(constants.RoleTeacher)

	IsActive = Predicate{
		Name:    "is active",
		Message: "Account is deactivated",
		Check:   func(u *model.UserModel) bool { return u.IsActive },
	}

	IsActiveStudent = AllOf(IsActive, IsStudent)
)

func HasRole(roles ...constants.Role) Predicate {
	name := "has role"
	for _, r := range roles {
		name += " " + string(r)
	}
	return Predicate{
		Name:    name,
		Message: "You do not have permission to perform this action",
		Check: func(u *model.UserModel) bool {
			for _, r := range roles {
				if u.Role == r {
					return true
				}
			}
			return false
		},
	}
}

// IsSelfOrAdmin lets a principal act on its own record, or an admin on any.
func IsSelfOrAdmin(target uuid.UUID) Predicate {
	return Predicate{
		Name:    "is self or admin",
		Message: "You can only act on your own account",
		Check: func(u *model.UserModel) bool {
			return u.ID == target || u.Role == constants.RoleAdmin
		},
	}
}

func AllOf(preds ...Predicate) Predicate {
	return Predicate{
		Name: "all of",
		Check: func(u *model.UserModel) bool {
			for _, p := range preds {
				if !p.Check(u) {
					return false
				}
			}
			return true
		},
		Message: firstMessage(preds),
	}
}

func AnyOf(preds ...Predicate) Predicate {
	return Predicate{
		Name: "any of",
		Check: func(u *model.UserModel) bool {
			for _, p := range preds {
				if p.Check(u) {
					return true
				}
			}
			return false
		},
		Message: firstMessage(preds),
	}
}

// WithMessage overrides the Forbidden message.
func (p Predicate) WithMessage(msg string) Predicate {
	p.Message = msg
	return p
}

// Require returns the principal unchanged when the predicate holds.
func Require(u *model.UserModel, p Predicate) (*model.UserModel, error) {
	if u == nil {
		return nil, helper.Unauthenticated("Not authenticated")
	}
	if !p.Check(u) {
		msg := p.Message
		if msg == "" {
			msg = "Forbidden"
		}
		return nil, helper.Forbidden(msg)
	}
	return u, nil
}

func firstMessage(preds []Predicate) string {
	for _, p := range preds {
		if p.Message != "" {
			return p.Message
		}
	}
	return ""
}
