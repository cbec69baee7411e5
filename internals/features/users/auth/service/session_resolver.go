package service

import (
	"context"
	"errors"
	"strings"

	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
)

// PrincipalLoader finds a non-deleted user by email.
type PrincipalLoader interface {
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
}

// SessionResolver turns a raw credential into the principal it names.
// It never writes.
type SessionResolver struct {
	tokens *TokenService
	users  PrincipalLoader
}

func NewSessionResolver(tokens *TokenService, users PrincipalLoader) *SessionResolver {
	return &SessionResolver{tokens: tokens, users: users}
}

// Resolve accepts "Bearer <token>" or a bare token.
func (r *SessionResolver) Resolve(ctx context.Context, credential string) (*model.UserModel, error) {
	token := StripBearer(credential)
	if token == "" {
		return nil, helper.Unauthenticated("Not authenticated")
	}

	claims, err := r.tokens.Decode(token)
	if errors.Is(err, ErrTokenExpired) {
		return nil, &helper.AppError{Kind: helper.ErrTokenExpired, Message: "Token has expired"}
	}
	if err != nil {
		return nil, helper.Unauthenticated("Could not validate credentials")
	}

	email, _ := claims["sub"].(string)
	if strings.TrimSpace(email) == "" {
		return nil, helper.Unauthenticated("Could not validate credentials")
	}

	user, err := r.users.FindByEmail(ctx, email)
	if errors.Is(err, helper.ErrNotFound) {
		return nil, helper.Unauthenticated("Could not validate credentials")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// StripBearer trims an optional, case-insensitive "Bearer " prefix and quotes.
func StripBearer(raw string) string {
	raw = strings.Trim(strings.TrimSpace(raw), `"'`)
	fields := strings.Fields(raw)
	switch {
	case len(fields) == 2 && strings.EqualFold(fields[0], "Bearer"):
		return fields[1]
	case len(fields) == 1 && !strings.EqualFold(fields[0], "Bearer"):
		return fields[0]
	default:
		return ""
	}
}
