package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/auth/dto"
	authHelper "ksms_backend/internals/features/users/auth/helper"
	"ksms_backend/internals/features/users/user/model"
	userRepo "ksms_backend/internals/features/users/user/repository"
	helper "ksms_backend/internals/helpers"
)

const invalidCredentials = "Incorrect username or password"

type AuthService struct {
	users  *userRepo.UserRepository
	tokens *TokenService
	ttl    time.Duration
	google GoogleVerifier
}

func NewAuthService(users *userRepo.UserRepository, tokens *TokenService, ttl time.Duration, google GoogleVerifier) *AuthService {
	return &AuthService{users: users, tokens: tokens, ttl: ttl, google: google}
}

func (s *AuthService) TTL() time.Duration { return s.ttl }

/* ==========================
   REGISTER
========================== */

func (s *AuthService) Register(ctx context.Context, in dto.RegisterRequest) (*model.UserModel, string, error) {
	if err := authHelper.ValidateRegisterInput(in.FirstName, in.Email, in.Password); err != nil {
		return nil, "", err
	}

	taken, err := s.users.EmailTaken(ctx, in.Email, uuid.Nil)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", helper.Conflict("Email already registered")
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	if phone != "" {
		taken, err := s.users.PhoneTaken(ctx, phone, uuid.Nil)
		if err != nil {
			return nil, "", err
		}
		if taken {
			return nil, "", helper.Conflict("Phone number already registered")
		}
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.UserModel{
		Email:      model.NormalizeEmail(in.Email),
		Password:   hash,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   optional(in.LastName),
		Role:       constants.RoleStudent,
		IsActive:   true,
		IsVerified: true,
	}
	if phone != "" {
		user.PhoneNumber = &phone
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.IssueFor(user)
	if err != nil {
		return nil, "", err
	}
	log.Printf("[INFO] registered user %s", user.ID)
	return user, token, nil
}

/* ==========================
   LOGIN
========================== */

func (s *AuthService) Login(ctx context.Context, in dto.LoginRequest) (*model.UserModel, string, error) {
	if err := authHelper.ValidateLoginInput(in.Username, in.Password); err != nil {
		return nil, "", err
	}

	user, err := s.users.FindByEmail(ctx, in.Username)
	if errors.Is(err, helper.ErrNotFound) {
		return nil, "", helper.Unauthenticated(invalidCredentials)
	}
	if err != nil {
		return nil, "", err
	}
	if err := authHelper.CheckPasswordHash(user.Password, in.Password); err != nil {
		if !errors.Is(err, authHelper.ErrPasswordMismatch) {
			log.Printf("[ERROR] stored hash for user %s is unusable: %v", user.ID, err)
			return nil, "", pkgerrors.Wrapf(err, "malformed password hash for user %s", user.ID)
		}
		return nil, "", helper.Unauthenticated(invalidCredentials)
	}
	if !user.IsActive {
		return nil, "", helper.Forbidden("Account is deactivated, contact the administrator")
	}

	token, err := s.IssueFor(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

/* ==========================
   LOGIN GOOGLE
========================== */

// LoginGoogle finds the user by Google subject, then by email (linking it),
// and otherwise creates a new student.
func (s *AuthService) LoginGoogle(ctx context.Context, idToken string) (*model.UserModel, string, error) {
	if s.google == nil {
		return nil, "", helper.Forbidden("Google sign-in is not enabled")
	}
	if strings.TrimSpace(idToken) == "" {
		return nil, "", helper.InvalidField("id_token", "is required")
	}
	ident, err := s.google.Verify(idToken)
	if err != nil {
		log.Printf("[WARN] google sign-in rejected: %v", err)
		return nil, "", helper.Unauthenticated("Invalid Google ID token")
	}

	user, err := s.users.FindByGoogleID(ctx, ident.Subject)
	if errors.Is(err, helper.ErrNotFound) {
		user, err = s.linkOrCreateGoogleUser(ctx, ident)
	}
	if err != nil {
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", helper.Forbidden("Account is deactivated, contact the administrator")
	}

	token, err := s.IssueFor(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) linkOrCreateGoogleUser(ctx context.Context, ident *GoogleIdentity) (*model.UserModel, error) {
	sub := ident.Subject
	existing, err := s.users.FindByEmail(ctx, ident.Email)
	switch {
	case err == nil:
		existing.GoogleID = &sub
		if err := s.users.DB.WithContext(ctx).Model(existing).Update("google_id", sub).Error; err != nil {
			return nil, err
		}
		return existing, nil
	case !errors.Is(err, helper.ErrNotFound):
		return nil, err
	}

	hash, err := authHelper.HashPassword(randomSecret())
	if err != nil {
		return nil, err
	}
	first, last := splitName(ident.Name)
	user := &model.UserModel{
		Email:      model.NormalizeEmail(ident.Email),
		Password:   hash,
		GoogleID:   &sub,
		FirstName:  first,
		LastName:   optional(last),
		Role:       constants.RoleStudent,
		IsActive:   true,
		IsVerified: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// IssueFor signs an access token whose subject is the user's email.
func (s *AuthService) IssueFor(u *model.UserModel) (string, error) {
	return s.tokens.Issue(map[string]any{
		"sub":  u.Email,
		"id":   u.ID.String(),
		"role": string(u.Role),
	}, s.ttl)
}

/* ==========================
   helpers
========================== */

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "User", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func randomSecret() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}
