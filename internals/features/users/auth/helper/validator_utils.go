package helper

import (
	"regexp"
	"strings"

	"ksms_backend/internals/features/users/user/model"
	helpers "ksms_backend/internals/helpers"
)

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	letterRe = regexp.MustCompile(`[A-Za-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72
)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func isAlphaNumeric(s string) bool {
	return letterRe.MatchString(s) && digitRe.MatchString(s)
}

func ValidatePassword(field, password string) error {
	switch {
	case len(password) < minPasswordLen:
		return helpers.InvalidField(field, "must be at least 8 characters")
	case len(password) > maxPasswordLen:
		return helpers.InvalidField(field, "must be at most 72 bytes")
	case !isAlphaNumeric(password):
		return helpers.InvalidField(field, "must contain letters and numbers")
	}
	return nil
}

func ValidateRegisterInput(firstName, email, password string) error {
	return helpers.JoinPatchErrors(
		requireNonEmpty("first_name", firstName),
		validateEmail(email),
		ValidatePassword("password", password),
	)
}

func ValidateLoginInput(email, password string) error {
	return helpers.JoinPatchErrors(
		requireNonEmpty("username", email),
		requireNonEmpty("password", password),
	)
}

func validateEmail(email string) error {
	if !isValidEmail(model.NormalizeEmail(email)) {
		return helpers.InvalidField("email", "must be a valid email address")
	}
	return nil
}

func requireNonEmpty(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return helpers.InvalidField(field, "is required")
	}
	return nil
}
