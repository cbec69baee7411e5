package helper

import (
	stdErrors "errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

/* ========== Error kinds ========== */

var (
	ErrUnauthenticated   = stdErrors.New("not authenticated")
	ErrTokenExpired      = stdErrors.New("token has expired")
	ErrForbidden         = stdErrors.New("forbidden")
	ErrNotFound          = stdErrors.New("not found")
	ErrConflict          = stdErrors.New("conflict")
	ErrValidation        = stdErrors.New("validation failed")
	ErrInvalidTransition = stdErrors.New("invalid status transition")
)

// AppError carries a user-facing message on top of one of the kinds above.
type AppError struct {
	Kind    error
	Message string
	Fields  map[string][]string
}

func (e *AppError) Error() string { return e.Message }
func (e *AppError) Unwrap() error { return e.Kind }

func newAppError(kind error, format string, args ...any) error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &AppError{Kind: kind, Message: msg}
}

func Unauthenticated(format string, args ...any) error {
	return newAppError(ErrUnauthenticated, format, args...)
}
func Forbidden(format string, args ...any) error { return newAppError(ErrForbidden, format, args...) }
func NotFound(format string, args ...any) error  { return newAppError(ErrNotFound, format, args...) }
func Conflict(format string, args ...any) error  { return newAppError(ErrConflict, format, args...) }
func Invalid(format string, args ...any) error   { return newAppError(ErrValidation, format, args...) }

// InvalidField reports a validation failure for a single named field.
func InvalidField(field, message string) error {
	return &AppError{
		Kind:    ErrValidation,
		Message: message,
		Fields:  map[string][]string{field: {message}},
	}
}

// StatusOf maps an error to its HTTP status.
func StatusOf(err error) int {
	var fe *fiber.Error
	var ve validator.ValidationErrors
	switch {
	case err == nil:
		return fiber.StatusOK
	case stdErrors.As(err, &fe):
		return fe.Code
	case stdErrors.As(err, &ve):
		return fiber.StatusUnprocessableEntity
	case stdErrors.Is(err, ErrTokenExpired), stdErrors.Is(err, ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case stdErrors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case stdErrors.Is(err, ErrNotFound), stdErrors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case stdErrors.Is(err, ErrConflict), IsUniqueViolation(err):
		return fiber.StatusConflict
	case stdErrors.Is(err, ErrValidation), stdErrors.Is(err, ErrInvalidTransition):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// IsUniqueViolation reports duplicate-key failures from either the translated
// GORM error or a raw Postgres 23505.
func IsUniqueViolation(err error) bool {
	if stdErrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return stdErrors.As(err, &pgErr) && pgErr.Code == "23505"
}

// FromError renders any error as the standard JSON envelope.
func FromError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if stdErrors.As(err, &ve) {
		return JsonValidationError(c, "validation failed", ValidationFieldErrors(ve))
	}

	var ae *AppError
	if stdErrors.As(err, &ae) && len(ae.Fields) > 0 {
		return JsonValidationError(c, ae.Message, ae.Fields)
	}

	status := StatusOf(err)
	switch {
	case status >= 500:
		log.Printf("[ERROR] %s %s: %+v", c.Method(), c.OriginalURL(), err)
		return JsonError(c, status, "Internal server error")
	case status == fiber.StatusUnauthorized:
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}

	msg := err.Error()
	switch {
	case ae != nil:
		msg = ae.Message
	case stdErrors.Is(err, gorm.ErrRecordNotFound):
		msg = "Resource not found"
	case IsUniqueViolation(err):
		msg = "Resource already exists"
	}
	return JsonError(c, status, msg)
}

// ErrorHandler is installed as fiber's global error handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromError(c, err)
}

func InvalidTransition(format string, args ...any) error {
	return newAppError(ErrInvalidTransition, format, args...)
}
