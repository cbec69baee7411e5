package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", Unauthenticated("no session"), fiber.StatusUnauthorized},
		{"expired", ErrTokenExpired, fiber.StatusUnauthorized},
		{"forbidden", Forbidden("admins only"), fiber.StatusForbidden},
		{"not found", NotFound("subject %s not found", "MATHS"), fiber.StatusNotFound},
		{"gorm not found wrapped", pkgerrors.Wrap(gorm.ErrRecordNotFound, "load user"), fiber.StatusNotFound},
		{"conflict", Conflict("exists"), fiber.StatusConflict},
		{"pg unique", pkgerrors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), fiber.StatusConflict},
		{"gorm duplicated", gorm.ErrDuplicatedKey, fiber.StatusConflict},
		{"validation", Invalid("bad"), fiber.StatusUnprocessableEntity},
		{"transition", ErrInvalidTransition, fiber.StatusUnprocessableEntity},
		{"fiber error", fiber.NewError(fiber.StatusBadRequest, "bad body"), fiber.StatusBadRequest},
		{"other", io.ErrUnexpectedEOF, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}

func TestFromErrorEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/missing", func(c *fiber.Ctx) error { return NotFound("Subject not found") })
	app.Get("/anon", func(c *fiber.Ctx) error { return Unauthenticated("Not authenticated") })
	app.Get("/field", func(c *fiber.Ctx) error { return InvalidField("name", "cannot be null") })
	app.Get("/boom", func(c *fiber.Ctx) error { return io.ErrUnexpectedEOF })

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Subject not found", body.Message)
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/anon", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

	resp, err = app.Test(httptest.NewRequest("GET", "/field", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body = ErrorResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"cannot be null"}, body.Errors["name"])

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body = ErrorResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	type req struct {
		Email string `json:"email" validate:"required,email"`
		Role  string `json:"role" validate:"omitempty,oneof=STUDENT ADMIN"`
	}
	err := ValidateStruct(req{Email: "nope", Role: "OWNER"})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, StatusOf(err))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error { return err })
	resp, rerr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, rerr)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "role")
}
