package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helpers "ksms_backend/internals/helpers"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	h1, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	h2, err := HashPassword("s3cretpass")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "salted hashes must differ")
	assert.True(t, VerifyPassword("s3cretpass", h1))
	assert.True(t, VerifyPassword("s3cretpass", h2))
	assert.False(t, VerifyPassword("wrongpass1", h1))
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	err := CheckPasswordHash("not-a-bcrypt-hash", "s3cretpass")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
	assert.False(t, VerifyPassword("s3cretpass", "not-a-bcrypt-hash"))
}

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("Jane", "Jane@Example.com ", "abc12345"))

	err := ValidateRegisterInput("", "nope", "short")
	require.Error(t, err)
	var ae *helpers.AppError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "first_name")
	assert.Contains(t, ae.Fields, "email")
	assert.Contains(t, ae.Fields, "password")
}
