package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService("test-secret", "HS256")
	require.NoError(t, err)
	return ts
}

func TestIssueDecodeRoundTrip(t *testing.T) {
	ts := newTokens(t)
	before := time.Now().Unix()

	tok, err := ts.Issue(map[string]any{"sub": "jane@example.com"}, 15*time.Minute)
	require.NoError(t, err)

	claims, err := ts.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims["sub"])
	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), before)
}

func TestDecodeExpired(t *testing.T) {
	ts := newTokens(t)
	tok, err := ts.Issue(map[string]any{"sub": "jane@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = ts.Decode(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecodeTampered(t *testing.T) {
	ts := newTokens(t)
	tok, err := ts.Issue(map[string]any{"sub": "jane@example.com"}, time.Minute)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = ts.Decode(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeWrongSecretBeatsExpiry(t *testing.T) {
	other, err := NewTokenService("another-secret", "HS256")
	require.NoError(t, err)
	tok, err := other.Issue(map[string]any{"sub": "x@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = newTokens(t).Decode(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsOtherAlgorithm(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "x@example.com",
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = newTokens(t).Decode(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := newTokens(t).Decode("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenServiceRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewTokenService("s", "RS256")
	assert.Error(t, err)
	_, err = NewTokenService("", "HS256")
	assert.Error(t, err)
}
