package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/KSMS")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("UPLOAD_MAX_MB", "")
	t.Setenv("ENCRYPTION_ALGORITHM", "")

	s := FromEnv()

	assert.Equal(t, 30*time.Minute, s.AccessTokenTTL)
	assert.Equal(t, "HS256", s.JWTAlgorithm)
	assert.Equal(t, "postgres://u:p@db:5432/KSMS", s.DatabaseURL)
	assert.Equal(t, []string{"http://127.0.0.1:3000", "http://localhost:3000"}, s.AllowedOrigins)
	assert.Equal(t, 10*1024*1024, s.UploadMaxBytes)
	assert.False(t, s.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	s := FromEnv()

	assert.Equal(t, 5*time.Minute, s.AccessTokenTTL)
	assert.True(t, s.RedisEnabled)
	assert.Equal(t, "cache:6380", s.RedisAddr)
	assert.True(t, s.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, s.AllowedOrigins)
}

func TestGetEnvFallbacks(t *testing.T) {
	t.Setenv("KSMS_TEST_INT", "abc")
	t.Setenv("KSMS_TEST_BOOL", "nope")

	assert.Equal(t, 7, GetEnvInt("KSMS_TEST_INT", 7))
	assert.True(t, GetEnvBool("KSMS_TEST_BOOL", true))
	assert.Equal(t, "x", GetEnv("KSMS_TEST_MISSING", "x"))
}
