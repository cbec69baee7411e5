package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Settings is read once at startup. Changing a value requires a restart.
type Settings struct {
	Environment    string
	Port           string
	AllowedOrigins []string
	TrustedProxies []string

	DatabaseURL      string
	DatabasePoolSize int
	DatabasePoolIdle int

	JWTSecret         string
	JWTAlgorithm      string
	AccessTokenTTL    time.Duration
	CookieSecure      bool
	GoogleClientID    string

	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CallTTL       time.Duration

	UploadDir           string
	UploadMaxBytes      int
	UploadImageToWebP   bool
	UploadImageMaxWidth int

	StrictApplicationTransitions bool

	SeedOnStart   bool
	AdminEmail    string
	AdminPassword string
}

// Env holds the settings loaded by LoadEnv.
var Env *Settings

// =======================
// ENV LOADER
// =======================
func LoadEnv() *Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using system environment")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	s := FromEnv()
	if s.JWTSecret == "" {
		if s.IsProduction() {
			log.Fatal("[FATAL] JWT_ACCESS_SECRET_KEY is not set")
		}
		log.Println("[WARN] JWT_ACCESS_SECRET_KEY is not set, using an insecure development secret")
		s.JWTSecret = "insecure-development-secret"
	}
	if s.GoogleClientID == "" {
		log.Println("[WARN] GOOGLE_CLIENT_ID is not set, Google sign-in is disabled")
	}

	Env = s
	return s
}

// FromEnv builds Settings from the process environment without touching .env.
func FromEnv() *Settings {
	return &Settings{
		Environment:    GetEnv("ENVIRONMENT", "development"),
		Port:           GetEnv("PORT", "8000"),
		AllowedOrigins: splitList(GetEnv("ALLOWED_ORIGINS", "http://127.0.0.1:3000,http://localhost:3000")),
		TrustedProxies: splitList(GetEnv("TRUSTED_PROXIES")),

		DatabaseURL:      databaseURL(),
		DatabasePoolSize: GetEnvInt("DATABASE_POOL_SIZE", 20),
		DatabasePoolIdle: GetEnvInt("DATABASE_POOL_IDLE", 10),

		JWTSecret:      GetEnv("JWT_ACCESS_SECRET_KEY"),
		JWTAlgorithm:   GetEnv("ENCRYPTION_ALGORITHM", "HS256"),
		AccessTokenTTL: time.Duration(GetEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		CookieSecure:   GetEnvBool("COOKIE_SECURE", false),
		GoogleClientID: GetEnv("GOOGLE_CLIENT_ID"),

		RedisEnabled:  GetEnvBool("REDIS_ENABLED", false),
		RedisAddr:     GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		RedisDB:       GetEnvInt("REDIS_DB", 0),
		CallTTL:       time.Duration(GetEnvInt("CALL_TTL_SECONDS", 3600)) * time.Second,

		UploadDir:           GetEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes:      GetEnvInt("UPLOAD_MAX_MB", 10) * 1024 * 1024,
		UploadImageToWebP:   GetEnvBool("UPLOAD_IMAGE_TO_WEBP", false),
		UploadImageMaxWidth: GetEnvInt("UPLOAD_IMAGE_MAX_WIDTH", 1600),

		StrictApplicationTransitions: GetEnvBool("APPLICATION_STRICT_TRANSITIONS", false),

		SeedOnStart:   GetEnvBool("SEED_ON_START", true),
		AdminEmail:    GetEnv("ADMIN_EMAIL"),
		AdminPassword: GetEnv("ADMIN_PASSWORD"),
	}
}

func (s *Settings) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, raw, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a boolean, using %t", key, raw, def)
		return def
	}
	return b
}

func databaseURL() string {
	if url := GetEnv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=ksms",
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "KSMS"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

func splitList(raw string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !isRecordNotFound(err):
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gormLogger.ErrRecordNotFound)
}
