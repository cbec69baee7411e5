// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/user/model"
)

// NewDB opens a private in-memory SQLite database and migrates models into it.
func NewDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
	return db
}

// CreateUser inserts an active, verified user. An empty password stores an unusable hash.
func CreateUser(t *testing.T, db *gorm.DB, email, pwd string, role constants.Role) *model.UserModel {
	t.Helper()
	hash := "!"
	if pwd != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		hash = string(b)
	}
	u := &model.UserModel{
		Email:      email,
		Password:   hash,
		FirstName:  "Test",
		Role:       role,
		IsActive:   true,
		IsVerified: true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return u
}
