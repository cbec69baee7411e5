package seeds

import (
	"context"

	"gorm.io/gorm"

	"ksms_backend/internals/configs"
	"ksms_backend/internals/seeds/subjects"
	"ksms_backend/internals/seeds/users"
)

// Run applies every seed. All seeds are idempotent.
func Run(ctx context.Context, db *gorm.DB, cfg *configs.Settings) error {
	if _, err := subjects.SeedSubjects(ctx, db); err != nil {
		return err
	}
	_, err := users.SeedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword)
	return err
}
