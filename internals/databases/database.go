package database

import (
	"context"
	"log"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"ksms_backend/internals/configs"
	callModel "ksms_backend/internals/features/communication/calls/model"
	conversationModel "ksms_backend/internals/features/communication/conversations/model"
	messageModel "ksms_backend/internals/features/communication/messages/model"
	applicationModel "ksms_backend/internals/features/school/applications/model"
	eventModel "ksms_backend/internals/features/school/events/model"
	fileModel "ksms_backend/internals/features/school/files/model"
	userSubjectModel "ksms_backend/internals/features/school/student_subjects/model"
	subjectModel "ksms_backend/internals/features/school/subjects/model"
	userModel "ksms_backend/internals/features/users/user/model"
)

var DB *gorm.DB

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&subjectModel.SubjectModel{},
		&userSubjectModel.UserSubjectModel{},
		&applicationModel.ApplicationModel{},
		&messageModel.MessageModel{},
		&eventModel.EventModel{},
		&fileModel.FileModel{},
		&conversationModel.ConversationModel{},
		&conversationModel.ChatMessageModel{},
		&callModel.ActiveCallModel{},
	}
}

func ConnectDB(cfg *configs.Settings) *gorm.DB {
	log.Println("[INFO] connecting to PostgreSQL...")

	level := gormLogger.Warn
	if !cfg.IsProduction() {
		level = gormLogger.Info
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(level),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("[FATAL] database connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] database connected")
	return db
}

func TunePool(db *gorm.DB, cfg *configs.Settings) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(cfg.DatabasePoolSize)
	sqlDB.SetMaxIdleConns(cfg.DatabasePoolIdle)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates or updates every table, including the partial unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return pkgerrors.Wrap(err, "auto migrate")
	}
	log.Println("[INFO] schema migrated")
	return nil
}

func WarmUpQueries(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.Printf("[WARN] warm-up ping: %v", err)
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
