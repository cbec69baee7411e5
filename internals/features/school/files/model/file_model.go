package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
)

// FileModel is the metadata of an uploaded document. The bytes live under UPLOAD_DIR.
type FileModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Filename    string             `gorm:"size:255;not null;uniqueIndex:uq_files_filename_alive,where:deleted_at IS NULL" json:"filename"`
	Filepath    string             `gorm:"size:500;not null" json:"-"`
	ContentType string             `gorm:"size:100" json:"content_type"`
	Kind        constants.FileKind `gorm:"not null" json:"kind"`
	Size        int64              `gorm:"not null" json:"size"`
	UploadedBy  *uuid.UUID         `gorm:"type:uuid;index" json:"uploaded_by"`
	UploadedAt  time.Time          `gorm:"not null" json:"uploaded_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (FileModel) TableName() string { return "files" }

func (f *FileModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.UploadedAt.IsZero() {
		f.UploadedAt = time.Now()
	}
	return nil
}
