package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
)

type SubjectModel struct {
	ID    uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	Name  constants.SubjectName `gorm:"type:varchar(50);not null;uniqueIndex:uq_subjects_name_alive,where:deleted_at IS NULL" json:"name"`
	Grade constants.Grade       `gorm:"type:varchar(2);not null" json:"grade"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (s *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Grade == "" {
		s.Grade = constants.GradeUnset
	}
	return nil
}
