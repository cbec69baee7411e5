package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
)

// MessageModel is an admin broadcast shown to every user.
type MessageModel struct {
	ID      uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	Message string                  `gorm:"type:text;not null" json:"message"`
	Status  constants.MessageStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MessageModel) TableName() string { return "messages" }

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = constants.MessageSent
	}
	return nil
}
