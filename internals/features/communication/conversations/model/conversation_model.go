package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	userModel "ksms_backend/internals/features/users/user/model"
)

// ConversationModel is the single admin thread of one teacher.
type ConversationModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	TeacherID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex" json:"teacher_id"`
	Teacher   *userModel.UserModel `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"-"`

	Messages []ChatMessageModel `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ConversationModel) TableName() string { return "conversations" }

func (c *ConversationModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type ChatMessageModel struct {
	ID             uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID            `gorm:"type:uuid;not null;index" json:"conversation_id"`
	TeacherID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"teacher_id"`
	Sender         constants.ChatSender `gorm:"type:varchar(10);not null" json:"sender"`
	Content        string               `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ChatMessageModel) TableName() string { return "chat_messages" }

func (m *ChatMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
