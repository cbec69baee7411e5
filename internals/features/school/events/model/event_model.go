package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"size:200;not null;index" json:"name"`
	Description *string        `gorm:"type:text" json:"description"`
	Date        datatypes.Date `gorm:"not null;index" json:"date"`
	StartTime   datatypes.Time `gorm:"not null" json:"start_time"`
	EndTime     datatypes.Time `gorm:"not null" json:"end_time"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (EventModel) TableName() string { return "events" }

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
