package model

import "time"

// ActiveCallModel backs the table registry. One row per busy receiver.
type ActiveCallModel struct {
	ReceiverID string    `gorm:"size:100;primaryKey" json:"receiver_id"`
	CallerID   string    `gorm:"size:100;not null" json:"caller_id"`
	StartedAt  time.Time `gorm:"not null" json:"started_at"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at"`
}

func (ActiveCallModel) TableName() string { return "active_calls" }
