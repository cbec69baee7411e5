package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ksms_backend/internals/features/communication/messages/model"
	helper "ksms_backend/internals/helpers"
)

type CreateMessageRequest struct {
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

type UpdateMessageRequest struct {
	Message helper.PatchField[string] `json:"message"`
}

func (p UpdateMessageRequest) ApplyTo(m *model.MessageModel) error {
	if err := p.Message.Apply("message", &m.Message); err != nil {
		return err
	}
	m.Message = strings.TrimSpace(m.Message)
	if m.Message == "" {
		return helper.InvalidField("message", "is required")
	}
	return nil
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=SENT DELIVERED READ"`
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *model.MessageModel) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Message:   m.Message,
		Status:    string(m.Status),
		IsDeleted: m.DeletedAt.Valid,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(ms []model.MessageModel) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
