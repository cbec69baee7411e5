package dto

import (
	"time"

	"github.com/google/uuid"

	"ksms_backend/internals/features/communication/conversations/model"
)

type SendRequest struct {
	Content string `json:"content" form:"content" validate:"required,max=5000"`
}

type ChatMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	TeacherID uuid.UUID             `json:"teacher_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

// ConversationSummary is one row of the admin inbox.
type ConversationSummary struct {
	ID            uuid.UUID  `json:"id"`
	TeacherID     uuid.UUID  `json:"teacher_id"`
	TeacherName   string     `json:"teacher_name"`
	TeacherEmail  string     `json:"teacher_email"`
	MessageCount  int64      `json:"message_count"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

func FromMessage(m *model.ChatMessageModel) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func FromMessages(ms []model.ChatMessageModel) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromMessage(&ms[i]))
	}
	return out
}
