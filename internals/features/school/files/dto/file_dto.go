package dto

import (
	"time"

	"github.com/google/uuid"

	"ksms_backend/internals/features/school/files/model"
)

type FileResponse struct {
	ID          uuid.UUID  `json:"file_id"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	Kind        int        `json:"kind"`
	Size        int64      `json:"size"`
	UploadedBy  *uuid.UUID `json:"uploaded_by"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	IsDeleted   bool       `json:"is_deleted"`
}

func FromModel(m *model.FileModel) FileResponse {
	return FileResponse{
		ID:          m.ID,
		Filename:    m.Filename,
		ContentType: m.ContentType,
		Kind:        int(m.Kind),
		Size:        m.Size,
		UploadedBy:  m.UploadedBy,
		UploadedAt:  m.UploadedAt,
		IsDeleted:   m.DeletedAt.Valid,
	}
}

func FromModels(ms []model.FileModel) []FileResponse {
	out := make([]FileResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
