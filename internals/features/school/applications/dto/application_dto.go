package dto

import (
	"time"

	"github.com/google/uuid"

	"ksms_backend/internals/features/school/applications/model"
	subjectDTO "ksms_backend/internals/features/school/subjects/dto"
)

type CreateApplicationRequest struct {
	SubjectIDs []uuid.UUID `json:"subject_ids" validate:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=SENT PENDING RECEIVED APPROVED REJECTED"`
}

type ListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=SENT PENDING RECEIVED APPROVED REJECTED"`
}

type ApplicationResponse struct {
	ID          uuid.UUID                    `json:"id"`
	ApplicantID uuid.UUID                    `json:"applicant_id"`
	Status      string                       `json:"status"`
	Subjects    []subjectDTO.SubjectResponse `json:"subjects"`
	IsDeleted   bool                         `json:"is_deleted"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

func FromModel(m *model.ApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ID:          m.ID,
		ApplicantID: m.ApplicantID,
		Status:      string(m.Status),
		Subjects:    subjectDTO.FromModels(m.Subjects),
		IsDeleted:   m.DeletedAt.Valid,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(ms []model.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
