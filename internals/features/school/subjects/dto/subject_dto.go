package dto

import (
	"time"

	"github.com/google/uuid"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/subjects/model"
	helper "ksms_backend/internals/helpers"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateSubjectRequest struct {
	Name  string `json:"name"  form:"name"  validate:"required"`
	Grade string `json:"grade" form:"grade" validate:"omitempty,oneof=A B C D E F U X"`
}

// Normalize upper-cases the name and resolves aliases such as MATH.
func (r *CreateSubjectRequest) Normalize() {
	r.Name = string(constants.NormalizeSubjectName(r.Name))
	if r.Grade == "" {
		r.Grade = string(constants.GradeUnset)
	}
}

func (r CreateSubjectRequest) Validate() error {
	if err := helper.ValidateStruct(r); err != nil {
		return err
	}
	return validSubjectName(r.Name)
}

func (r CreateSubjectRequest) ToModel() *model.SubjectModel {
	return &model.SubjectModel{
		Name:  constants.SubjectName(r.Name),
		Grade: constants.Grade(r.Grade),
	}
}

type BulkCreateSubjectRequest struct {
	Subjects []CreateSubjectRequest `json:"subjects" validate:"required,min=1,dive"`
}

/* =========================================================
   PATCH
   ========================================================= */

type UpdateSubjectRequest struct {
	Name  helper.PatchField[string] `json:"name"`
	Grade helper.PatchField[string] `json:"grade"`
}

func (p UpdateSubjectRequest) ApplyTo(s *model.SubjectModel) error {
	var name, grade string
	name, grade = string(s.Name), string(s.Grade)
	err := helper.JoinPatchErrors(
		p.Name.Apply("name", &name),
		p.Grade.Apply("grade", &grade),
	)
	if err != nil {
		return err
	}
	name = string(constants.NormalizeSubjectName(name))
	if err := validSubjectName(name); err != nil {
		return err
	}
	if err := helper.Validator().Var(grade, "oneof="+constants.GradeOneOf); err != nil {
		return helper.InvalidField("grade", "must be one of: "+constants.GradeOneOf)
	}
	s.Name, s.Grade = constants.SubjectName(name), constants.Grade(grade)
	return nil
}

func validSubjectName(name string) error {
	if err := helper.Validator().Var(name, "oneof="+constants.SubjectNameOneOf); err != nil {
		return helper.InvalidField("name", "must be one of: "+constants.SubjectNameOneOf)
	}
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type SubjectResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Grade     string    `json:"grade"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		ID:        m.ID,
		Name:      string(m.Name),
		Grade:     string(m.Grade),
		IsDeleted: m.DeletedAt.Valid,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
