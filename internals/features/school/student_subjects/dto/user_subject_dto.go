package dto

import (
	"ksms_backend/internals/constants"
	helper "ksms_backend/internals/helpers"
)

type AddSubjectRequest struct {
	Name  string `json:"name"  form:"name"  validate:"required"`
	Grade string `json:"grade" form:"grade" validate:"omitempty,oneof=A B C D E F U X"`
}

func (r *AddSubjectRequest) Normalize() {
	r.Name = string(constants.NormalizeSubjectName(r.Name))
	if r.Grade == "" {
		r.Grade = string(constants.GradeUnset)
	}
}

func (r AddSubjectRequest) Validate() error {
	return helper.ValidateStruct(r)
}

// SubjectGrade is one row of a principal's subject list.
type SubjectGrade struct {
	SubjectName string `json:"subject_name"`
	Grade       string `json:"grade"`
}

type Skipped struct {
	Input  AddSubjectRequest `json:"input"`
	Reason string            `json:"reason"`
}

// BulkResult reports which entries were stored and why the others were not.
type BulkResult struct {
	Created []SubjectGrade `json:"created"`
	Skipped []Skipped      `json:"skipped"`
}

const (
	ReasonUnknownSubject = "subject not found"
	ReasonAlreadyAdded   = "subject already added"
	ReasonInvalid        = "invalid entry"
)
