package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
)

/* =======================================================
   PATCH DTOs
   ======================================================= */

// ProfilePatch holds the fields every principal may edit on itself.
type ProfilePatch struct {
	FirstName   helper.PatchField[string] `json:"first_name"`
	LastName    helper.PatchField[string] `json:"last_name"`
	PhoneNumber helper.PatchField[string] `json:"phone_number"`
}

func (p ProfilePatch) apply(u *model.UserModel) []error {
	errs := []error{p.FirstName.Apply("first_name", &u.FirstName)}
	u.FirstName = strings.TrimSpace(u.FirstName)
	if p.FirstName.Present && u.FirstName == "" {
		errs = append(errs, helper.InvalidField("first_name", "is required"))
	}
	p.LastName.ApplyNullable(&u.LastName)
	p.PhoneNumber.ApplyNullable(&u.PhoneNumber)
	if u.PhoneNumber != nil {
		phone := strings.TrimSpace(*u.PhoneNumber)
		if phone == "" {
			u.PhoneNumber = nil
		} else {
			u.PhoneNumber = &phone
		}
	}
	return errs
}

type StudentUpdate struct {
	ProfilePatch
	DateOfBirth            helper.PatchField[string] `json:"date_of_birth"`
	IDNumber               helper.PatchField[string] `json:"id_number"`
	NumberOfPassedSubjects helper.PatchField[int]    `json:"number_of_passed_subjects"`
	Gender                 helper.PatchField[string] `json:"gender"`
	PreviousSchool         helper.PatchField[string] `json:"previous_school"`
	NextOfKin              helper.PatchField[string] `json:"next_of_kin"`
	CurrentAcademicLevel   helper.PatchField[string] `json:"current_academic_level"`
}

func (p StudentUpdate) ApplyTo(u *model.UserModel) error {
	errs := p.ProfilePatch.apply(u)

	p.IDNumber.ApplyNullable(&u.IDNumber)
	p.PreviousSchool.ApplyNullable(&u.PreviousSchool)
	p.NextOfKin.ApplyNullable(&u.NextOfKin)

	p.NumberOfPassedSubjects.ApplyNullable(&u.NumberOfPassedSubjects)
	if n := u.NumberOfPassedSubjects; n != nil && *n < 0 {
		errs = append(errs, helper.InvalidField("number_of_passed_subjects", "must be at least 0"))
	}

	if p.DateOfBirth.Present {
		if p.DateOfBirth.Value == nil {
			u.DateOfBirth = nil
		} else if t, err := time.Parse("2006-01-02", strings.TrimSpace(*p.DateOfBirth.Value)); err != nil {
			errs = append(errs, helper.InvalidField("date_of_birth", "must be a date (YYYY-MM-DD)"))
		} else {
			d := datatypes.Date(t)
			u.DateOfBirth = &d
		}
	}

	errs = append(errs,
		applyEnum(p.Gender, "gender", constants.GenderOneOf, &u.Gender),
		applyEnum(p.CurrentAcademicLevel, "current_academic_level", constants.EducationLevelOneOf, &u.CurrentAcademicLevel),
	)
	return helper.JoinPatchErrors(errs...)
}

type TeacherUpdate struct {
	ProfilePatch
	TeachingSubject             helper.PatchField[string] `json:"teaching_subject"`
	TeacherIDNumber             helper.PatchField[string] `json:"teacher_id_number"`
	TeacherGender               helper.PatchField[string] `json:"teacher_gender"`
	TeacherNextOfKin            helper.PatchField[string] `json:"teacher_next_of_kin"`
	TeacherCurrentAcademicLevel helper.PatchField[string] `json:"teacher_current_academic_level"`
}

func (p TeacherUpdate) ApplyTo(u *model.UserModel) error {
	errs := p.ProfilePatch.apply(u)
	p.TeachingSubject.ApplyNullable(&u.TeachingSubject)
	p.TeacherIDNumber.ApplyNullable(&u.TeacherIDNumber)
	p.TeacherNextOfKin.ApplyNullable(&u.TeacherNextOfKin)
	errs = append(errs,
		applyEnum(p.TeacherGender, "teacher_gender", constants.GenderOneOf, &u.TeacherGender),
		applyEnum(p.TeacherCurrentAcademicLevel, "teacher_current_academic_level", constants.TeacherEducationLevelOneOf, &u.TeacherCurrentAcademicLevel),
	)
	return helper.JoinPatchErrors(errs...)
}

// applyEnum upper-cases the value and checks it against a validator oneof list.
func applyEnum[T ~string](p helper.PatchField[string], field, oneOf string, dst **T) error {
	if !p.Present {
		return nil
	}
	if p.Value == nil {
		*dst = nil
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*p.Value))
	if err := helper.Validator().Var(v, "oneof="+oneOf); err != nil {
		return helper.InvalidField(field, "must be one of: "+oneOf)
	}
	t := T(v)
	*dst = &t
	return nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    *string   `json:"last_name"`
	PhoneNumber *string   `json:"phone_number"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsVerified  bool      `json:"is_verified"`
	IsDeleted   bool      `json:"is_deleted"`

	IDNumber               *string `json:"id_number,omitempty"`
	Gender                 *string `json:"gender,omitempty"`
	DateOfBirth            *string `json:"date_of_birth,omitempty"`
	NumberOfPassedSubjects *int    `json:"number_of_passed_subjects,omitempty"`
	PreviousSchool         *string `json:"previous_school,omitempty"`
	NextOfKin              *string `json:"next_of_kin,omitempty"`
	CurrentAcademicLevel   *string `json:"current_academic_level,omitempty"`

	TeachingSubject             *string    `json:"teaching_subject,omitempty"`
	TeacherIDNumber             *string    `json:"teacher_id_number,omitempty"`
	TeacherGender               *string    `json:"teacher_gender,omitempty"`
	TeacherNextOfKin            *string    `json:"teacher_next_of_kin,omitempty"`
	TeacherCurrentAcademicLevel *string    `json:"teacher_current_academic_level,omitempty"`
	IsCheckedOut                *bool      `json:"is_checked_out,omitempty"`
	LastCheckedIn               *time.Time `json:"last_checked_in,omitempty"`
	LastCheckedOut              *time.Time `json:"last_checked_out,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func strPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func FromModel(u *model.UserModel) UserResponse {
	r := UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		IsVerified:  u.IsVerified,
		IsDeleted:   u.DeletedAt.Valid,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,

		IDNumber:               u.IDNumber,
		Gender:                 strPtr(u.Gender),
		NumberOfPassedSubjects: u.NumberOfPassedSubjects,
		PreviousSchool:         u.PreviousSchool,
		NextOfKin:              u.NextOfKin,
		CurrentAcademicLevel:   strPtr(u.CurrentAcademicLevel),
	}
	if u.DateOfBirth != nil {
		s := time.Time(*u.DateOfBirth).Format("2006-01-02")
		r.DateOfBirth = &s
	}
	if u.Role == constants.RoleTeacher {
		checkedOut := u.IsCheckedOut
		r.TeachingSubject = u.TeachingSubject
		r.TeacherIDNumber = u.TeacherIDNumber
		r.TeacherGender = strPtr(u.TeacherGender)
		r.TeacherNextOfKin = u.TeacherNextOfKin
		r.TeacherCurrentAcademicLevel = strPtr(u.TeacherCurrentAcademicLevel)
		r.IsCheckedOut = &checkedOut
		r.LastCheckedIn = u.LastCheckedIn
		r.LastCheckedOut = u.LastCheckedOut
	}
	return r
}

func FromModels(us []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for i := range us {
		out = append(out, FromModel(&us[i]))
	}
	return out
}
