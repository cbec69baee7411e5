package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
)

// UserModel is the principal: students, parents, teachers and admins share one table.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email    string    `gorm:"size:255;not null;uniqueIndex:uq_users_email_alive,where:deleted_at IS NULL" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	GoogleID *string   `gorm:"size:255;index" json:"-"`

	FirstName   string  `gorm:"size:100;not null" json:"first_name"`
	LastName    *string `gorm:"size:100" json:"last_name"`
	PhoneNumber *string `gorm:"size:30;uniqueIndex:uq_users_phone_alive,where:deleted_at IS NULL" json:"phone_number"`
	IDNumber    *string `gorm:"size:50" json:"id_number"`

	Gender                 *constants.Gender         `gorm:"type:varchar(10)" json:"gender"`
	DateOfBirth            *datatypes.Date           `json:"date_of_birth"`
	NumberOfPassedSubjects *int                      `json:"number_of_passed_subjects"`
	PreviousSchool         *string                   `gorm:"size:150" json:"previous_school"`
	NextOfKin              *string                   `gorm:"size:150" json:"next_of_kin"`
	CurrentAcademicLevel   *constants.EducationLevel `gorm:"type:varchar(20)" json:"current_academic_level"`

	Role       constants.Role `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive   bool           `gorm:"not null" json:"is_active"`
	IsVerified bool           `gorm:"not null" json:"is_verified"`

	// teacher profile
	TeachingSubject             *string                          `gorm:"size:100" json:"teaching_subject"`
	TeacherIDNumber             *string                          `gorm:"size:50" json:"teacher_id_number"`
	TeacherGender               *constants.Gender                `gorm:"type:varchar(10)" json:"teacher_gender"`
	TeacherNextOfKin            *string                          `gorm:"size:150" json:"teacher_next_of_kin"`
	TeacherCurrentAcademicLevel *constants.TeacherEducationLevel `gorm:"type:varchar(20)" json:"teacher_current_academic_level"`

	IsCheckedOut   bool       `gorm:"not null" json:"is_checked_out"`
	LastCheckedIn  *time.Time `json:"last_checked_in"`
	LastCheckedOut *time.Time `json:"last_checked_out"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

func (u *UserModel) IsDeleted() bool { return u.DeletedAt.Valid }

func (u *UserModel) FullName() string {
	if u.LastName == nil || *u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + *u.LastName
}

// NormalizeEmail is applied on every write and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
