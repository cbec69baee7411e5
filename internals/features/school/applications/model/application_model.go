package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	subjectModel "ksms_backend/internals/features/school/subjects/model"
	userModel "ksms_backend/internals/features/users/user/model"
)

// ApplicationModel is a student's admission application. A principal holds at
// most one live application.
type ApplicationModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicantID uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:uq_applications_applicant_alive,where:deleted_at IS NULL" json:"applicant_id"`
	Status      constants.ApplicationStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	Applicant *userModel.UserModel        `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`
	Subjects  []subjectModel.SubjectModel `gorm:"many2many:application_subjects;joinForeignKey:ApplicationID;joinReferences:SubjectID;constraint:OnDelete:CASCADE" json:"subjects"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ApplicationModel) TableName() string { return "applications" }

func (a *ApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = constants.ApplicationSent
	}
	return nil
}
