package model

import (
	"time"

	"github.com/google/uuid"

	"ksms_backend/internals/constants"
	subjectModel "ksms_backend/internals/features/school/subjects/model"
	userModel "ksms_backend/internals/features/users/user/model"
)

// UserSubjectModel links a principal to a catalog subject with the grade obtained.
// Rows are hard-deleted.
type UserSubjectModel struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	SubjectID uuid.UUID       `gorm:"type:uuid;primaryKey;index" json:"subject_id"`
	Grade     constants.Grade `gorm:"type:varchar(2);not null" json:"grade"`

	User    *userModel.UserModel       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Subject *subjectModel.SubjectModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (UserSubjectModel) TableName() string { return "user_subjects" }
