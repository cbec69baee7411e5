package service

import (
	"context"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/student_subjects/dto"
	"ksms_backend/internals/features/school/student_subjects/model"
	subjectModel "ksms_backend/internals/features/school/subjects/model"
	helper "ksms_backend/internals/helpers"
)

type UserSubjectService struct {
	DB *gorm.DB
}

func NewUserSubjectService(db *gorm.DB) *UserSubjectService {
	return &UserSubjectService{DB: db}
}

func findSubject(tx *gorm.DB, name constants.SubjectName) (*subjectModel.SubjectModel, error) {
	var s subjectModel.SubjectModel
	err := tx.Where("name = ?", name).First(&s).Error
	if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Subject %s not found", name)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find subject")
	}
	return &s, nil
}

func linked(tx *gorm.DB, userID, subjectID uuid.UUID) (bool, error) {
	var n int64
	err := tx.Model(&model.UserSubjectModel{}).
		Where("user_id = ? AND subject_id = ?", userID, subjectID).
		Count(&n).Error
	if err != nil {
		return false, pkgerrors.Wrap(err, "check user subject")
	}
	return n > 0, nil
}

// Add links one subject to the principal.
func (s *UserSubjectService) Add(ctx context.Context, userID uuid.UUID, req dto.AddSubjectRequest) (*dto.SubjectGrade, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out *dto.SubjectGrade
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subj, err := findSubject(tx, constants.SubjectName(req.Name))
		if err != nil {
			return err
		}
		exists, err := linked(tx, userID, subj.ID)
		if err != nil {
			return err
		}
		if exists {
			return helper.Conflict("Subject %s already added", subj.Name)
		}
		row := model.UserSubjectModel{UserID: userID, SubjectID: subj.ID, Grade: constants.Grade(req.Grade)}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.Conflict("Subject %s already added", subj.Name)
			}
			return pkgerrors.Wrap(err, "create user subject")
		}
		out = &dto.SubjectGrade{SubjectName: string(subj.Name), Grade: string(row.Grade)}
		return nil
	})
	return out, err
}

// AddBulk stores every valid entry in one transaction and reports the rest as skipped.
func (s *UserSubjectService) AddBulk(ctx context.Context, userID uuid.UUID, reqs []dto.AddSubjectRequest) (*dto.BulkResult, error) {
	res := &dto.BulkResult{Created: []dto.SubjectGrade{}, Skipped: []dto.Skipped{}}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := map[uuid.UUID]bool{}
		for _, in := range reqs {
			req := in
			req.Normalize()
			if err := req.Validate(); err != nil {
				res.Skipped = append(res.Skipped, dto.Skipped{Input: in, Reason: dto.ReasonInvalid})
				continue
			}
			subj, err := findSubject(tx, constants.SubjectName(req.Name))
			if pkgerrors.Is(err, helper.ErrNotFound) {
				res.Skipped = append(res.Skipped, dto.Skipped{Input: in, Reason: dto.ReasonUnknownSubject})
				continue
			}
			if err != nil {
				return err
			}
			exists, err := linked(tx, userID, subj.ID)
			if err != nil {
				return err
			}
			if exists || seen[subj.ID] {
				res.Skipped = append(res.Skipped, dto.Skipped{Input: in, Reason: dto.ReasonAlreadyAdded})
				continue
			}
			row := model.UserSubjectModel{UserID: userID, SubjectID: subj.ID, Grade: constants.Grade(req.Grade)}
			if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
				return pkgerrors.Wrap(err, "create user subject")
			}
			seen[subj.ID] = true
			res.Created = append(res.Created, dto.SubjectGrade{SubjectName: string(subj.Name), Grade: string(row.Grade)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Remove hard-deletes the link between the principal and a subject.
func (s *UserSubjectService) Remove(ctx context.Context, userID uuid.UUID, subjectName string) error {
	name := constants.NormalizeSubjectName(subjectName)
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subj, err := findSubject(tx, name)
		if err != nil {
			return err
		}
		res := tx.Where("user_id = ? AND subject_id = ?", userID, subj.ID).Delete(&model.UserSubjectModel{})
		if res.Error != nil {
			return pkgerrors.Wrap(res.Error, "delete user subject")
		}
		if res.RowsAffected == 0 {
			return helper.NotFound("Subject %s is not linked to this user", name)
		}
		return nil
	})
}

// ListForPrincipal returns the principal's live subjects ordered by name.
func (s *UserSubjectService) ListForPrincipal(ctx context.Context, userID uuid.UUID) ([]dto.SubjectGrade, error) {
	out := make([]dto.SubjectGrade, 0)
	err := s.DB.WithContext(ctx).
		Table("user_subjects AS us").
		Select("s.name AS subject_name, us.grade AS grade").
		Joins("JOIN subjects s ON s.id = us.subject_id AND s.deleted_at IS NULL").
		Where("us.user_id = ?", userID).
		Order("s.name ASC").
		Scan(&out).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list user subjects")
	}
	return out, nil
}
