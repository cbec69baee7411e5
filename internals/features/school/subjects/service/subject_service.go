package service

import (
	"context"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/subjects/dto"
	"ksms_backend/internals/features/school/subjects/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
)

type SubjectService struct {
	lc *lifecycle.Manager[model.SubjectModel]
}

func NewSubjectService(db *gorm.DB) *SubjectService {
	return &SubjectService{
		lc: lifecycle.New[model.SubjectModel](db, "subject", lifecycle.WithOrder("name ASC")),
	}
}

// uniqueName rejects a name already held by a live subject other than s.
func uniqueName(tx *gorm.DB, s *model.SubjectModel) error {
	var n int64
	q := tx.Model(&model.SubjectModel{}).Where("name = ?", s.Name)
	if s.ID != uuid.Nil {
		q = q.Where("id <> ?", s.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return pkgerrors.Wrap(err, "check subject name")
	}
	if n > 0 {
		return helper.Conflict("Subject %s already exists", s.Name)
	}
	return nil
}

func (s *SubjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*model.SubjectModel, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m := req.ToModel()
	if err := s.lc.Create(ctx, m, uniqueName); err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMany is all-or-nothing: one duplicate aborts the whole batch.
func (s *SubjectService) CreateMany(ctx context.Context, reqs []dto.CreateSubjectRequest) ([]model.SubjectModel, error) {
	if len(reqs) == 0 {
		return nil, helper.InvalidField("subjects", "is required")
	}
	out := make([]model.SubjectModel, 0, len(reqs))
	err := s.lc.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := map[constants.SubjectName]bool{}
		lc := s.lc.WithTx(tx)
		for _, req := range reqs {
			req.Normalize()
			if err := req.Validate(); err != nil {
				return err
			}
			m := req.ToModel()
			if seen[m.Name] {
				return helper.Conflict("Subject %s appears more than once", m.Name)
			}
			seen[m.Name] = true
			if err := lc.Create(ctx, m, uniqueName); err != nil {
				return err
			}
			out = append(out, *m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SubjectService) List(ctx context.Context, p helper.Paging) ([]model.SubjectModel, int64, error) {
	return s.lc.List(ctx, p)
}

func (s *SubjectService) Get(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.SubjectModel, error) {
	return s.lc.Get(ctx, id, lifecycle.IncludeDeletedIf(includeDeleted))
}

// FindByName looks among live subjects.
func (s *SubjectService) FindByName(ctx context.Context, name string) (*model.SubjectModel, error) {
	var m model.SubjectModel
	err := s.lc.DB().WithContext(ctx).Where("name = ?", constants.NormalizeSubjectName(name)).First(&m).Error
	if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("Subject %s not found", constants.NormalizeSubjectName(name))
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find subject by name")
	}
	return &m, nil
}

func (s *SubjectService) Update(ctx context.Context, id uuid.UUID, patch dto.UpdateSubjectRequest) (*model.SubjectModel, error) {
	return s.lc.Update(ctx, id, patch, uniqueName)
}

func (s *SubjectService) Delete(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error) {
	return s.lc.SoftDelete(ctx, id)
}

func (s *SubjectService) Restore(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error) {
	return s.lc.Restore(ctx, id, uniqueName)
}
