package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/applications/dto"
	"ksms_backend/internals/features/school/applications/model"
	subjectModel "ksms_backend/internals/features/school/subjects/model"
	userModel "ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
)

// StrictTransitions is used when APPLICATION_STRICT_TRANSITIONS is on.
var StrictTransitions = lifecycle.TransitionTable[constants.ApplicationStatus]{
	constants.ApplicationSent:     {constants.ApplicationPending, constants.ApplicationReceived, constants.ApplicationRejected},
	constants.ApplicationReceived: {constants.ApplicationPending, constants.ApplicationApproved, constants.ApplicationRejected},
	constants.ApplicationPending:  {constants.ApplicationReceived, constants.ApplicationApproved, constants.ApplicationRejected},
	constants.ApplicationRejected: {constants.ApplicationPending},
}

type ApplicationService struct {
	lc *lifecycle.Manager[model.ApplicationModel]
	wf *lifecycle.Workflow[model.ApplicationModel, constants.ApplicationStatus]
}

func NewApplicationService(db *gorm.DB, strict bool) *ApplicationService {
	lc := lifecycle.New[model.ApplicationModel](db, "application", lifecycle.WithPreload("Subjects"))
	var policy lifecycle.TransitionPolicy[constants.ApplicationStatus] = lifecycle.AllowAll[constants.ApplicationStatus]{}
	if strict {
		policy = StrictTransitions
	}
	wf := lifecycle.NewWorkflow(lc, "status",
		func(a *model.ApplicationModel) constants.ApplicationStatus { return a.Status },
		func(a *model.ApplicationModel, s constants.ApplicationStatus) { a.Status = s },
		policy,
	)
	return &ApplicationService{lc: lc, wf: wf}
}

// oneLivePerApplicant rejects a second live application for the same principal.
func oneLivePerApplicant(tx *gorm.DB, a *model.ApplicationModel) error {
	var n int64
	q := tx.Model(&model.ApplicationModel{}).Where("applicant_id = ?", a.ApplicantID)
	if a.ID != uuid.Nil {
		q = q.Where("id <> ?", a.ID)
	}
	if err := q.Count(&n).Error; err != nil {
		return pkgerrors.Wrap(err, "check existing application")
	}
	if n > 0 {
		return helper.Conflict("Application already exists")
	}
	return nil
}

// Create opens an application for an active student with the given catalog subjects.
func (s *ApplicationService) Create(ctx context.Context, applicant *userModel.UserModel, req dto.CreateApplicationRequest) (*model.ApplicationModel, error) {
	if applicant.Role != constants.RoleStudent || !applicant.IsActive {
		return nil, helper.Forbidden("Only active students can submit an application")
	}
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	ids := dedupe(req.SubjectIDs)

	app := &model.ApplicationModel{ApplicantID: applicant.ID, Status: constants.ApplicationSent}
	loadSubjects := func(tx *gorm.DB, a *model.ApplicationModel) error {
		var subjects []subjectModel.SubjectModel
		if err := tx.Where("id IN ?", ids).Find(&subjects).Error; err != nil {
			return pkgerrors.Wrap(err, "load subjects")
		}
		if missing := missingIDs(ids, subjects); len(missing) > 0 {
			return helper.NotFound("Subjects not found: %s", strings.Join(missing, ", "))
		}
		a.Subjects = subjects
		return nil
	}
	if err := s.lc.Create(ctx, app, oneLivePerApplicant, loadSubjects); err != nil {
		return nil, err
	}
	return s.lc.Get(ctx, app.ID)
}

func (s *ApplicationService) List(ctx context.Context, p helper.Paging, q dto.ListQuery) ([]model.ApplicationModel, int64, error) {
	if err := helper.ValidateStruct(q); err != nil {
		return nil, 0, err
	}
	var scopes []lifecycle.Scope
	if q.Status != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("status = ?", q.Status) })
	}
	return s.lc.List(ctx, p, scopes...)
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.ApplicationModel, error) {
	return s.lc.Get(ctx, id, lifecycle.IncludeDeletedIf(includeDeleted))
}

// FindForApplicant returns the principal's live application, or nil when there is none.
func (s *ApplicationService) FindForApplicant(ctx context.Context, userID uuid.UUID) (*model.ApplicationModel, error) {
	var a model.ApplicationModel
	err := s.lc.DB().WithContext(ctx).Preload("Subjects").Where("applicant_id = ?", userID).First(&a).Error
	if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find application for applicant")
	}
	return &a, nil
}

func (s *ApplicationService) SetStatus(ctx context.Context, id uuid.UUID, status constants.ApplicationStatus) (*model.ApplicationModel, error) {
	if err := helper.Validator().Var(string(status), "required,oneof="+constants.ApplicationStatusOneOf); err != nil {
		return nil, helper.InvalidField("status", "must be one of: "+constants.ApplicationStatusOneOf)
	}
	return s.wf.SetStatus(ctx, id, status)
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) (*model.ApplicationModel, error) {
	return s.lc.SoftDelete(ctx, id)
}

func (s *ApplicationService) Restore(ctx context.Context, id uuid.UUID) (*model.ApplicationModel, error) {
	return s.lc.Restore(ctx, id, oneLivePerApplicant)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func missingIDs(want []uuid.UUID, got []subjectModel.SubjectModel) []string {
	have := make(map[uuid.UUID]bool, len(got))
	for _, s := range got {
		have[s.ID] = true
	}
	var out []string
	for _, id := range want {
		if !have[id] {
			out = append(out, id.String())
		}
	}
	sort.Strings(out)
	return out
}
