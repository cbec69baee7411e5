package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/messages/dto"
	"ksms_backend/internals/features/communication/messages/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
)

type MessageService struct {
	lc *lifecycle.Manager[model.MessageModel]
	wf *lifecycle.Workflow[model.MessageModel, constants.MessageStatus]
}

func NewMessageService(db *gorm.DB) *MessageService {
	lc := lifecycle.New[model.MessageModel](db, "message")
	wf := lifecycle.NewWorkflow[model.MessageModel, constants.MessageStatus](lc, "status",
		func(m *model.MessageModel) constants.MessageStatus { return m.Status },
		func(m *model.MessageModel, s constants.MessageStatus) { m.Status = s },
		nil,
	)
	return &MessageService{lc: lc, wf: wf}
}

func (s *MessageService) Create(ctx context.Context, req dto.CreateMessageRequest) (*model.MessageModel, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := helper.ValidateStruct(req); err != nil {
		return nil, err
	}
	m := &model.MessageModel{Message: req.Message, Status: constants.MessageSent}
	if err := s.lc.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MessageService) List(ctx context.Context, p helper.Paging) ([]model.MessageModel, int64, error) {
	return s.lc.List(ctx, p)
}

func (s *MessageService) Get(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.MessageModel, error) {
	return s.lc.Get(ctx, id, lifecycle.IncludeDeletedIf(includeDeleted))
}

func (s *MessageService) Update(ctx context.Context, id uuid.UUID, patch dto.UpdateMessageRequest) (*model.MessageModel, error) {
	return s.lc.Update(ctx, id, patch)
}

func (s *MessageService) SetStatus(ctx context.Context, id uuid.UUID, status constants.MessageStatus) (*model.MessageModel, error) {
	if err := helper.Validator().Var(string(status), "required,oneof="+constants.MessageStatusOneOf); err != nil {
		return nil, helper.InvalidField("status", "must be one of: "+constants.MessageStatusOneOf)
	}
	return s.wf.SetStatus(ctx, id, status)
}

func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) (*model.MessageModel, error) {
	return s.lc.SoftDelete(ctx, id)
}

func (s *MessageService) Restore(ctx context.Context, id uuid.UUID) (*model.MessageModel, error) {
	return s.lc.Restore(ctx, id)
}
