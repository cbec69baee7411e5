package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ksms_backend/internals/features/school/events/dto"
	"ksms_backend/internals/features/school/events/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
)

type EventService struct {
	lc *lifecycle.Manager[model.EventModel]
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		lc: lifecycle.New[model.EventModel](db, "event", lifecycle.WithOrder("date ASC, start_time ASC")),
	}
}

func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*model.EventModel, error) {
	e, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.lc.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns events ordered by date, optionally within [from, to].
func (s *EventService) List(ctx context.Context, p helper.Paging, from, to string) ([]model.EventModel, int64, error) {
	var scopes []lifecycle.Scope
	if from != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("date >= ?", from) })
	}
	if to != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB { return db.Where("date <= ?", to) })
	}
	return s.lc.List(ctx, p, scopes...)
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID, includeDeleted bool) (*model.EventModel, error) {
	return s.lc.Get(ctx, id, lifecycle.IncludeDeletedIf(includeDeleted))
}

func (s *EventService) Update(ctx context.Context, id uuid.UUID, patch dto.UpdateEventRequest) (*model.EventModel, error) {
	return s.lc.Update(ctx, id, patch)
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID) (*model.EventModel, error) {
	return s.lc.SoftDelete(ctx, id)
}

func (s *EventService) Restore(ctx context.Context, id uuid.UUID) (*model.EventModel, error) {
	return s.lc.Restore(ctx, id)
}
