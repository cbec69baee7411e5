package service

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"ksms_backend/internals/features/communication/calls/model"
	helper "ksms_backend/internals/helpers"
)

// TableRegistry keeps calls in the active_calls table.
type TableRegistry struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewTableRegistry(db *gorm.DB, ttl time.Duration) *TableRegistry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TableRegistry{db: db, ttl: ttl, now: time.Now}
}

func toCall(m *model.ActiveCallModel) *Call {
	return &Call{ReceiverID: m.ReceiverID, CallerID: m.CallerID, StartedAt: m.StartedAt, ExpiresAt: m.ExpiresAt}
}

func (r *TableRegistry) Initiate(ctx context.Context, receiverID, callerID string) (*Call, error) {
	if err := checkIDs(receiverID, callerID); err != nil {
		return nil, err
	}
	now := r.now()
	row := model.ActiveCallModel{
		ReceiverID: receiverID,
		CallerID:   callerID,
		StartedAt:  now,
		ExpiresAt:  now.Add(r.ttl),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("receiver_id = ? AND expires_at <= ?", receiverID, now).
			Delete(&model.ActiveCallModel{}).Error; err != nil {
			return pkgerrors.Wrap(err, "purge expired call")
		}
		if err := tx.Create(&row).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return errBusy(receiverID)
			}
			return pkgerrors.Wrap(err, "create call")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCall(&row), nil
}

func (r *TableRegistry) End(ctx context.Context, receiverID string) error {
	res := r.db.WithContext(ctx).
		Where("receiver_id = ? AND expires_at > ?", receiverID, r.now()).
		Delete(&model.ActiveCallModel{})
	if res.Error != nil {
		return pkgerrors.Wrap(res.Error, "end call")
	}
	if res.RowsAffected == 0 {
		return errNoCall()
	}
	return nil
}

func (r *TableRegistry) Active(ctx context.Context, receiverID string) (*Call, error) {
	var m model.ActiveCallModel
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND expires_at > ?", receiverID, r.now()).
		First(&m).Error
	if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNoCall()
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load call")
	}
	return toCall(&m), nil
}
