package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/messages/dto"
	"ksms_backend/internals/features/communication/messages/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/testutil"
)

func TestMessageLifecycle(t *testing.T) {
	svc := NewMessageService(testutil.NewDB(t, &model.MessageModel{}))
	ctx := context.Background()

	m, err := svc.Create(ctx, dto.CreateMessageRequest{Message: "  School closes at noon  "})
	require.NoError(t, err)
	assert.Equal(t, "School closes at noon", m.Message)
	assert.Equal(t, constants.MessageSent, m.Status)

	got, err := svc.SetStatus(ctx, m.ID, constants.MessageRead)
	require.NoError(t, err)
	assert.Equal(t, constants.MessageRead, got.Status)

	got, err = svc.SetStatus(ctx, m.ID, constants.MessageSent)
	require.NoError(t, err)
	assert.Equal(t, constants.MessageSent, got.Status)

	got, err = svc.Update(ctx, m.ID, dto.UpdateMessageRequest{Message: helper.Set("Closes at one")})
	require.NoError(t, err)
	assert.Equal(t, "Closes at one", got.Message)
	assert.Equal(t, constants.MessageSent, got.Status)

	_, err = svc.Delete(ctx, m.ID)
	require.NoError(t, err)
	rows, total, err := svc.List(ctx, helper.Paging{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)

	_, err = svc.SetStatus(ctx, m.ID, constants.MessageRead)
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	restored, err := svc.Restore(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Closes at one", restored.Message)
}

func TestMessageValidation(t *testing.T) {
	svc := NewMessageService(testutil.NewDB(t, &model.MessageModel{}))
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateMessageRequest{Message: "   "})
	require.Error(t, err)
	assert.Equal(t, 422, helper.StatusOf(err))

	m, err := svc.Create(ctx, dto.CreateMessageRequest{Message: "hi"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, m.ID, dto.UpdateMessageRequest{Message: helper.Null[string]()})
	assert.True(t, errors.Is(err, helper.ErrValidation))

	_, err = svc.SetStatus(ctx, m.ID, "ARCHIVED")
	assert.True(t, errors.Is(err, helper.ErrValidation))
}
