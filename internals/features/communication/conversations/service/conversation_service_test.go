package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/communication/conversations/dto"
	"ksms_backend/internals/features/communication/conversations/model"
	userModel "ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/testutil"
)

func TestConversationRoundTrip(t *testing.T) {
	db := testutil.NewDB(t, &userModel.UserModel{}, &model.ConversationModel{}, &model.ChatMessageModel{})
	svc := NewConversationService(db)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, db, "teacher@example.com", "password1", constants.RoleTeacher)

	_, err := svc.SendToAdmin(ctx, teacher.ID, dto.SendRequest{Content: "Projector is broken"})
	require.NoError(t, err)
	_, err = svc.Reply(ctx, teacher.ID, dto.SendRequest{Content: "Fixing it today"})
	require.NoError(t, err)
	_, err = svc.SendToAdmin(ctx, teacher.ID, dto.SendRequest{Content: "Thanks"})
	require.NoError(t, err)

	var convs int64
	require.NoError(t, db.Model(&model.ConversationModel{}).Count(&convs).Error)
	assert.EqualValues(t, 1, convs)

	all, total, err := svc.History(ctx, teacher.ID, nil, helper.Paging{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, all, 3)

	admin := constants.SenderAdmin
	replies, _, err := svc.History(ctx, teacher.ID, &admin, helper.Paging{})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "Fixing it today", replies[0].Content)

	inbox, err := svc.Inbox(ctx)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, teacher.ID, inbox[0].TeacherID)
	assert.EqualValues(t, 3, inbox[0].MessageCount)
	assert.NotNil(t, inbox[0].LastMessageAt)
}

func TestConversation_RejectsNonTeacherAndEmpty(t *testing.T) {
	db := testutil.NewDB(t, &userModel.UserModel{}, &model.ConversationModel{}, &model.ChatMessageModel{})
	svc := NewConversationService(db)
	ctx := context.Background()
	student := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)
	teacher := testutil.CreateUser(t, db, "t@example.com", "password1", constants.RoleTeacher)

	_, err := svc.Reply(ctx, student.ID, dto.SendRequest{Content: "hello"})
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	_, err = svc.SendToAdmin(ctx, teacher.ID, dto.SendRequest{Content: "   "})
	require.Error(t, err)
	assert.Equal(t, 422, helper.StatusOf(err))
}
