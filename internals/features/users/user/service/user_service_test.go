package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/users/user/dto"
	"ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/testutil"
)

func newService(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t, &model.UserModel{})
	return NewUserService(db), db
}

func TestListByRole(t *testing.T) {
	svc, db := newService(t)
	testutil.CreateUser(t, db, "a@example.com", "password1", constants.RoleStudent)
	testutil.CreateUser(t, db, "b@example.com", "password1", constants.RoleStudent)
	testutil.CreateUser(t, db, "t@example.com", "password1", constants.RoleTeacher)

	rows, total, err := svc.ListByRole(context.Background(), constants.RoleStudent, helper.Paging{}, "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	rows, _, err = svc.ListByRole(context.Background(), constants.RoleStudent, helper.Paging{}, "B@EX")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "b@example.com", rows[0].Email)
}

func TestGetByRole_WrongRoleIsNotFound(t *testing.T) {
	svc, db := newService(t)
	teacher := testutil.CreateUser(t, db, "t@example.com", "password1", constants.RoleTeacher)

	_, err := svc.GetByRole(context.Background(), teacher.ID, constants.RoleStudent, false)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.Equal(t, "Student not found", err.Error())

	got, err := svc.GetByRole(context.Background(), teacher.ID, constants.RoleTeacher, false)
	require.NoError(t, err)
	assert.Equal(t, teacher.ID, got.ID)
}

func TestUpdateStudent_PatchSemantics(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)

	got, err := svc.UpdateStudent(ctx, u.ID, dto.StudentUpdate{
		ProfilePatch:   dto.ProfilePatch{LastName: helper.Set("Doe"), PhoneNumber: helper.Set("0700000001")},
		Gender:         helper.Set("female"),
		DateOfBirth:    helper.Set("2008-02-29"),
		PreviousSchool: helper.Set("Hillside"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Test", got.FirstName)
	require.NotNil(t, got.Gender)
	assert.Equal(t, constants.GenderFemale, *got.Gender)
	require.NotNil(t, got.DateOfBirth)
	assert.Equal(t, "Test Doe", got.FullName())

	got, err = svc.UpdateStudent(ctx, u.ID, dto.StudentUpdate{PreviousSchool: helper.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, got.PreviousSchool)
	require.NotNil(t, got.LastName)

	_, err = svc.UpdateStudent(ctx, u.ID, dto.StudentUpdate{
		ProfilePatch: dto.ProfilePatch{FirstName: helper.Null[string]()},
		Gender:       helper.Set("robot"),
	})
	require.Error(t, err)
	var ae *helper.AppError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "first_name")
	assert.Contains(t, ae.Fields, "gender")
}

func TestUpdate_PhoneMustBeUnique(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "a@example.com", "password1", constants.RoleStudent)
	b := testutil.CreateUser(t, db, "b@example.com", "password1", constants.RoleTeacher)

	_, err := svc.UpdateStudent(ctx, a.ID, dto.StudentUpdate{ProfilePatch: dto.ProfilePatch{PhoneNumber: helper.Set("0711")}})
	require.NoError(t, err)

	_, err = svc.UpdateTeacher(ctx, b.ID, dto.TeacherUpdate{ProfilePatch: dto.ProfilePatch{PhoneNumber: helper.Set("0711")}})
	assert.ErrorIs(t, err, helper.ErrConflict)
}

func TestToggleActive(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	s := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)
	admin := testutil.CreateUser(t, db, "admin@example.com", "password1", constants.RoleAdmin)

	got, err := svc.ToggleActive(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	got, err = svc.ToggleActive(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	_, err = svc.ToggleActive(ctx, admin.ID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestCheckInOut(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	teacher := testutil.CreateUser(t, db, "t@example.com", "password1", constants.RoleTeacher)

	got, err := svc.SetCheckedOut(ctx, teacher.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsCheckedOut)
	assert.NotNil(t, got.LastCheckedOut)

	got, err = svc.SetCheckedOut(ctx, teacher.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsCheckedOut)
	assert.NotNil(t, got.LastCheckedIn)
}

func TestDeleteAndRestore(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()
	s := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)

	_, err := svc.DeleteByRole(ctx, s.ID, constants.RoleTeacher)
	assert.ErrorIs(t, err, helper.ErrNotFound)

	deleted, err := svc.DeleteByRole(ctx, s.ID, constants.RoleStudent)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted())

	_, err = svc.GetByRole(ctx, s.ID, constants.RoleStudent, false)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	_, err = svc.GetByRole(ctx, s.ID, constants.RoleStudent, true)
	require.NoError(t, err)

	// the email is free while the account is deleted
	testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)
	_, err = svc.Restore(ctx, s.ID)
	assert.ErrorIs(t, err, helper.ErrConflict)
}
