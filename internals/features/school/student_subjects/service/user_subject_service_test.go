package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ksms_backend/internals/constants"
	"ksms_backend/internals/features/school/student_subjects/dto"
	"ksms_backend/internals/features/school/student_subjects/model"
	subjectModel "ksms_backend/internals/features/school/subjects/model"
	userModel "ksms_backend/internals/features/users/user/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/testutil"
)

func setup(t *testing.T, subjects ...constants.SubjectName) (*UserSubjectService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t, &userModel.UserModel{}, &subjectModel.SubjectModel{}, &model.UserSubjectModel{})
	for _, name := range subjects {
		require.NoError(t, db.Create(&subjectModel.SubjectModel{Name: name}).Error)
	}
	return NewUserSubjectService(db), db
}

func TestAddBulk_ReportsUnknownSubject(t *testing.T) {
	svc, db := setup(t, constants.SubjectMaths)
	u := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)

	res, err := svc.AddBulk(context.Background(), u.ID, []dto.AddSubjectRequest{
		{Name: "MATH", Grade: "A"},
		{Name: "UNKNOWN_SUBJECT", Grade: "B"},
	})
	require.NoError(t, err)
	require.Len(t, res.Created, 1)
	assert.Equal(t, "MATHS", res.Created[0].SubjectName)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "UNKNOWN_SUBJECT", res.Skipped[0].Input.Name)
	assert.Equal(t, dto.ReasonUnknownSubject, res.Skipped[0].Reason)

	rows, err := svc.ListForPrincipal(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.SubjectGrade{{SubjectName: "MATHS", Grade: "A"}}, rows)
}

func TestAddBulk_SkipsExistingAndRepeated(t *testing.T) {
	svc, db := setup(t, constants.SubjectMaths, constants.SubjectEnglish)
	u := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)
	ctx := context.Background()

	_, err := svc.Add(ctx, u.ID, dto.AddSubjectRequest{Name: "ENGLISH"})
	require.NoError(t, err)

	res, err := svc.AddBulk(ctx, u.ID, []dto.AddSubjectRequest{
		{Name: "ENGLISH"}, {Name: "MATHS"}, {Name: "mathematics"}, {Name: "MATHS", Grade: "Z"},
	})
	require.NoError(t, err)
	assert.Len(t, res.Created, 1)
	require.Len(t, res.Skipped, 3)
	assert.Equal(t, dto.ReasonAlreadyAdded, res.Skipped[0].Reason)
	assert.Equal(t, dto.ReasonAlreadyAdded, res.Skipped[1].Reason)
	assert.Equal(t, dto.ReasonInvalid, res.Skipped[2].Reason)
}

func TestAdd_Errors(t *testing.T) {
	svc, db := setup(t, constants.SubjectPhysics)
	u := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)
	ctx := context.Background()

	_, err := svc.Add(ctx, u.ID, dto.AddSubjectRequest{Name: "CHEMISTRY"})
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	got, err := svc.Add(ctx, u.ID, dto.AddSubjectRequest{Name: "physics", Grade: "B"})
	require.NoError(t, err)
	assert.Equal(t, "PHYSICS", got.SubjectName)

	_, err = svc.Add(ctx, u.ID, dto.AddSubjectRequest{Name: "PHYSICS"})
	assert.True(t, errors.Is(err, helper.ErrConflict))
}

func TestRemove_HardDeletes(t *testing.T) {
	svc, db := setup(t, constants.SubjectArt)
	u := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)
	ctx := context.Background()

	_, err := svc.Add(ctx, u.ID, dto.AddSubjectRequest{Name: "ART"})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, u.ID, "art"))

	var n int64
	require.NoError(t, db.Unscoped().Model(&model.UserSubjectModel{}).Count(&n).Error)
	assert.Zero(t, n)

	err = svc.Remove(ctx, u.ID, "ART")
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	again, err := svc.Add(ctx, u.ID, dto.AddSubjectRequest{Name: "ART", Grade: "A"})
	require.NoError(t, err, "a removed pair can be added again")
	assert.Equal(t, "A", again.Grade)
}

func TestListForPrincipal_HidesDeletedSubjects(t *testing.T) {
	svc, db := setup(t, constants.SubjectArt, constants.SubjectHistory)
	u := testutil.CreateUser(t, db, "s@example.com", "password1", constants.RoleStudent)
	ctx := context.Background()

	_, err := svc.AddBulk(ctx, u.ID, []dto.AddSubjectRequest{{Name: "ART"}, {Name: "HISTORY", Grade: "C"}})
	require.NoError(t, err)
	require.NoError(t, db.Where("name = ?", constants.SubjectArt).Delete(&subjectModel.SubjectModel{}).Error)

	rows, err := svc.ListForPrincipal(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.SubjectGrade{{SubjectName: "HISTORY", Grade: "C"}}, rows)
}
