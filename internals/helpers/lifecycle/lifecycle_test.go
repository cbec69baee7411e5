package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/helpers/lifecycle"
	"ksms_backend/internals/testutil"
)

type note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"not null;uniqueIndex:uq_notes_title_alive,where:deleted_at IS NULL"`
	Body      *string
	Status    string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (n *note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Status == "" {
		n.Status = "SENT"
	}
	return nil
}

type notePatch struct {
	Title helper.PatchField[string]
	Body  helper.PatchField[string]
}

func (p notePatch) ApplyTo(n *note) error {
	if err := p.Title.Apply("title", &n.Title); err != nil {
		return err
	}
	p.Body.ApplyNullable(&n.Body)
	return nil
}

func newManager(t *testing.T) *lifecycle.Manager[note] {
	t.Helper()
	return lifecycle.New[note](testutil.NewDB(t, &note{}), "note")
}

func TestCreateGetList(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()

	a := &note{Title: "a"}
	require.NoError(t, m.Create(ctx, a))
	require.NoError(t, m.Create(ctx, &note{Title: "b"}))

	got, err := m.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
	assert.Equal(t, "SENT", got.Status)

	rows, total, err := m.List(ctx, helper.NewPaging(1, 1, 20, 200))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 1)

	all, _, err := m.List(ctx, helper.Paging{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGet_MissingIsNotFound(t *testing.T) {
	m := newManager(t)
	_, err := m.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, helper.ErrNotFound))
	assert.Equal(t, "Note not found", err.Error())
}

func TestCreate_GuardAbortsWithoutSideEffects(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	deny := func(tx *gorm.DB, n *note) error { return helper.Conflict("busy") }

	err := m.Create(ctx, &note{Title: "x"}, deny)
	assert.True(t, errors.Is(err, helper.ErrConflict))

	_, total, err := m.List(ctx, helper.Paging{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreate_UniqueViolationIsConflict(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	require.NoError(t, m.Create(ctx, &note{Title: "dup"}))

	err := m.Create(ctx, &note{Title: "dup"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, helper.ErrConflict))
}

func TestUpdate_AbsentFieldsUntouched(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	body := "hello"
	n := &note{Title: "t", Body: &body}
	require.NoError(t, m.Create(ctx, n))

	got, err := m.Update(ctx, n.ID, notePatch{Title: helper.Set("t2")})
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Title)
	require.NotNil(t, got.Body)
	assert.Equal(t, "hello", *got.Body)

	got, err = m.Update(ctx, n.ID, notePatch{Body: helper.Null[string]()})
	require.NoError(t, err)
	assert.Nil(t, got.Body)

	_, err = m.Update(ctx, n.ID, notePatch{Title: helper.Null[string]()})
	assert.True(t, errors.Is(err, helper.ErrValidation))

	reloaded, err := m.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "t2", reloaded.Title)
}

func TestSoftDelete_HiddenFromListButReachable(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	n := &note{Title: "gone"}
	require.NoError(t, m.Create(ctx, n))

	deleted, err := m.SoftDelete(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, deleted.DeletedAt.Valid)

	_, total, err := m.List(ctx, helper.Paging{})
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = m.Get(ctx, n.ID)
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	got, err := m.Get(ctx, n.ID, lifecycle.IncludeDeleted())
	require.NoError(t, err)
	assert.Equal(t, "gone", got.Title)

	restored, err := m.Restore(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, restored.DeletedAt.Valid)
}

func TestWorkflow_AllowAllPermitsAnyOrder(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	n := &note{Title: "wf"}
	require.NoError(t, m.Create(ctx, n))

	wf := lifecycle.NewWorkflow(m, "status",
		func(n *note) string { return n.Status },
		func(n *note, s string) { n.Status = s }, nil)

	got, err := wf.SetStatus(ctx, n.ID, "APPROVED")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", got.Status)

	got, err = wf.SetStatus(ctx, n.ID, "SENT")
	require.NoError(t, err)
	assert.Equal(t, "SENT", got.Status)
}

func TestWorkflow_TransitionTableRejects(t *testing.T) {
	m := newManager(t)
	ctx := context.Background()
	n := &note{Title: "wf"}
	require.NoError(t, m.Create(ctx, n))

	table := lifecycle.TransitionTable[string]{"SENT": {"READ"}}
	wf := lifecycle.NewWorkflow[note, string](m, "status",
		func(n *note) string { return n.Status },
		func(n *note, s string) { n.Status = s }, table)

	_, err := wf.SetStatus(ctx, n.ID, "ARCHIVED")
	require.Error(t, err)
	assert.True(t, errors.Is(err, helper.ErrInvalidTransition))
	assert.Equal(t, 422, helper.StatusOf(err))

	got, err := wf.SetStatus(ctx, n.ID, "READ")
	require.NoError(t, err)
	assert.Equal(t, "READ", got.Status)
}
