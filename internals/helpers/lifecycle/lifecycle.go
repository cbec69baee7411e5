// Package lifecycle implements the generic create / read / patch / soft-delete
// flow shared by every persisted entity.
package lifecycle

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "ksms_backend/internals/helpers"
)

// Patch is an explicit partial update for one entity type.
type Patch[E any] interface {
	ApplyTo(e *E) error
}

// Guard runs inside the write transaction before the row is persisted.
// Returning an error aborts the write with no side effects.
type Guard[E any] func(tx *gorm.DB, e *E) error

// Scope narrows list queries.
type Scope = func(*gorm.DB) *gorm.DB

type Manager[E any] struct {
	db       *gorm.DB
	noun     string
	preloads []string
	order    string
}

type Option func(*options)

type options struct {
	preloads []string
	order    string
}

func WithPreload(assocs ...string) Option {
	return func(o *options) { o.preloads = append(o.preloads, assocs...) }
}

func WithOrder(order string) Option {
	return func(o *options) { o.order = order }
}

func New[E any](db *gorm.DB, noun string, opts ...Option) *Manager[E] {
	o := options{order: "created_at DESC"}
	for _, fn := range opts {
		fn(&o)
	}
	return &Manager[E]{db: db, noun: noun, preloads: o.preloads, order: o.order}
}

func (m *Manager[E]) DB() *gorm.DB { return m.db }
func (m *Manager[E]) Noun() string { return m.noun }

// WithTx returns a copy bound to tx.
func (m *Manager[E]) WithTx(tx *gorm.DB) *Manager[E] {
	cp := *m
	cp.db = tx
	return &cp
}

/* ========== CREATE ========== */

func (m *Manager[E]) Create(ctx context.Context, e *E, guards ...Guard[E]) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, g := range guards {
			if err := g(tx, e); err != nil {
				return err
			}
		}
		if err := tx.Create(e).Error; err != nil {
			return m.wrap(err, "create")
		}
		return nil
	})
}

/* ========== READ ========== */

type getOptions struct {
	includeDeleted bool
}

type GetOption func(*getOptions)

// IncludeDeleted makes Get return soft-deleted rows too.
func IncludeDeleted() GetOption {
	return func(o *getOptions) { o.includeDeleted = true }
}

// IncludeDeletedIf is IncludeDeleted when cond holds, a no-op otherwise.
func IncludeDeletedIf(cond bool) GetOption {
	return func(o *getOptions) { o.includeDeleted = o.includeDeleted || cond }
}

func (m *Manager[E]) Get(ctx context.Context, id uuid.UUID, opts ...GetOption) (*E, error) {
	return m.load(m.db.WithContext(ctx), id, opts...)
}

func (m *Manager[E]) load(db *gorm.DB, id uuid.UUID, opts ...GetOption) (*E, error) {
	var o getOptions
	for _, fn := range opts {
		fn(&o)
	}
	q := db
	if o.includeDeleted {
		q = q.Unscoped()
	}
	for _, p := range m.preloads {
		q = q.Preload(p)
	}

	var e E
	err := q.Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.NotFound("%s not found", m.title())
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "load %s", m.noun)
	}
	return &e, nil
}

// List returns one page of non-deleted rows plus the total count.
// A zero Limit returns every matching row.
func (m *Manager[E]) List(ctx context.Context, p helper.Paging, scopes ...Scope) ([]E, int64, error) {
	base := m.db.WithContext(ctx).Model(new(E)).Scopes(scopes...)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrapf(err, "count %s", m.noun)
	}

	q := base.Session(&gorm.Session{})
	for _, pl := range m.preloads {
		q = q.Preload(pl)
	}
	if m.order != "" {
		q = q.Order(m.order)
	}
	if p.Limit > 0 {
		q = q.Offset(p.Offset).Limit(p.Limit)
	}

	out := make([]E, 0)
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, pkgerrors.Wrapf(err, "list %s", m.noun)
	}
	return out, total, nil
}

/* ========== UPDATE ========== */

// Update merges patch into the stored entity. Last write wins.
func (m *Manager[E]) Update(ctx context.Context, id uuid.UUID, patch Patch[E], guards ...Guard[E]) (*E, error) {
	var out *E
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := m.load(tx, id)
		if err != nil {
			return err
		}
		if err := patch.ApplyTo(e); err != nil {
			return err
		}
		for _, g := range guards {
			if err := g(tx, e); err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Save(e).Error; err != nil {
			return m.wrap(err, "update")
		}
		out = e
		return nil
	})
	return out, err
}

// Mutate loads the entity, lets fn change it, and saves it.
func (m *Manager[E]) Mutate(ctx context.Context, id uuid.UUID, fn func(e *E) error) (*E, error) {
	return m.Update(ctx, id, patchFunc[E](fn))
}

type patchFunc[E any] func(e *E) error

func (f patchFunc[E]) ApplyTo(e *E) error { return f(e) }

/* ========== DELETE / RESTORE ========== */

// SoftDelete flags the row deleted. It stays reachable through IncludeDeleted.
func (m *Manager[E]) SoftDelete(ctx context.Context, id uuid.UUID) (*E, error) {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := m.load(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(e).Error; err != nil {
			return pkgerrors.Wrapf(err, "delete %s", m.noun)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.Get(ctx, id, IncludeDeleted())
}

// Restore clears the deleted flag. Guards re-check uniqueness against live rows.
func (m *Manager[E]) Restore(ctx context.Context, id uuid.UUID, guards ...Guard[E]) (*E, error) {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := m.load(tx, id, IncludeDeleted())
		if err != nil {
			return err
		}
		for _, g := range guards {
			if err := g(tx, e); err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Model(e).Update("deleted_at", nil).Error; err != nil {
			return m.wrap(err, "restore")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.Get(ctx, id)
}

func (m *Manager[E]) wrap(err error, op string) error {
	if helper.IsUniqueViolation(err) {
		return helper.Conflict("%s already exists", m.title())
	}
	return pkgerrors.Wrapf(err, "%s %s", op, m.noun)
}

func (m *Manager[E]) title() string {
	if m.noun == "" {
		return "Resource"
	}
	return strings.ToUpper(m.noun[:1]) + m.noun[1:]
}
