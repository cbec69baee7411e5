package lifecycle

import (
	"context"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "ksms_backend/internals/helpers"
)

// TransitionPolicy decides whether a status change is allowed.
type TransitionPolicy[S comparable] interface {
	Allow(from, to S) error
}

// AllowAll accepts every transition.
type AllowAll[S comparable] struct{}

func (AllowAll[S]) Allow(from, to S) error { return nil }

// TransitionTable lists the statuses reachable from each status.
// Re-setting the current status is always allowed.
type TransitionTable[S comparable] map[S][]S

func (t TransitionTable[S]) Allow(from, to S) error {
	if from == to {
		return nil
	}
	for _, next := range t[from] {
		if next == to {
			return nil
		}
	}
	return helper.InvalidTransition("cannot change status from %v to %v", from, to)
}

// Workflow adds a guarded status setter on top of a Manager.
type Workflow[E any, S comparable] struct {
	manager *Manager[E]
	column  string
	get     func(*E) S
	set     func(*E, S)
	policy  TransitionPolicy[S]
}

func NewWorkflow[E any, S comparable](m *Manager[E], column string, get func(*E) S, set func(*E, S), policy TransitionPolicy[S]) *Workflow[E, S] {
	if policy == nil {
		policy = AllowAll[S]{}
	}
	return &Workflow[E, S]{manager: m, column: column, get: get, set: set, policy: policy}
}

func (w *Workflow[E, S]) Policy() TransitionPolicy[S] { return w.policy }

func (w *Workflow[E, S]) SetStatus(ctx context.Context, id uuid.UUID, to S) (*E, error) {
	var out *E
	err := w.manager.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := w.manager.load(tx, id)
		if err != nil {
			return err
		}
		if err := w.policy.Allow(w.get(e), to); err != nil {
			return err
		}
		if err := tx.Model(e).Omit(clause.Associations).Update(w.column, to).Error; err != nil {
			return pkgerrors.Wrapf(err, "set %s status", w.manager.noun)
		}
		w.set(e, to)
		out = e
		return nil
	})
	return out, err
}
