package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ksms_backend/internals/features/communication/calls/model"
	helper "ksms_backend/internals/helpers"
	"ksms_backend/internals/testutil"
)

func newRegistry(t *testing.T) *TableRegistry {
	t.Helper()
	return NewTableRegistry(testutil.NewDB(t, &model.ActiveCallModel{}), time.Minute)
}

func TestTableRegistry_BusyReceiver(t *testing.T) {
	reg := newRegistry(t)
	ctx := context.Background()

	call, err := reg.Initiate(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", call.CallerID)

	_, err = reg.Initiate(ctx, "bob", "carol")
	assert.True(t, errors.Is(err, helper.ErrConflict))

	active, err := reg.Active(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", active.CallerID)

	require.NoError(t, reg.End(ctx, "bob"))
	err = reg.End(ctx, "bob")
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	_, err = reg.Initiate(ctx, "bob", "carol")
	require.NoError(t, err)
}

func TestTableRegistry_ExpiredCallIsReplaced(t *testing.T) {
	reg := newRegistry(t)
	ctx := context.Background()
	start := time.Now()
	reg.now = func() time.Time { return start }

	_, err := reg.Initiate(ctx, "bob", "alice")
	require.NoError(t, err)

	reg.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = reg.Active(ctx, "bob")
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	call, err := reg.Initiate(ctx, "bob", "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", call.CallerID)
}

func TestTableRegistry_Validation(t *testing.T) {
	reg := newRegistry(t)
	_, err := reg.Initiate(context.Background(), "bob", "bob")
	assert.True(t, errors.Is(err, helper.ErrValidation))
	_, err = reg.Initiate(context.Background(), "", "bob")
	assert.True(t, errors.Is(err, helper.ErrValidation))
}

func TestTableRegistry_ConcurrentInitiateOneWins(t *testing.T) {
	reg := newRegistry(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for _, caller := range []string{"a", "b", "c", "d", "e"} {
		wg.Add(1)
		go func(caller string) {
			defer wg.Done()
			if _, err := reg.Initiate(ctx, "receiver", caller); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(caller)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}
