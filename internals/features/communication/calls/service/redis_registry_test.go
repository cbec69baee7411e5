package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "ksms_backend/internals/helpers"
)

func newRedisRegistry(t *testing.T) (*RedisRegistry, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisRegistry(rdb, time.Minute), mr
}

func TestRedisRegistry_BusyReceiver(t *testing.T) {
	reg, mr := newRedisRegistry(t)
	ctx := context.Background()

	call, err := reg.Initiate(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", call.CallerID)
	assert.True(t, mr.Exists("calls:active:bob"))
	assert.Equal(t, time.Minute, mr.TTL("calls:active:bob"))

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

func TestRedisRegistry_MissingCall(t *testing.T) {
	reg, _ := newRedisRegistry(t)
	_, err := reg.Active(context.Background(), "nobody")
	assert.True(t, errors.Is(err, helper.ErrNotFound))
}

func TestRedisRegistry_KeyExpires(t *testing.T) {
	reg, mr := newRedisRegistry(t)
	ctx := context.Background()

	_, err := reg.Initiate(ctx, "bob", "alice")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = reg.Active(ctx, "bob")
	assert.True(t, errors.Is(err, helper.ErrNotFound))

	call, err := reg.Initiate(ctx, "bob", "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", call.CallerID)
}

func TestRedisRegistry_Validation(t *testing.T) {
	reg, _ := newRedisRegistry(t)
	_, err := reg.Initiate(context.Background(), "bob", "bob")
	assert.True(t, errors.Is(err, helper.ErrValidation))
}
