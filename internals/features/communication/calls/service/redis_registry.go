package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisRegistry keeps calls as calls:active:<receiver> keys with a TTL.
type RedisRegistry struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisRegistry(rdb redis.UniversalClient, ttl time.Duration) *RedisRegistry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisRegistry{rdb: rdb, ttl: ttl}
}

func callKey(receiverID string) string { return "calls:active:" + receiverID }

func (r *RedisRegistry) Initiate(ctx context.Context, receiverID, callerID string) (*Call, error) {
	if err := checkIDs(receiverID, callerID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	call := &Call{ReceiverID: receiverID, CallerID: callerID, StartedAt: now, ExpiresAt: now.Add(r.ttl)}
	payload, err := sonic.Marshal(call)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "encode call")
	}
	ok, err := r.rdb.SetNX(ctx, callKey(receiverID), payload, r.ttl).Result()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "redis setnx")
	}
	if !ok {
		return nil, errBusy(receiverID)
	}
	return call, nil
}

func (r *RedisRegistry) End(ctx context.Context, receiverID string) error {
	n, err := r.rdb.Del(ctx, callKey(receiverID)).Result()
	if err != nil {
		return pkgerrors.Wrap(err, "redis del")
	}
	if n == 0 {
		return errNoCall()
	}
	return nil
}

func (r *RedisRegistry) Active(ctx context.Context, receiverID string) (*Call, error) {
	raw, err := r.rdb.Get(ctx, callKey(receiverID)).Bytes()
	if pkgerrors.Is(err, redis.Nil) {
		return nil, errNoCall()
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "redis get")
	}
	var call Call
	if err := sonic.Unmarshal(raw, &call); err != nil {
		return nil, pkgerrors.Wrap(err, "decode call")
	}
	return &call, nil
}
