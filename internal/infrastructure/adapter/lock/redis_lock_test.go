package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
)

// fakeRedis keeps keys in memory and runs the release script's compare-and-delete
type fakeRedis struct {
	mu   sync.Mutex
	keys map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, held := f.keys[key]; held {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Eval(_ context.Context, script string, keys []string, args ...any) *redis.Cmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return redis.NewCmdResult(nil, f.err)
	}
	if script != releaseScript || len(keys) != 1 || len(args) != 1 {
		return redis.NewCmdResult(nil, errors.New("unexpected script call"))
	}
	if f.keys[keys[0]] != args[0] {
		return redis.NewCmdResult(int64(0), nil)
	}
	delete(f.keys, keys[0])
	return redis.NewCmdResult(int64(1), nil)
}

func TestRedisLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquire sets prefixed key with ttl", func(t *testing.T) {
		client := newFakeRedis()
		l := NewRedisLock(client, "raffle:", logger.NewNoopLogger())

		require.NoError(t, l.AcquireLock(ctx, 7, "admin-1", 30*time.Second))

		assert.Equal(t, "admin-1", client.keys["raffle:lock:draw:7"])
		assert.Equal(t, 30*time.Second, client.ttls["raffle:lock:draw:7"])
	})

	t.Run("Second owner is refused until release", func(t *testing.T) {
		l := NewRedisLock(newFakeRedis(), "", logger.NewNoopLogger())

		require.NoError(t, l.AcquireLock(ctx, 1, "a", time.Minute))
		assert.ErrorIs(t, l.AcquireLock(ctx, 1, "b", time.Minute), errs.ErrDrawInProgress)
		assert.NoError(t, l.AcquireLock(ctx, 2, "b", time.Minute))

		require.NoError(t, l.ReleaseLock(ctx, 1, "a"))
		assert.NoError(t, l.AcquireLock(ctx, 1, "b", time.Minute))
	})

	t.Run("Release by another owner keeps the lock", func(t *testing.T) {
		client := newFakeRedis()
		l := NewRedisLock(client, "", logger.NewNoopLogger())
		require.NoError(t, l.AcquireLock(ctx, 3, "a", time.Minute))

		require.NoError(t, l.ReleaseLock(ctx, 3, "intruder"))

		assert.Equal(t, "a", client.keys["lock:draw:3"])
	})

	t.Run("Backend failures", func(t *testing.T) {
		client := newFakeRedis()
		client.err = errors.New("connection refused")
		l := NewRedisLock(client, "", logger.NewNoopLogger())

		err := l.AcquireLock(ctx, 1, "a", time.Minute)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.NotErrorIs(t, err, errs.ErrDrawInProgress)

		assert.ErrorIs(t, l.ReleaseLock(ctx, 1, "a"), errs.ErrDatabaseConnection)
	})
}
