package lock

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
)

// releaseScript deletes the key only while it still holds the caller's owner value
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// Client is the subset of the go-redis client the lock needs
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// RedisLock holds per-raffle draw locks in Redis with SET NX PX
type RedisLock struct {
	client    Client
	keyPrefix string
	logger    coreport.Logger
}

var _ persistence.RaffleLockRepository = (*RedisLock)(nil)

// NewRedisLock creates a draw lock backed by Redis
func NewRedisLock(client Client, keyPrefix string, logger coreport.Logger) *RedisLock {
	return &RedisLock{client: client, keyPrefix: keyPrefix, logger: logger}
}

func (l *RedisLock) key(raffleID uint64) string {
	return l.keyPrefix + "lock:draw:" + strconv.FormatUint(raffleID, 10)
}

// AcquireLock sets the key only when it is absent. Redis expires it after ttl.
func (l *RedisLock) AcquireLock(ctx context.Context, raffleID uint64, owner string, ttl time.Duration) error {
	key := l.key(raffleID)

	ok, err := l.client.SetNX(ctx, key, owner, ttl).Result()
	if err != nil {
		l.logger.Error("Failed to acquire draw lock", map[string]any{
			"raffle_id": raffleID,
			"key":       key,
			"error":     err.Error(),
		})
		return fmt.Errorf("%w: acquiring draw lock: %v", errs.ErrDatabaseConnection, err)
	}
	if !ok {
		return errs.ErrDrawInProgress
	}

	l.logger.Debug("Draw lock acquired", map[string]any{
		"raffle_id": raffleID,
		"owner":     owner,
		"ttl":       ttl.String(),
	})
	return nil
}

// ReleaseLock removes the key if owner still holds it
func (l *RedisLock) ReleaseLock(ctx context.Context, raffleID uint64, owner string) error {
	key := l.key(raffleID)

	deleted, err := l.client.Eval(ctx, releaseScript, []string{key}, owner).Int64()
	if err != nil {
		return fmt.Errorf("%w: releasing draw lock: %v", errs.ErrDatabaseConnection, err)
	}
	if deleted == 0 {
		l.logger.Warn("Draw lock was no longer held by owner", map[string]any{
			"raffle_id": raffleID,
			"owner":     owner,
		})
	}
	return nil
}
