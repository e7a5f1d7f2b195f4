// Package lock provides a redis lease used to serialize work per contact.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNotAcquired = errors.New("lock is held by another worker")

const keyPrefix = "lock:"

// release deletes the key only while it still holds our token, so an expired
// lease taken over by another worker is never removed.
var release = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewLocker(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Locker {
	return &Locker{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// WithLock runs fn while holding the lease on key. fn receives a context
// that expires together with the lease.
func (l *Locker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	token := uuid.New().String()
	redisKey := keyPrefix + key

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAcquired, key)
	}

	defer func() {
		// the caller context may already be cancelled
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := release.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
			l.logger.Warn("Failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}()

	leaseCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(leaseCtx)
}
