package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mesa-outreach/internal/core/port"
)

// releaseScript deletes the lock only while it still carries our token, so
// a sweep that outlived its TTL cannot drop a lock taken by another process.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lock is a SET NX based port.SweepLock.
type Lock struct {
	rdb *redis.Client
	key string
}

var _ port.SweepLock = (*Lock)(nil)

// NewLock returns a lock stored under key.
func NewLock(rdb *redis.Client, key string) *Lock {
	return &Lock{rdb: rdb, key: key}
}

// TryLock takes the lock for ttl without waiting.
func (l *Lock) TryLock(ctx context.Context, ttl time.Duration) (func(context.Context) error, bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, l.key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis setnx %s: %w", l.key, err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{l.key}, token).Err(); err != nil {
			return fmt.Errorf("redis release %s: %w", l.key, err)
		}
		return nil
	}
	return release, true, nil
}
