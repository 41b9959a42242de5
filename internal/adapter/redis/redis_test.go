package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-outreach/internal/config/configs"
	"mesa-outreach/internal/core/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := NewClient(context.Background(), configs.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestNewClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), configs.Redis{Addr: addr})
	assert.Error(t, err)
}

func TestLockIsExclusive(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	ctx := context.Background()
	first := NewLock(rdb, "outreach:sweep:lock")
	second := NewLock(rdb, "outreach:sweep:lock")

	release, ok, err := first.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("outreach:sweep:lock"))

	_, ok, err = second.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, release(ctx))
	assert.False(t, mr.Exists("outreach:sweep:lock"))

	_, ok, err = second.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestLockReleaseKeepsForeignLock: a holder whose TTL ran out must not drop
// the lock another process took afterwards.
func TestLockReleaseKeepsForeignLock(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	ctx := context.Background()
	lock := NewLock(rdb, "k")

	staleRelease, ok, err := lock.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	_, ok, err = lock.TryLock(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, staleRelease(ctx))
	assert.True(t, mr.Exists("k"))
}

func TestStreamNotifierAppends(t *testing.T) {
	_, rdb := setupTestRedis(t)
	ctx := context.Background()
	n := NewStreamNotifier(rdb, "outreach:messages", 1000)

	p := domain.Prospect{ID: 7, Name: "Corner Cafe", Email: "cafe@example.com", City: "Leeds", Country: "UK", Category: "cafe"}
	require.NoError(t, n.Send(ctx, p, domain.MessageInitial))
	require.NoError(t, n.Send(ctx, p, domain.MessageFollowUp))

	entries, err := rdb.XRange(ctx, "outreach:messages", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "7", entries[0].Values["prospect_id"])
	assert.Equal(t, "initial", entries[0].Values["kind"])
	assert.Equal(t, "cafe@example.com", entries[0].Values["email"])
	assert.Equal(t, "follow_up", entries[1].Values["kind"])
}

func TestStreamNotifierFailsWhenRedisIsDown(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	n := NewStreamNotifier(rdb, "s", 0)
	mr.Close()

	err := n.Send(context.Background(), domain.Prospect{ID: 1}, domain.MessageInitial)
	assert.Error(t, err)
}
