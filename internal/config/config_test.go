package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, "log", cfg.NotifierDriver)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.Sweep.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Sweep.Deadline)
	assert.Equal(t, 10, cfg.Sweep.InitialBatch)
	assert.Equal(t, 5, cfg.Sweep.FollowUpBatch)
	assert.Equal(t, 7*24*time.Hour, cfg.Campaign.FollowUpAfter)
	assert.Equal(t, 7*24*time.Hour, cfg.Campaign.ProvisionalSlotTTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, 5*time.Second, cfg.Psql.PingTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SWEEP_INTERVAL", "15m")
	t.Setenv("SWEEP_INITIAL_BATCH", "25")
	t.Setenv("CAMPAIGN_EXPIRE_AFTER", "72h")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/outreach?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, 15*time.Minute, cfg.Sweep.Interval)
	assert.Equal(t, 25, cfg.Sweep.InitialBatch)
	assert.Equal(t, 72*time.Hour, cfg.Campaign.ExpireAfter)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("SWEEP_DEADLINE", "soon")
	_, err := Load()
	assert.Error(t, err)
}
