package configs

import "time"

// Redis configures the optional Redis connection. With an empty Addr the
// engine runs without a distributed sweep lock.
type Redis struct {
	Addr     string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`

	// LockKey is the key of the cross-process sweep lock.
	LockKey string `env:"LOCK_KEY" envDefault:"outreach:sweep:lock"`
	// Stream receives message requests when NOTIFIER_DRIVER=redis.
	Stream string `env:"STREAM" envDefault:"outreach:messages"`
	// StreamMaxLen caps the stream length; zero disables trimming.
	StreamMaxLen int64 `env:"STREAM_MAX_LEN" envDefault:"100000"`
	// LockTTL bounds how long a crashed sweeper keeps the lock.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"10m"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Addr != ""
}
