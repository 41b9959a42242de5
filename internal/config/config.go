package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-outreach/internal/config/configs"
)

// Config aggregates all configuration sections of the engine. Fields are
// populated from environment variables using the caarlos0/env library;
// nested sections are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects the persistence backend: "postgres" or "memory".
	// The memory store loses all state on restart and is meant for demos.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// NotifierDriver selects the message transport: "log" or "redis".
	NotifierDriver string `env:"NOTIFIER_DRIVER" envDefault:"log"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the sweep lock and stream notifier (REDIS_ prefix).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Sweep configures the periodic sweeper (SWEEP_ prefix).
	Sweep configs.Sweep `envPrefix:"SWEEP_"`

	// Campaign holds the funnel thresholds (CAMPAIGN_ prefix).
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
