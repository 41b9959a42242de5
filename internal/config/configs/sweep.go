package configs

import "time"

// Sweep configures the periodic sweeper. Batch sizes bound how many
// prospects a single sweep handles per stage.
type Sweep struct {
	Interval      time.Duration `env:"INTERVAL" envDefault:"1h"`
	Deadline      time.Duration `env:"DEADLINE" envDefault:"5m"`
	InitialBatch  int           `env:"INITIAL_BATCH" envDefault:"10"`
	FollowUpBatch int           `env:"FOLLOW_UP_BATCH" envDefault:"5"`
	ExpiryBatch   int           `env:"EXPIRY_BATCH" envDefault:"5"`
	SlotBatch     int           `env:"SLOT_BATCH" envDefault:"5"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
}
