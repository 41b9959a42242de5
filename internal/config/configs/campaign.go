package configs

import "time"

// Campaign holds the elapsed-time thresholds of the outreach funnel.
type Campaign struct {
	FollowUpAfter      time.Duration `env:"FOLLOW_UP_AFTER" envDefault:"168h"`
	ExpireAfter        time.Duration `env:"EXPIRE_AFTER" envDefault:"168h"`
	ProvisionalSlotTTL time.Duration `env:"PROVISIONAL_SLOT_TTL" envDefault:"168h"`
}
