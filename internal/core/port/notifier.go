package port

import (
	"context"
	"time"

	"mesa-outreach/internal/core/domain"
)

// Notifier sends a templated message to a prospect. A returned error means
// the message was not delivered; the engine retries on a later sweep.
// Message content and transport are the notifier's concern.
type Notifier interface {
	Send(ctx context.Context, prospect domain.Prospect, kind domain.MessageKind) error
}

// SweepLock keeps engine processes that share a store from sweeping at the
// same time. TryLock returns acquired=false without error when another
// holder owns the lock.
type SweepLock interface {
	TryLock(ctx context.Context, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}
