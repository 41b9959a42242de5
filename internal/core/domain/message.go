package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind identifies which outreach template a message used.
type MessageKind string

const (
	MessageInitial           MessageKind = "initial"
	MessageFollowUp          MessageKind = "follow_up"
	MessageReplacementNotice MessageKind = "replacement_notice"
)

// MessageOutcome is the delivery state of a dispatched message.
type MessageOutcome string

const (
	// OutcomePending marks a dispatch that was started but whose result was
	// never recorded. It is treated as sent.
	OutcomePending   MessageOutcome = "pending"
	OutcomeDelivered MessageOutcome = "delivered"
	OutcomeFailed    MessageOutcome = "failed"
)

// MessageRecord is the append-only audit entry for a message. There is at
// most one record per prospect and kind; failed attempts re-arm the same
// record.
type MessageRecord struct {
	ID         uuid.UUID
	ProspectID int64
	Kind       MessageKind
	Outcome    MessageOutcome
	Attempts   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
