package port

import (
	"context"
	"time"

	"mesa-outreach/internal/core/domain"
)

// ProspectOrder selects the ordering of FindProspects results.
type ProspectOrder int

const (
	// OrderByID sorts by ascending id, the sweep processing order.
	OrderByID ProspectOrder = iota
	// OrderByCreated sorts oldest-created first, ties broken by id.
	OrderByCreated
)

// ProspectFilter is the predicate passed to FindProspects. Zero-valued
// fields do not constrain the result. Time bounds are inclusive.
type ProspectFilter struct {
	Stage                  domain.Stage
	InitialContactedUntil  *time.Time
	FollowUpContactedUntil *time.Time
	ReplacementOffered     *bool
	NeverContacted         bool
	City                   string
	Country                string
	ExcludeCity            string
	ReplacesProspectID     *int64
	Unclaimed              bool
	OrderBy                ProspectOrder
	Limit                  int
}

// ProspectStore is the persistence boundary for prospects. Updates are
// compare-and-set on Prospect.Version so a stale write is rejected with
// ErrConflict instead of overwriting newer state.
type ProspectStore interface {
	// FindProspects returns prospects matching filter.
	FindProspects(ctx context.Context, filter ProspectFilter) ([]domain.Prospect, error)
	// GetProspect returns a prospect by id, or nil when it does not exist.
	GetProspect(ctx context.Context, id int64) (*domain.Prospect, error)
	// CreateProspect stores p and fills in its id, version and timestamps.
	CreateProspect(ctx context.Context, p *domain.Prospect) error
	// UpdateProspect writes p if the stored version still equals p.Version
	// and bumps p.Version on success.
	UpdateProspect(ctx context.Context, p *domain.Prospect) error
	// CountByStage returns the number of prospects in every stage.
	CountByStage(ctx context.Context) (map[domain.Stage]int64, error)
}

// SlotStore persists advertising slots keyed by location. Writes are
// compare-and-set on Slot.Version; a stale slot yields ErrConflict.
type SlotStore interface {
	// GetSlot returns the slot for key, or nil when none was ever created.
	GetSlot(ctx context.Context, key string) (*domain.Slot, error)
	// FindSlotByHolder returns the slot held by prospect id, or nil.
	FindSlotByHolder(ctx context.Context, holderID int64) (*domain.Slot, error)
	// UpsertSlot inserts slot when its Version is zero, otherwise updates it
	// if the stored version still matches. Version is bumped on success.
	UpsertSlot(ctx context.Context, slot *domain.Slot) error
	// ReleaseSlot clears the holder of slot under the same version check.
	ReleaseSlot(ctx context.Context, slot *domain.Slot) error
	// ListSlots returns every slot that currently has a holder.
	ListSlots(ctx context.Context) ([]domain.Slot, error)
	// ListExpiredSlots returns provisional slots whose expiry is at or
	// before now, oldest expiry first.
	ListExpiredSlots(ctx context.Context, now time.Time, limit int) ([]domain.Slot, error)
}

// MessageLog is the audit log of dispatched messages and the idempotency
// guard for them.
type MessageLog interface {
	// AcquireMessage reserves the right to dispatch kind to the prospect.
	// It returns true when no record existed or the previous attempt
	// failed; the record is then pending. It returns false when the
	// message was already delivered or a dispatch is in doubt.
	AcquireMessage(ctx context.Context, prospectID int64, kind domain.MessageKind, at time.Time) (bool, error)
	// CompleteMessage stores the outcome of an acquired dispatch.
	CompleteMessage(ctx context.Context, prospectID int64, kind domain.MessageKind, outcome domain.MessageOutcome, at time.Time) error
	// GetMessage returns the record for prospect and kind, or nil.
	GetMessage(ctx context.Context, prospectID int64, kind domain.MessageKind) (*domain.MessageRecord, error)
	// ListMessages returns the records of a prospect, oldest first.
	ListMessages(ctx context.Context, prospectID int64) ([]domain.MessageRecord, error)
}

// Store bundles the three persistence ports; adapters implement all of
// them on one backend.
type Store interface {
	ProspectStore
	SlotStore
	MessageLog
}
