package port

import (
	"context"
	"time"

	"mesa-outreach/internal/core/domain"
)

// OutreachUseCase is the primary port of the engine: periodic sweeps,
// inbound signals, discovery and monitoring.
type OutreachUseCase interface {
	// Sweep runs one pass over every funnel stage and the provisional slot
	// expiries. Per-prospect failures are counted in the report; an error
	// is returned only when the pass could not run or was cut short.
	Sweep(ctx context.Context) (*SweepReport, error)

	// Confirm applies a confirmation signal. Confirming twice has the same
	// effect as once.
	Confirm(ctx context.Context, prospectID int64) (*domain.Prospect, error)

	// OptOut applies an opt-out signal and releases any held slot.
	OptOut(ctx context.Context, prospectID int64) (*domain.Prospect, error)

	// Discover registers a new pending prospect.
	Discover(ctx context.Context, req NewProspect) (*domain.Prospect, error)

	// AssignSlot gives the prospect a provisional hold on the slot of its
	// home location. ErrSlotOccupied is returned when another prospect
	// holds it.
	AssignSlot(ctx context.Context, prospectID int64) (*domain.Slot, error)

	// Prospect returns a prospect with its message history.
	Prospect(ctx context.Context, prospectID int64) (*ProspectDetails, error)

	// Status returns a read-only monitoring snapshot.
	Status(ctx context.Context) (*Status, error)
}

// SweepRunner runs a single guarded sweep. The scheduler implements it so
// manual triggers share the in-progress guard with the periodic loop.
type SweepRunner interface {
	RunOnce(ctx context.Context) (*SweepReport, error)
}

// NewProspect is the discovery request for a candidate advertiser.
type NewProspect struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Category string `json:"category"`
}

// ProspectDetails is a prospect together with its message records.
type ProspectDetails struct {
	Prospect domain.Prospect
	Slot     *domain.Slot
	Messages []domain.MessageRecord
}

// SweepReport counts what one sweep did.
type SweepReport struct {
	StartedAt        time.Time
	FinishedAt       time.Time
	Contacted        int
	FollowedUp       int
	Expired          int
	SlotsExpired     int
	Replaced         int
	Unresolved       int
	Conflicts        int
	DeliveryFailures int
	Violations       int
	Failures         int
	Aborted          bool
}

// Status is the monitoring snapshot returned by OutreachUseCase.Status.
type Status struct {
	Stages      map[domain.Stage]int64
	Slots       []domain.Slot
	LastSweepAt *time.Time
	LastSweep   *SweepReport
	Unresolved  int64
	Violations  int64
}
