package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mesa-outreach/internal/clock"
	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// contacter sends the initial message to a replacement candidate and
// records the slot it was handed.
type contacter interface {
	contact(ctx context.Context, p domain.Prospect, slot *domain.Slot) (domain.Prospect, error)
}

// Resolution describes the outcome of a replacement search.
type Resolution struct {
	Location  domain.Location
	Candidate *domain.Prospect
	Slot      *domain.Slot
	// Resumed is true when the candidate had already been claimed by an
	// earlier, interrupted resolution.
	Resumed bool
}

// Unresolved reports whether no candidate was found.
func (r Resolution) Unresolved() bool {
	return r.Candidate == nil
}

// ReplacementResolver hands the slot of an unresponsive prospect to the
// oldest never-contacted pending prospect in the same city, falling back to
// the same country.
type ReplacementResolver struct {
	prospects port.ProspectStore
	slots     *SlotManager
	contacter contacter
	clock     clock.Clock
	slotTTL   time.Duration
	logger    *slog.Logger
}

// Find returns the replacement candidate for loc, or nil when the pool is
// exhausted.
func (r *ReplacementResolver) Find(ctx context.Context, loc domain.Location) (*domain.Prospect, error) {
	base := port.ProspectFilter{
		Stage:          domain.StagePending,
		NeverContacted: true,
		Unclaimed:      true,
		Country:        loc.Country,
		OrderBy:        port.OrderByCreated,
		Limit:          1,
	}
	sameCity := base
	sameCity.City = loc.City
	sameCountry := base
	sameCountry.ExcludeCity = loc.City

	for _, f := range []port.ProspectFilter{sameCity, sameCountry} {
		found, err := r.prospects.FindProspects(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("find replacement candidate: %w", err)
		}
		if len(found) > 0 {
			return &found[0], nil
		}
	}
	return nil, nil
}

// Resolve finds and activates a replacement for expiring. held is the slot
// expiring currently holds, if any; loc is where the replacement is
// searched and its provisional slot created. Exhaustion is not an error:
// the held slot is released and an unresolved Resolution returned.
func (r *ReplacementResolver) Resolve(ctx context.Context, expiring domain.Prospect, loc domain.Location, held *domain.Slot) (*Resolution, error) {
	res := &Resolution{Location: loc}

	candidate, resumed, err := r.claim(ctx, expiring, loc)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		if held != nil {
			if err = r.slots.Release(ctx, *held); err != nil {
				return nil, err
			}
		}
		r.logger.Info("no replacement candidate, slot left unassigned",
			slog.Int64("prospect_id", expiring.ID),
			slog.String("location", loc.Key()))
		return res, nil
	}
	res.Candidate = candidate
	res.Resumed = resumed

	if candidate.Frozen() {
		// The claimant answered before the cascade finished and takes no
		// slot from it.
		if err = r.releaseUnlessTaken(ctx, held, nil); err != nil {
			return nil, err
		}
		return res, nil
	}

	slot, err := r.slots.HeldBy(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		slot, err = r.handOver(ctx, expiring, candidate.ID, loc, held)
		if err != nil {
			return nil, err
		}
	} else if err = r.releaseUnlessTaken(ctx, held, slot); err != nil {
		return nil, err
	}
	res.Slot = slot

	activated, err := r.contacter.contact(ctx, *candidate, slot)
	if err != nil {
		return nil, err
	}
	res.Candidate = &activated

	r.logger.Info("replacement assigned",
		slog.Int64("prospect_id", expiring.ID),
		slog.Int64("replacement_id", activated.ID),
		slog.String("location", loc.Key()),
		slog.Bool("slot", slot != nil),
		slog.Bool("resumed", resumed))
	return res, nil
}

// claim returns the candidate already claimed for expiring, or claims a
// fresh one by stamping ReplacesProspectID on it.
func (r *ReplacementResolver) claim(ctx context.Context, expiring domain.Prospect, loc domain.Location) (*domain.Prospect, bool, error) {
	id := expiring.ID
	existing, err := r.prospects.FindProspects(ctx, port.ProspectFilter{ReplacesProspectID: &id, Limit: 1})
	if err != nil {
		return nil, false, fmt.Errorf("find claimed replacement: %w", err)
	}
	if len(existing) > 0 {
		return &existing[0], true, nil
	}

	candidate, err := r.Find(ctx, loc)
	if err != nil || candidate == nil {
		return nil, false, err
	}
	candidate.ReplacesProspectID = &id
	if err = r.prospects.UpdateProspect(ctx, candidate); err != nil {
		return nil, false, fmt.Errorf("claim replacement %d: %w", candidate.ID, err)
	}
	return candidate, false, nil
}

// handOver moves the slot at loc to the candidate. A slot the expiring
// prospect held is always handed over; otherwise the candidate only gets
// the location when it is vacant.
func (r *ReplacementResolver) handOver(ctx context.Context, expiring domain.Prospect, candidateID int64, loc domain.Location, held *domain.Slot) (*domain.Slot, error) {
	expiresAt := r.clock.Now().Add(r.slotTTL)
	var expected *int64
	if held != nil {
		id := expiring.ID
		expected = &id
	}
	slot, err := r.slots.AssignProvisional(ctx, loc, candidateID, expiresAt, expected)
	if held == nil && errors.Is(err, port.ErrSlotOccupied) {
		r.logger.Debug("replacement location occupied, no provisional slot",
			slog.Int64("replacement_id", candidateID),
			slog.String("location", loc.Key()))
		return nil, nil
	}
	return slot, err
}

// releaseUnlessTaken frees held unless the candidate's slot taken is that
// same location, which happens when a resumed cascade already handed it
// over.
func (r *ReplacementResolver) releaseUnlessTaken(ctx context.Context, held, taken *domain.Slot) error {
	if held == nil || (taken != nil && taken.LocationKey == held.LocationKey) {
		return nil
	}
	return r.slots.Release(ctx, *held)
}
