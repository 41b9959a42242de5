package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

type sweepStage struct {
	name string
	run  func(ctx context.Context, now time.Time, report *port.SweepReport) error
}

// Sweep runs one pass over the funnel. Expiries go first so that pending
// prospects are still available as replacements before the initial stage
// contacts them. Stages process prospects in ascending id order and stop
// early when ctx is done.
func (e *Engine) Sweep(ctx context.Context) (*port.SweepReport, error) {
	now := e.clock.Now()
	report := &port.SweepReport{StartedAt: now}
	defer func() {
		report.FinishedAt = e.clock.Now()
		e.mu.Lock()
		last := *report
		e.lastSweep = &last
		e.mu.Unlock()
	}()

	stages := []sweepStage{
		{name: "expiry", run: e.sweepExpiries},
		{name: "slot_expiry", run: e.sweepSlots},
		{name: "follow_up", run: e.sweepFollowUps},
		{name: "initial", run: e.sweepPending},
	}
	for _, st := range stages {
		if err := st.run(ctx, now, report); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				report.Aborted = true
				return report, fmt.Errorf("sweep %s stage: %w", st.name, ctxErr)
			}
			return report, fmt.Errorf("sweep %s stage: %w", st.name, err)
		}
	}
	return report, nil
}

func (e *Engine) sweepPending(ctx context.Context, now time.Time, report *port.SweepReport) error {
	prospects, err := e.prospects.FindProspects(ctx, port.ProspectFilter{
		Stage:   domain.StagePending,
		OrderBy: port.OrderByID,
		Limit:   e.cfg.InitialBatch,
	})
	if err != nil {
		return err
	}
	for _, p := range prospects {
		if err = ctx.Err(); err != nil {
			return err
		}
		t, ok := domain.Next(p, now, e.cfg.Policy)
		if !ok {
			continue
		}
		if _, err = e.advance(ctx, p, t); err != nil {
			e.recordFailure(report, p.ID, "initial", err)
			continue
		}
		report.Contacted++
	}
	return nil
}

func (e *Engine) sweepFollowUps(ctx context.Context, now time.Time, report *port.SweepReport) error {
	until := now.Add(-e.cfg.Policy.FollowUpAfter)
	prospects, err := e.prospects.FindProspects(ctx, port.ProspectFilter{
		Stage:                 domain.StageInitialSent,
		InitialContactedUntil: &until,
		OrderBy:               port.OrderByID,
		Limit:                 e.cfg.FollowUpBatch,
	})
	if err != nil {
		return err
	}
	for _, p := range prospects {
		if err = ctx.Err(); err != nil {
			return err
		}
		t, ok := domain.Next(p, now, e.cfg.Policy)
		if !ok {
			continue
		}
		if _, err = e.advance(ctx, p, t); err != nil {
			e.recordFailure(report, p.ID, "follow_up", err)
			continue
		}
		report.FollowedUp++
	}
	return nil
}

func (e *Engine) sweepExpiries(ctx context.Context, now time.Time, report *port.SweepReport) error {
	until := now.Add(-e.cfg.Policy.ExpireAfter)
	offered := false
	prospects, err := e.prospects.FindProspects(ctx, port.ProspectFilter{
		Stage:                  domain.StageFollowUpSent,
		FollowUpContactedUntil: &until,
		ReplacementOffered:     &offered,
		OrderBy:                port.OrderByID,
		Limit:                  e.cfg.ExpiryBatch,
	})
	if err != nil {
		return err
	}
	for _, p := range prospects {
		if err = ctx.Err(); err != nil {
			return err
		}
		t, ok := domain.Next(p, now, e.cfg.Policy)
		if !ok {
			continue
		}
		if err = e.expire(ctx, p, t, report); err != nil {
			e.recordFailure(report, p.ID, "expiry", err)
			continue
		}
		report.Expired++
	}
	return nil
}

// expire runs the replacement cascade for an unresponsive prospect, sends
// it the replacement notice and marks it expired. Every step is safe to
// repeat, so a failure anywhere leaves the prospect to the next sweep.
func (e *Engine) expire(ctx context.Context, p domain.Prospect, t domain.Transition, report *port.SweepReport) error {
	held, err := e.slots.HeldBy(ctx, p.ID)
	if err != nil {
		return err
	}
	loc := p.Location()
	if held != nil {
		loc = held.Location()
	}
	res, err := e.resolver.Resolve(ctx, p, loc, held)
	if err != nil {
		return err
	}
	if _, err = e.advance(ctx, p, t); err != nil {
		return err
	}
	e.countResolution(report, res)
	return nil
}

func (e *Engine) sweepSlots(ctx context.Context, now time.Time, report *port.SweepReport) error {
	slots, err := e.slots.Expired(ctx, now, e.cfg.SlotBatch)
	if err != nil {
		return err
	}
	for _, sl := range slots {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = e.expireSlot(ctx, sl, report); err != nil {
			e.recordFailure(report, *sl.HolderID, "slot_expiry", err)
			continue
		}
		report.SlotsExpired++
	}
	return nil
}

// expireSlot handles a provisional slot whose hold lapsed, independent of
// the holder's own campaign timers. The holder keeps its funnel stage but
// loses the slot, which cascades to the next candidate.
func (e *Engine) expireSlot(ctx context.Context, sl domain.Slot, report *port.SweepReport) error {
	holder, err := e.prospects.GetProspect(ctx, *sl.HolderID)
	if err != nil {
		return err
	}
	switch {
	case holder == nil, holder.OptedOut:
		return e.slots.Release(ctx, sl)
	case holder.Confirmed:
		_, err = e.slots.ConvertToPaid(ctx, holder.ID)
		return err
	}

	if holder.SlotAssigned {
		holder.SlotAssigned = false
		holder.SlotExpiresAt = nil
		if err = e.prospects.UpdateProspect(ctx, holder); err != nil {
			return fmt.Errorf("clear slot of prospect %d: %w", holder.ID, err)
		}
	}
	res, err := e.resolver.Resolve(ctx, *holder, sl.Location(), &sl)
	if err != nil {
		return err
	}
	e.countResolution(report, res)
	return nil
}

func (e *Engine) countResolution(report *port.SweepReport, res *Resolution) {
	if res.Unresolved() {
		report.Unresolved++
		e.unresolved.Add(1)
		return
	}
	report.Replaced++
}

// recordFailure isolates a per-prospect failure: it is counted and logged
// and the sweep moves on.
func (e *Engine) recordFailure(report *port.SweepReport, prospectID int64, stage string, err error) {
	attrs := []any{
		slog.Int64("prospect_id", prospectID),
		slog.String("stage", stage),
		slog.Any("error", err),
	}
	switch {
	case errors.Is(err, port.ErrConflict):
		report.Conflicts++
		e.logger.Info("stale prospect skipped until next sweep", attrs...)
	case errors.Is(err, port.ErrDeliveryFailed):
		report.DeliveryFailures++
		e.logger.Warn("message delivery failed, will retry", attrs...)
	case errors.Is(err, port.ErrSlotOccupied):
		report.Violations++
		e.violations.Add(1)
		e.logger.Error("slot exclusivity violation rejected", attrs...)
	default:
		report.Failures++
		e.logger.Error("prospect processing failed", attrs...)
	}
}
