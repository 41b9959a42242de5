package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// Confirm applies a confirmation signal: the prospect is frozen and its
// slot becomes paid. A prospect without a slot takes its home location
// when that is vacant. Repeated confirmations are no-ops.
func (e *Engine) Confirm(ctx context.Context, prospectID int64) (*domain.Prospect, error) {
	return e.applySignal(ctx, prospectID, domain.StageConfirmed, func(p *domain.Prospect) error {
		slot, err := e.slots.ConvertToPaid(ctx, p.ID)
		if err != nil {
			return err
		}
		if slot == nil && !p.Confirmed {
			slot, err = e.slots.AssignPaid(ctx, p.Location(), p.ID)
			if errors.Is(err, port.ErrSlotOccupied) {
				e.logger.Info("confirmed prospect's location is taken",
					slog.Int64("prospect_id", p.ID),
					slog.String("location", p.Location().Key()))
				slot, err = nil, nil
			}
			if err != nil {
				return err
			}
		}
		p.SlotAssigned = slot != nil
		return nil
	})
}

// OptOut applies an opt-out signal: the prospect is frozen and any slot it
// holds is released. Repeated opt-outs are no-ops.
func (e *Engine) OptOut(ctx context.Context, prospectID int64) (*domain.Prospect, error) {
	return e.applySignal(ctx, prospectID, domain.StageOptedOut, func(p *domain.Prospect) error {
		return e.slots.ReleaseHeldBy(ctx, p.ID)
	})
}

// applySignal moves the prospect to target right away. slotFn reconciles
// the slot and runs again when the signal is repeated, so an interrupted
// first attempt is completed. A write that loses against a concurrent
// sweep is retried on a fresh read.
func (e *Engine) applySignal(ctx context.Context, prospectID int64, target domain.Stage, slotFn func(p *domain.Prospect) error) (*domain.Prospect, error) {
	var lastErr error
	for attempt := 0; attempt < signalRetries; attempt++ {
		p, err := e.load(ctx, prospectID)
		if err != nil {
			return nil, err
		}
		t, changed, err := domain.SignalTransition(*p, target)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", port.ErrTerminalProspect, err)
		}
		if err = slotFn(p); err != nil {
			return nil, err
		}
		if !changed {
			return p, nil
		}
		if err = t.Apply(p, e.clock.Now()); err != nil {
			return nil, err
		}
		err = e.prospects.UpdateProspect(ctx, p)
		if errors.Is(err, port.ErrConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update prospect %d: %w", p.ID, err)
		}
		e.logger.Info("signal applied",
			slog.Int64("prospect_id", p.ID),
			slog.String("from", string(t.From)),
			slog.String("to", string(t.To)))
		return p, nil
	}
	return nil, fmt.Errorf("apply %s to prospect %d: %w", target, prospectID, lastErr)
}
