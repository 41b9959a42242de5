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

// SlotManager owns the one-holder-per-location rule. Every write goes
// through the store's version check, so a slot that changed since it was
// read is never overwritten.
type SlotManager struct {
	store  port.SlotStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewSlotManager returns a SlotManager over store.
func NewSlotManager(store port.SlotStore, c clock.Clock, logger *slog.Logger) *SlotManager {
	return &SlotManager{store: store, clock: c, logger: logger}
}

// HeldBy returns the slot held by prospect id, or nil.
func (m *SlotManager) HeldBy(ctx context.Context, id int64) (*domain.Slot, error) {
	return m.store.FindSlotByHolder(ctx, id)
}

// AssignProvisional gives holderID a provisional hold on loc until
// expiresAt. A provisional holder may be displaced only when it is
// expectedHolder or its hold has lapsed. Paid holders are never displaced;
// both cases fail with port.ErrSlotOccupied.
func (m *SlotManager) AssignProvisional(ctx context.Context, loc domain.Location, holderID int64, expiresAt time.Time, expectedHolder *int64) (*domain.Slot, error) {
	return m.assign(ctx, loc, holderID, false, &expiresAt, expectedHolder)
}

// AssignPaid gives holderID a paid hold on loc if nobody actively holds it.
func (m *SlotManager) AssignPaid(ctx context.Context, loc domain.Location, holderID int64) (*domain.Slot, error) {
	return m.assign(ctx, loc, holderID, true, nil, nil)
}

func (m *SlotManager) assign(ctx context.Context, loc domain.Location, holderID int64, paid bool, expiresAt *time.Time, expectedHolder *int64) (*domain.Slot, error) {
	key := loc.Key()
	cur, err := m.store.GetSlot(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", key, err)
	}
	slot := cur
	if slot == nil {
		slot = &domain.Slot{LocationKey: key, City: loc.City, Country: loc.Country}
	}

	switch {
	case slot.Vacant(), slot.HeldBy(holderID):
	case slot.IsPaid:
		return nil, fmt.Errorf("%w: %s is paid for by prospect %d", port.ErrSlotOccupied, key, *slot.HolderID)
	case expectedHolder != nil && slot.HeldBy(*expectedHolder):
	case slot.Expired(m.clock.Now()):
		m.logger.Info("displacing lapsed provisional holder",
			slog.String("location", key),
			slog.Int64("previous_holder", *slot.HolderID),
			slog.Int64("holder", holderID))
	default:
		return nil, fmt.Errorf("%w: %s is held by prospect %d", port.ErrSlotOccupied, key, *slot.HolderID)
	}

	if slot.HeldBy(holderID) && slot.IsPaid == paid && sameTime(slot.ExpiresAt, expiresAt) {
		return slot, nil
	}
	id := holderID
	slot.HolderID = &id
	slot.IsPaid = paid
	slot.ExpiresAt = expiresAt
	if err = m.store.UpsertSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return slot, nil
}

// ConvertToPaid flips the slot held by holderID to paid and clears its
// expiry. It returns nil when the prospect holds no slot.
func (m *SlotManager) ConvertToPaid(ctx context.Context, holderID int64) (*domain.Slot, error) {
	slot, err := m.store.FindSlotByHolder(ctx, holderID)
	if err != nil || slot == nil {
		return nil, err
	}
	if slot.IsPaid {
		return slot, nil
	}
	slot.IsPaid = true
	slot.ExpiresAt = nil
	if err = m.store.UpsertSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("convert slot %s: %w", slot.LocationKey, err)
	}
	return slot, nil
}

// Release clears the holder of slot. A slot already released or taken over
// by someone else is left untouched.
func (m *SlotManager) Release(ctx context.Context, slot domain.Slot) error {
	if slot.Vacant() {
		return nil
	}
	holder := *slot.HolderID
	err := m.store.ReleaseSlot(ctx, &slot)
	if errors.Is(err, port.ErrConflict) {
		cur, getErr := m.store.GetSlot(ctx, slot.LocationKey)
		if getErr != nil {
			return getErr
		}
		if cur == nil || !cur.HeldBy(holder) {
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("release slot %s: %w", slot.LocationKey, err)
	}
	return nil
}

// ReleaseHeldBy releases whatever slot holderID holds.
func (m *SlotManager) ReleaseHeldBy(ctx context.Context, holderID int64) error {
	slot, err := m.store.FindSlotByHolder(ctx, holderID)
	if err != nil || slot == nil {
		return err
	}
	return m.Release(ctx, *slot)
}

// Expired returns at most limit provisional slots that lapsed by now.
func (m *SlotManager) Expired(ctx context.Context, now time.Time, limit int) ([]domain.Slot, error) {
	return m.store.ListExpiredSlots(ctx, now, limit)
}

// Held returns every slot with a holder.
func (m *SlotManager) Held(ctx context.Context) ([]domain.Slot, error) {
	return m.store.ListSlots(ctx)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
