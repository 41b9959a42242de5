package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-outreach/internal/adapter/memory"
	"mesa-outreach/internal/clock"
	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
	"mesa-outreach/internal/core/port/mocks"
)

var leeds = domain.Location{City: "Leeds", Country: "UK"}

func newSlotManager(t *testing.T) (*SlotManager, *memory.Store, *clock.Fake) {
	t.Helper()
	c := clock.NewFake(t0)
	store := memory.NewStore(c)
	return NewSlotManager(store, c, discardLogger()), store, c
}

func TestSlotExclusivity(t *testing.T) {
	m, _, _ := newSlotManager(t)
	ctx := context.Background()

	slot, err := m.AssignProvisional(ctx, leeds, 1, t0.Add(7*day), nil)
	require.NoError(t, err)
	assert.Equal(t, "uk/leeds", slot.LocationKey)

	_, err = m.AssignProvisional(ctx, leeds, 2, t0.Add(7*day), nil)
	assert.ErrorIs(t, err, port.ErrSlotOccupied)
	_, err = m.AssignPaid(ctx, leeds, 2)
	assert.ErrorIs(t, err, port.ErrSlotOccupied)

	holder := int64(1)
	slot, err = m.AssignProvisional(ctx, leeds, 2, t0.Add(7*day), &holder)
	require.NoError(t, err)
	assert.True(t, slot.HeldBy(2))
}

func TestSlotLapsedHolderIsDisplaced(t *testing.T) {
	m, _, c := newSlotManager(t)
	ctx := context.Background()

	_, err := m.AssignProvisional(ctx, leeds, 1, t0.Add(time.Hour), nil)
	require.NoError(t, err)

	c.Advance(time.Hour)
	slot, err := m.AssignProvisional(ctx, leeds, 2, t0.Add(8*day), nil)
	require.NoError(t, err)
	assert.True(t, slot.HeldBy(2))
}

func TestSlotPaidHolderIsNeverDisplaced(t *testing.T) {
	m, _, c := newSlotManager(t)
	ctx := context.Background()

	_, err := m.AssignPaid(ctx, leeds, 1)
	require.NoError(t, err)

	c.Advance(365 * day)
	holder := int64(1)
	_, err = m.AssignProvisional(ctx, leeds, 2, t0.Add(400*day), &holder)
	assert.ErrorIs(t, err, port.ErrSlotOccupied)
}

func TestSlotConvertAndRelease(t *testing.T) {
	m, _, _ := newSlotManager(t)
	ctx := context.Background()

	none, err := m.ConvertToPaid(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = m.AssignProvisional(ctx, leeds, 1, t0.Add(7*day), nil)
	require.NoError(t, err)
	slot, err := m.ConvertToPaid(ctx, 1)
	require.NoError(t, err)
	assert.True(t, slot.IsPaid)
	assert.Nil(t, slot.ExpiresAt)

	require.NoError(t, m.ReleaseHeldBy(ctx, 1))
	held, err := m.HeldBy(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, held)
	require.NoError(t, m.ReleaseHeldBy(ctx, 1))
}

// TestSlotReleaseAfterTakeover: releasing a slot that someone else took in
// the meantime is a no-op.
func TestSlotReleaseAfterTakeover(t *testing.T) {
	store := mocks.NewMockSlotStore(t)
	m := NewSlotManager(store, clock.NewFake(t0), discardLogger())
	one, two := int64(1), int64(2)
	stale := domain.Slot{LocationKey: "uk/leeds", HolderID: &one, Version: 3}

	store.EXPECT().ReleaseSlot(mock.Anything, mock.AnythingOfType("*domain.Slot")).Return(port.ErrConflict).Once()
	store.EXPECT().GetSlot(mock.Anything, "uk/leeds").Return(&domain.Slot{LocationKey: "uk/leeds", HolderID: &two, Version: 4}, nil).Once()

	require.NoError(t, m.Release(context.Background(), stale))
}

func TestSlotReleaseConflictStillHeld(t *testing.T) {
	store := mocks.NewMockSlotStore(t)
	m := NewSlotManager(store, clock.NewFake(t0), discardLogger())
	one := int64(1)
	stale := domain.Slot{LocationKey: "uk/leeds", HolderID: &one, Version: 3}

	store.EXPECT().ReleaseSlot(mock.Anything, mock.AnythingOfType("*domain.Slot")).Return(port.ErrConflict).Once()
	store.EXPECT().GetSlot(mock.Anything, "uk/leeds").Return(&domain.Slot{LocationKey: "uk/leeds", HolderID: &one, Version: 4}, nil).Once()

	assert.ErrorIs(t, m.Release(context.Background(), stale), port.ErrConflict)
}
