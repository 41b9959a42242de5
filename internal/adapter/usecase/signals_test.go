package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-outreach/internal/adapter/memory"
	"mesa-outreach/internal/clock"
	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
	"mesa-outreach/internal/core/port/mocks"
)

func TestConfirmConvertsProvisionalSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.add(t, domain.Prospect{Name: "a", City: "Leeds", Country: "UK", Stage: domain.StageInitialSent, InitialContactedAt: ts(t0)})
	f.hold(t, &p, false, ts(t0.Add(7*day)))

	got, err := f.engine.Confirm(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageConfirmed, got.Stage)
	assert.True(t, got.Confirmed)
	assert.Equal(t, t0, *got.ConfirmedAt)
	assert.True(t, got.SlotAssigned)
	assert.Nil(t, got.SlotExpiresAt)

	slot := f.slot(t, "uk/leeds")
	assert.True(t, slot.IsPaid)
	assert.Nil(t, slot.ExpiresAt)

	// A second confirmation changes nothing.
	again, err := f.engine.Confirm(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Version, again.Version)

	// Nor does the slot expire or move afterwards.
	f.clock.Advance(30 * day)
	_, err = f.engine.Sweep(ctx)
	require.NoError(t, err)
	assert.True(t, f.slot(t, "uk/leeds").HeldBy(p.ID))
	assert.Equal(t, domain.StageConfirmed, f.get(t, p.ID).Stage)
}

func TestConfirmClaimsVacantHomeLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.pending(t, "a", "Leeds", "UK", t0)

	got, err := f.engine.Confirm(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.SlotAssigned)

	slot := f.slot(t, "uk/leeds")
	require.NotNil(t, slot)
	assert.True(t, slot.HeldBy(p.ID))
	assert.True(t, slot.IsPaid)
}

func TestConfirmWithOccupiedHomeLocation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	holder := f.pending(t, "holder", "Leeds", "UK", t0)
	f.hold(t, &holder, false, ts(t0.Add(7*day)))
	p := f.pending(t, "a", "Leeds", "UK", t0)

	got, err := f.engine.Confirm(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageConfirmed, got.Stage)
	assert.False(t, got.SlotAssigned)
	assert.True(t, f.slot(t, "uk/leeds").HeldBy(holder.ID))
}

func TestOptOutReleasesSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.add(t, domain.Prospect{Name: "a", City: "Leeds", Country: "UK", Stage: domain.StageInitialSent, InitialContactedAt: ts(t0)})
	f.hold(t, &p, false, ts(t0.Add(7*day)))

	got, err := f.engine.OptOut(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StageOptedOut, got.Stage)
	assert.True(t, got.OptedOut)
	assert.False(t, got.SlotAssigned)
	assert.True(t, f.slot(t, "uk/leeds").Vacant())

	again, err := f.engine.OptOut(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Version, again.Version)

	// No further messages after opting out.
	f.clock.Advance(30 * day)
	_, err = f.engine.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, f.notifier.count(p.ID, domain.MessageFollowUp))
}

func TestSignalsRejectOtherTerminalStages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	confirmed := f.add(t, domain.Prospect{Name: "c", City: "Leeds", Country: "UK", Stage: domain.StageConfirmed, Confirmed: true})
	optedOut := f.add(t, domain.Prospect{Name: "o", City: "Leeds", Country: "UK", Stage: domain.StageOptedOut, OptedOut: true})
	expired := f.add(t, domain.Prospect{Name: "e", City: "Leeds", Country: "UK", Stage: domain.StageExpired, ReplacementOffered: true})

	_, err := f.engine.OptOut(ctx, confirmed.ID)
	assert.ErrorIs(t, err, port.ErrTerminalProspect)
	_, err = f.engine.Confirm(ctx, optedOut.ID)
	assert.ErrorIs(t, err, port.ErrTerminalProspect)
	_, err = f.engine.Confirm(ctx, expired.ID)
	assert.ErrorIs(t, err, port.ErrTerminalProspect)
	_, err = f.engine.OptOut(ctx, expired.ID)
	assert.ErrorIs(t, err, port.ErrTerminalProspect)

	_, err = f.engine.Confirm(ctx, 404)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

// TestConfirmRetriesAfterConflict: a confirmation racing a sweep re-reads
// the prospect and succeeds.
func TestConfirmRetriesAfterConflict(t *testing.T) {
	c := clock.NewFake(t0)
	store := memory.NewStore(c)
	prospects := mocks.NewMockProspectStore(t)
	e := NewEngine(Deps{Prospects: prospects, Slots: store, Messages: store, Notifier: &recordingNotifier{}, Clock: c, Logger: discardLogger()}, DefaultConfig())

	stale := &domain.Prospect{ID: 1, City: "Leeds", Country: "UK", Stage: domain.StagePending, Version: 1}
	fresh := &domain.Prospect{ID: 1, City: "Leeds", Country: "UK", Stage: domain.StageInitialSent, InitialContactedAt: ts(t0), Version: 2}
	prospects.EXPECT().GetProspect(mock.Anything, int64(1)).Return(stale, nil).Once()
	prospects.EXPECT().GetProspect(mock.Anything, int64(1)).Return(fresh, nil).Once()
	prospects.EXPECT().UpdateProspect(mock.Anything, mock.MatchedBy(func(p *domain.Prospect) bool { return p.Version == 1 })).
		Return(port.ErrConflict).Once()
	prospects.EXPECT().UpdateProspect(mock.Anything, mock.MatchedBy(func(p *domain.Prospect) bool { return p.Version == 2 })).
		Return(nil).Once()

	got, err := e.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StageConfirmed, got.Stage)
	assert.True(t, leedsSlot(t, store).HeldBy(1))
}

func leedsSlot(t *testing.T, store *memory.Store) *domain.Slot {
	t.Helper()
	s, err := store.GetSlot(context.Background(), "uk/leeds")
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}
