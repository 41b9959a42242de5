package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-outreach/internal/clock"
	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newProspect(t *testing.T, s *Store, name, city, country string, created time.Time) domain.Prospect {
	t.Helper()
	p := domain.Prospect{Name: name, Email: name + "@example.com", City: city, Country: country, Stage: domain.StagePending, CreatedAt: created}
	require.NoError(t, s.CreateProspect(context.Background(), &p))
	return p
}

func TestUpdateProspectCompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	p := newProspect(t, s, "a", "Leeds", "UK", t0)

	stale := p
	p.Category = "cafe"
	require.NoError(t, s.UpdateProspect(ctx, &p))
	assert.Equal(t, int64(2), p.Version)

	stale.Category = "gym"
	assert.ErrorIs(t, s.UpdateProspect(ctx, &stale), port.ErrConflict)

	got, err := s.GetProspect(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "cafe", got.Category)

	missing := domain.Prospect{ID: 99, Version: 1}
	assert.ErrorIs(t, s.UpdateProspect(ctx, &missing), port.ErrNotFound)
}

func TestGetProspectReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	p := newProspect(t, s, "a", "Leeds", "UK", t0)

	got, err := s.GetProspect(ctx, p.ID)
	require.NoError(t, err)
	now := t0
	got.InitialContactedAt = &now

	again, err := s.GetProspect(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, again.InitialContactedAt)

	none, err := s.GetProspect(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestFindProspectsFilters(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	c := newProspect(t, s, "c", "Leeds", "UK", t0.Add(2*time.Hour))
	b := newProspect(t, s, "b", "leeds", "uk", t0.Add(time.Hour))
	d := newProspect(t, s, "d", "York", "UK", t0)
	newProspect(t, s, "e", "Lyon", "France", t0)

	found, err := s.FindProspects(ctx, port.ProspectFilter{City: "LEEDS", Country: "UK", OrderBy: port.OrderByCreated})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, b.ID, found[0].ID)
	assert.Equal(t, c.ID, found[1].ID)

	found, err = s.FindProspects(ctx, port.ProspectFilter{Country: "UK", ExcludeCity: "Leeds"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, d.ID, found[0].ID)

	found, err = s.FindProspects(ctx, port.ProspectFilter{Stage: domain.StagePending, Limit: 3})
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{found[0].ID, found[1].ID, found[2].ID})

	claimer := b.ID
	c.ReplacesProspectID = &claimer
	require.NoError(t, s.UpdateProspect(ctx, &c))
	found, err = s.FindProspects(ctx, port.ProspectFilter{City: "Leeds", Unclaimed: true})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, b.ID, found[0].ID)

	found, err = s.FindProspects(ctx, port.ProspectFilter{ReplacesProspectID: &claimer})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, c.ID, found[0].ID)
}

func TestFindProspectsMatchesSlotKeyNames(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	ny := newProspect(t, s, "ny", "New  York", "US", t0)
	newProspect(t, s, "albany", "Albany", "US", t0)

	found, err := s.FindProspects(ctx, port.ProspectFilter{City: " new york", Country: "us "})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ny.ID, found[0].ID)

	found, err = s.FindProspects(ctx, port.ProspectFilter{Country: "US", ExcludeCity: "New York"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.NotEqual(t, ny.ID, found[0].ID)
}

func TestFindProspectsTimeBoundsAreInclusive(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	p := newProspect(t, s, "a", "Leeds", "UK", t0)
	contacted := t0
	p.Stage = domain.StageInitialSent
	p.InitialContactedAt = &contacted
	require.NoError(t, s.UpdateProspect(ctx, &p))

	until := t0
	found, err := s.FindProspects(ctx, port.ProspectFilter{InitialContactedUntil: &until})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	until = t0.Add(-time.Second)
	found, err = s.FindProspects(ctx, port.ProspectFilter{InitialContactedUntil: &until})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCountByStage(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	newProspect(t, s, "a", "Leeds", "UK", t0)
	p := newProspect(t, s, "b", "Leeds", "UK", t0)
	p.Stage = domain.StageOptedOut
	p.OptedOut = true
	require.NoError(t, s.UpdateProspect(ctx, &p))

	counts, err := s.CountByStage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[domain.StagePending])
	assert.Equal(t, int64(1), counts[domain.StageOptedOut])
}

func TestSlotVersioning(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	one, two := int64(1), int64(2)

	slot := &domain.Slot{LocationKey: "uk/leeds", City: "Leeds", Country: "UK", HolderID: &one}
	require.NoError(t, s.UpsertSlot(ctx, slot))
	assert.Equal(t, int64(1), slot.Version)

	dup := &domain.Slot{LocationKey: "uk/leeds", HolderID: &two}
	assert.ErrorIs(t, s.UpsertSlot(ctx, dup), port.ErrConflict, "insert over an existing slot")

	stale := *slot
	slot.IsPaid = true
	require.NoError(t, s.UpsertSlot(ctx, slot))
	stale.HolderID = &two
	assert.ErrorIs(t, s.UpsertSlot(ctx, &stale), port.ErrConflict)

	other := &domain.Slot{LocationKey: "uk/york", City: "York", Country: "UK", HolderID: &one}
	assert.ErrorIs(t, s.UpsertSlot(ctx, other), port.ErrConflict, "one slot per holder")

	held, err := s.FindSlotByHolder(ctx, one)
	require.NoError(t, err)
	require.NotNil(t, held)
	assert.True(t, held.IsPaid)

	require.NoError(t, s.ReleaseSlot(ctx, held))
	assert.True(t, held.Vacant())
	held, err = s.FindSlotByHolder(ctx, one)
	require.NoError(t, err)
	assert.Nil(t, held)

	listed, err := s.ListSlots(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestListExpiredSlots(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))
	ids := []int64{1, 2, 3}
	early, late := t0.Add(time.Hour), t0.Add(2*time.Hour)
	require.NoError(t, s.UpsertSlot(ctx, &domain.Slot{LocationKey: "uk/york", HolderID: &ids[0], ExpiresAt: &late}))
	require.NoError(t, s.UpsertSlot(ctx, &domain.Slot{LocationKey: "uk/leeds", HolderID: &ids[1], ExpiresAt: &early}))
	require.NoError(t, s.UpsertSlot(ctx, &domain.Slot{LocationKey: "uk/hull", HolderID: &ids[2], IsPaid: true}))

	expired, err := s.ListExpiredSlots(ctx, t0.Add(time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "uk/leeds", expired[0].LocationKey)

	expired, err = s.ListExpiredSlots(ctx, t0.Add(3*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "uk/leeds", expired[0].LocationKey)
}

func TestMessageAcquireIsAtMostOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore(clock.NewFake(t0))

	ok, err := s.AcquireMessage(ctx, 1, domain.MessageInitial, t0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.AcquireMessage(ctx, 1, domain.MessageInitial, t0)
	require.NoError(t, err)
	assert.False(t, ok, "pending dispatch is in doubt")

	require.NoError(t, s.CompleteMessage(ctx, 1, domain.MessageInitial, domain.OutcomeFailed, t0))
	ok, err = s.AcquireMessage(ctx, 1, domain.MessageInitial, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, ok, "failed dispatch is retried")

	require.NoError(t, s.CompleteMessage(ctx, 1, domain.MessageInitial, domain.OutcomeDelivered, t0.Add(time.Hour)))
	ok, err = s.AcquireMessage(ctx, 1, domain.MessageInitial, t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)

	rec, err := s.GetMessage(ctx, 1, domain.MessageInitial)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 2, rec.Attempts)
	assert.Equal(t, domain.OutcomeDelivered, rec.Outcome)

	records, err := s.ListMessages(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	assert.ErrorIs(t, s.CompleteMessage(ctx, 2, domain.MessageFollowUp, domain.OutcomeDelivered, t0), port.ErrNotFound)
}
