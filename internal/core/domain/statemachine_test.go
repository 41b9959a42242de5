package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) *time.Time {
	v := t0.Add(d)
	return &v
}

func TestCanTransition(t *testing.T) {
	allowed := map[Stage][]Stage{
		StagePending:      {StageInitialSent, StageConfirmed, StageOptedOut},
		StageInitialSent:  {StageFollowUpSent, StageConfirmed, StageOptedOut},
		StageFollowUpSent: {StageExpired, StageConfirmed, StageOptedOut},
	}
	for _, from := range Stages {
		for _, to := range Stages {
			want := false
			for _, s := range allowed[from] {
				if s == to {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestNextPendingIsImmediate(t *testing.T) {
	tr, ok := Next(Prospect{ID: 1, Stage: StagePending}, t0, DefaultPolicy())
	require.True(t, ok)
	assert.Equal(t, StageInitialSent, tr.To)
	assert.Equal(t, MessageInitial, tr.Message)
}

// TestNextTimeGating checks the 7 day thresholds are inclusive and that
// 6d23h is not enough.
func TestNextTimeGating(t *testing.T) {
	policy := DefaultPolicy()
	initial := Prospect{ID: 1, Stage: StageInitialSent, InitialContactedAt: at(0)}
	followed := Prospect{ID: 2, Stage: StageFollowUpSent, InitialContactedAt: at(0), FollowUpContactedAt: at(0)}

	tests := []struct {
		name    string
		p       Prospect
		elapsed time.Duration
		want    Stage
		ok      bool
	}{
		{"follow-up too early", initial, 6*24*time.Hour + 23*time.Hour, "", false},
		{"follow-up at threshold", initial, 7 * 24 * time.Hour, StageFollowUpSent, true},
		{"follow-up later", initial, 9 * 24 * time.Hour, StageFollowUpSent, true},
		{"expiry too early", followed, 6*24*time.Hour + 23*time.Hour, "", false},
		{"expiry at threshold", followed, 7 * 24 * time.Hour, StageExpired, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := Next(tt.p, t0.Add(tt.elapsed), policy)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, tr.To)
		})
	}
}

func TestNextSkipsOfferedAndFrozen(t *testing.T) {
	now := t0.Add(30 * 24 * time.Hour)
	cases := []Prospect{
		{ID: 1, Stage: StageFollowUpSent, InitialContactedAt: at(0), FollowUpContactedAt: at(0), ReplacementOffered: true},
		{ID: 2, Stage: StageInitialSent, InitialContactedAt: at(0), Confirmed: true},
		{ID: 3, Stage: StageInitialSent, InitialContactedAt: at(0), OptedOut: true},
		{ID: 4, Stage: StageConfirmed, Confirmed: true},
		{ID: 5, Stage: StageOptedOut, OptedOut: true},
		{ID: 6, Stage: StageExpired},
	}
	for _, p := range cases {
		_, ok := Next(p, now, DefaultPolicy())
		assert.False(t, ok, "prospect %d", p.ID)
	}
}

func TestSignalTransition(t *testing.T) {
	tr, changed, err := SignalTransition(Prospect{Stage: StageInitialSent}, StageConfirmed)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, EffectConfirm, tr.Effect)

	_, changed, err = SignalTransition(Prospect{Stage: StageConfirmed, Confirmed: true}, StageConfirmed)
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = SignalTransition(Prospect{Stage: StageConfirmed, Confirmed: true}, StageOptedOut)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, _, err = SignalTransition(Prospect{Stage: StageExpired}, StageConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, _, err = SignalTransition(Prospect{Stage: StagePending}, StageExpired)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApplyStampsFields(t *testing.T) {
	p := Prospect{ID: 7, Stage: StagePending}
	tr, _ := Next(p, t0, DefaultPolicy())
	require.NoError(t, tr.Apply(&p, t0))
	require.NotNil(t, p.InitialContactedAt)
	assert.Equal(t, t0, *p.InitialContactedAt)

	later := t0.Add(7 * 24 * time.Hour)
	tr, ok := Next(p, later, DefaultPolicy())
	require.True(t, ok)
	require.NoError(t, tr.Apply(&p, later))
	assert.Equal(t, later, *p.FollowUpContactedAt)

	p.SlotAssigned = true
	p.SlotExpiresAt = at(time.Hour)
	end := later.Add(7 * 24 * time.Hour)
	tr, ok = Next(p, end, DefaultPolicy())
	require.True(t, ok)
	require.NoError(t, tr.Apply(&p, end))
	assert.Equal(t, StageExpired, p.Stage)
	assert.True(t, p.ReplacementOffered)
	assert.False(t, p.SlotAssigned)
	assert.Nil(t, p.SlotExpiresAt)
}

func TestApplyRejectsStaleTransition(t *testing.T) {
	p := Prospect{ID: 1, Stage: StageConfirmed, Confirmed: true}
	tr := Transition{From: StageInitialSent, To: StageFollowUpSent}
	assert.ErrorIs(t, tr.Apply(&p, t0), ErrInvalidTransition)
	assert.Equal(t, StageConfirmed, p.Stage)

	p = Prospect{ID: 2, Stage: StageInitialSent}
	assert.ErrorIs(t, tr.Apply(&p, t0), ErrInvalidTransition)
}

func TestLocationKey(t *testing.T) {
	a := Location{City: "  Leeds ", Country: "UK"}
	b := Location{City: "leeds", Country: "uk"}
	assert.Equal(t, "uk/leeds", a.Key())
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "us/new york", Location{City: "New   York", Country: "US"}.Key())
	assert.Equal(t, NormalizeName("New York"), NormalizeName(" new\tYORK "))
}

func TestSlotExpired(t *testing.T) {
	id := int64(1)
	s := Slot{HolderID: &id, ExpiresAt: at(time.Hour)}
	assert.False(t, s.Expired(t0))
	assert.True(t, s.Expired(t0.Add(time.Hour)))
	assert.True(t, s.Active(t0))

	s.IsPaid = true
	s.ExpiresAt = nil
	assert.False(t, s.Expired(t0.Add(1000*time.Hour)))
}
