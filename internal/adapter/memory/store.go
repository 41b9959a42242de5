package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mesa-outreach/internal/clock"
	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

type messageKey struct {
	prospectID int64
	kind       domain.MessageKind
}

// Store implements port.Store in process memory. It is safe for concurrent
// use and applies the same compare-and-set rules as the Postgres adapter.
type Store struct {
	mu        sync.Mutex
	clock     clock.Clock
	nextID    int64
	prospects map[int64]domain.Prospect
	slots     map[string]domain.Slot
	messages  map[messageKey]domain.MessageRecord
}

var _ port.Store = (*Store)(nil)

// NewStore returns an empty store stamping records with c.
func NewStore(c clock.Clock) *Store {
	return &Store{
		clock:     c,
		prospects: make(map[int64]domain.Prospect),
		slots:     make(map[string]domain.Slot),
		messages:  make(map[messageKey]domain.MessageRecord),
	}
}

// FindProspects returns prospects matching filter.
func (s *Store) FindProspects(_ context.Context, f port.ProspectFilter) ([]domain.Prospect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Prospect, 0)
	for _, p := range s.prospects {
		if matches(p, f) {
			out = append(out, cloneProspect(p))
		}
	}
	slices.SortFunc(out, func(a, b domain.Prospect) int {
		if f.OrderBy == port.OrderByCreated {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matches(p domain.Prospect, f port.ProspectFilter) bool {
	if f.Stage != "" && p.Stage != f.Stage {
		return false
	}
	if f.InitialContactedUntil != nil && (p.InitialContactedAt == nil || p.InitialContactedAt.After(*f.InitialContactedUntil)) {
		return false
	}
	if f.FollowUpContactedUntil != nil && (p.FollowUpContactedAt == nil || p.FollowUpContactedAt.After(*f.FollowUpContactedUntil)) {
		return false
	}
	if f.ReplacementOffered != nil && p.ReplacementOffered != *f.ReplacementOffered {
		return false
	}
	if f.NeverContacted && p.InitialContactedAt != nil {
		return false
	}
	if f.City != "" && !sameName(p.City, f.City) {
		return false
	}
	if f.Country != "" && !sameName(p.Country, f.Country) {
		return false
	}
	if f.ExcludeCity != "" && sameName(p.City, f.ExcludeCity) {
		return false
	}
	if f.ReplacesProspectID != nil && (p.ReplacesProspectID == nil || *p.ReplacesProspectID != *f.ReplacesProspectID) {
		return false
	}
	if f.Unclaimed && p.ReplacesProspectID != nil {
		return false
	}
	return true
}

func sameName(a, b string) bool {
	return domain.NormalizeName(a) == domain.NormalizeName(b)
}

// GetProspect returns a prospect by id, or nil.
func (s *Store) GetProspect(_ context.Context, id int64) (*domain.Prospect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prospects[id]
	if !ok {
		return nil, nil
	}
	c := cloneProspect(p)
	return &c, nil
}

// CreateProspect stores p and assigns its id.
func (s *Store) CreateProspect(_ context.Context, p *domain.Prospect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := s.clock.Now()
	p.ID = s.nextID
	p.Version = 1
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	s.prospects[p.ID] = cloneProspect(*p)
	return nil
}

// UpdateProspect writes p when its version is current.
func (s *Store) UpdateProspect(_ context.Context, p *domain.Prospect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.prospects[p.ID]
	if !ok {
		return port.ErrNotFound
	}
	if cur.Version != p.Version {
		return port.ErrConflict
	}
	p.Version++
	p.CreatedAt = cur.CreatedAt
	p.UpdatedAt = s.clock.Now()
	s.prospects[p.ID] = cloneProspect(*p)
	return nil
}

// CountByStage returns the number of prospects per stage.
func (s *Store) CountByStage(_ context.Context) (map[domain.Stage]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.Stage]int64, len(domain.Stages))
	for _, p := range s.prospects {
		counts[p.Stage]++
	}
	return counts, nil
}

// GetSlot returns the slot for key, or nil.
func (s *Store) GetSlot(_ context.Context, key string) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	c := cloneSlot(sl)
	return &c, nil
}

// FindSlotByHolder returns the slot held by holderID, or nil.
func (s *Store) FindSlotByHolder(_ context.Context, holderID int64) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sl := range s.slots {
		if sl.HeldBy(holderID) {
			c := cloneSlot(sl)
			return &c, nil
		}
	}
	return nil, nil
}

// UpsertSlot inserts or updates slot under the version check.
func (s *Store) UpsertSlot(_ context.Context, slot *domain.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	cur, ok := s.slots[slot.LocationKey]
	switch {
	case !ok && slot.Version != 0, ok && cur.Version != slot.Version:
		return port.ErrConflict
	case ok:
		slot.CreatedAt = cur.CreatedAt
	default:
		slot.CreatedAt = now
	}
	if slot.HolderID != nil {
		for key, other := range s.slots {
			if key != slot.LocationKey && other.HeldBy(*slot.HolderID) {
				return port.ErrConflict
			}
		}
	}
	slot.Version++
	slot.UpdatedAt = now
	s.slots[slot.LocationKey] = cloneSlot(*slot)
	return nil
}

// ReleaseSlot clears the holder of slot under the version check.
func (s *Store) ReleaseSlot(_ context.Context, slot *domain.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.slots[slot.LocationKey]
	if !ok {
		return port.ErrNotFound
	}
	if cur.Version != slot.Version {
		return port.ErrConflict
	}
	slot.HolderID = nil
	slot.IsPaid = false
	slot.ExpiresAt = nil
	slot.Version++
	slot.CreatedAt = cur.CreatedAt
	slot.UpdatedAt = s.clock.Now()
	s.slots[slot.LocationKey] = cloneSlot(*slot)
	return nil
}

// ListSlots returns held slots ordered by key.
func (s *Store) ListSlots(_ context.Context) ([]domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Slot, 0, len(s.slots))
	for _, sl := range s.slots {
		if !sl.Vacant() {
			out = append(out, cloneSlot(sl))
		}
	}
	slices.SortFunc(out, func(a, b domain.Slot) int {
		return strings.Compare(a.LocationKey, b.LocationKey)
	})
	return out, nil
}

// ListExpiredSlots returns lapsed provisional slots, oldest expiry first.
func (s *Store) ListExpiredSlots(_ context.Context, now time.Time, limit int) ([]domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Slot, 0)
	for _, sl := range s.slots {
		if !sl.Vacant() && sl.Expired(now) {
			out = append(out, cloneSlot(sl))
		}
	}
	slices.SortFunc(out, func(a, b domain.Slot) int {
		if c := a.ExpiresAt.Compare(*b.ExpiresAt); c != 0 {
			return c
		}
		return strings.Compare(a.LocationKey, b.LocationKey)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AcquireMessage reserves a dispatch of kind to prospectID.
func (s *Store) AcquireMessage(_ context.Context, prospectID int64, kind domain.MessageKind, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := messageKey{prospectID: prospectID, kind: kind}
	rec, ok := s.messages[key]
	if !ok {
		s.messages[key] = domain.MessageRecord{
			ID:         uuid.New(),
			ProspectID: prospectID,
			Kind:       kind,
			Outcome:    domain.OutcomePending,
			Attempts:   1,
			CreatedAt:  at,
			UpdatedAt:  at,
		}
		return true, nil
	}
	if rec.Outcome != domain.OutcomeFailed {
		return false, nil
	}
	rec.Outcome = domain.OutcomePending
	rec.Attempts++
	rec.UpdatedAt = at
	s.messages[key] = rec
	return true, nil
}

// CompleteMessage records the outcome of an acquired dispatch.
func (s *Store) CompleteMessage(_ context.Context, prospectID int64, kind domain.MessageKind, outcome domain.MessageOutcome, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := messageKey{prospectID: prospectID, kind: kind}
	rec, ok := s.messages[key]
	if !ok {
		return port.ErrNotFound
	}
	rec.Outcome = outcome
	rec.UpdatedAt = at
	s.messages[key] = rec
	return nil
}

// GetMessage returns the record for prospectID and kind, or nil.
func (s *Store) GetMessage(_ context.Context, prospectID int64, kind domain.MessageKind) (*domain.MessageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.messages[messageKey{prospectID: prospectID, kind: kind}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// ListMessages returns the records of prospectID, oldest first.
func (s *Store) ListMessages(_ context.Context, prospectID int64) ([]domain.MessageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.MessageRecord, 0)
	for key, rec := range s.messages {
		if key.prospectID == prospectID {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b domain.MessageRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.Kind), string(b.Kind))
	})
	return out, nil
}

func cloneProspect(p domain.Prospect) domain.Prospect {
	p.InitialContactedAt = cloneTime(p.InitialContactedAt)
	p.FollowUpContactedAt = cloneTime(p.FollowUpContactedAt)
	p.ConfirmedAt = cloneTime(p.ConfirmedAt)
	p.OptedOutAt = cloneTime(p.OptedOutAt)
	p.SlotExpiresAt = cloneTime(p.SlotExpiresAt)
	if p.ReplacesProspectID != nil {
		id := *p.ReplacesProspectID
		p.ReplacesProspectID = &id
	}
	return p
}

func cloneSlot(s domain.Slot) domain.Slot {
	s.ExpiresAt = cloneTime(s.ExpiresAt)
	if s.HolderID != nil {
		id := *s.HolderID
		s.HolderID = &id
	}
	return s
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
