package domain

import "time"

// Slot is an exclusive, location-scoped advertising placement. A slot is
// either held by a paying prospect, held provisionally until ExpiresAt, or
// vacant.
type Slot struct {
	LocationKey string
	City        string
	Country     string
	HolderID    *int64
	IsPaid      bool
	ExpiresAt   *time.Time // provisional holders only
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location returns the location the slot is scoped to.
func (s Slot) Location() Location {
	return Location{City: s.City, Country: s.Country}
}

// Vacant reports whether nobody holds the slot.
func (s Slot) Vacant() bool {
	return s.HolderID == nil
}

// HeldBy reports whether prospect id holds the slot.
func (s Slot) HeldBy(id int64) bool {
	return s.HolderID != nil && *s.HolderID == id
}

// Expired reports whether a provisional hold has lapsed at now.
func (s Slot) Expired(now time.Time) bool {
	return !s.IsPaid && s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// Active reports whether the slot has a holder that has not expired.
func (s Slot) Active(now time.Time) bool {
	return !s.Vacant() && !s.Expired(now)
}
