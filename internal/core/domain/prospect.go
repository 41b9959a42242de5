package domain

import (
	"strings"
	"time"
)

// Stage is the position of a prospect in the outreach funnel.
type Stage string

const (
	StagePending      Stage = "pending"
	StageInitialSent  Stage = "initial_sent"
	StageFollowUpSent Stage = "follow_up_sent"
	StageConfirmed    Stage = "confirmed"
	StageOptedOut     Stage = "opted_out"
	StageExpired      Stage = "expired"
)

// Stages lists every stage in funnel order.
var Stages = []Stage{
	StagePending,
	StageInitialSent,
	StageFollowUpSent,
	StageConfirmed,
	StageOptedOut,
	StageExpired,
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	for _, v := range Stages {
		if v == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no automatic transition leaves s.
func (s Stage) Terminal() bool {
	return s == StageConfirmed || s == StageOptedOut || s == StageExpired
}

// Prospect is a candidate advertiser moving through the outreach funnel.
// Prospects are never deleted; they end in a terminal stage.
type Prospect struct {
	ID       int64
	Name     string
	Email    string
	City     string
	Country  string
	Category string
	Stage    Stage

	InitialContactedAt  *time.Time
	FollowUpContactedAt *time.Time

	Confirmed   bool
	ConfirmedAt *time.Time
	OptedOut    bool
	OptedOutAt  *time.Time

	ReplacementOffered bool
	SlotAssigned       bool
	SlotExpiresAt      *time.Time

	// ReplacesProspectID is set once this prospect has been claimed as the
	// replacement for another, unresponsive one.
	ReplacesProspectID *int64

	// Version is the optimistic concurrency token checked by stores on
	// every update.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Frozen reports whether an external signal has ended automatic progress.
func (p Prospect) Frozen() bool {
	return p.Confirmed || p.OptedOut
}

// NeverContacted reports whether no outreach message was ever sent.
func (p Prospect) NeverContacted() bool {
	return p.InitialContactedAt == nil
}

// Location returns the prospect's home location.
func (p Prospect) Location() Location {
	return Location{City: p.City, Country: p.Country}
}

// Location is a city within a country. Slots are scoped to a location.
type Location struct {
	City    string
	Country string
}

// Key returns the normalised slot key for the location, e.g. "uk/leeds".
func (l Location) Key() string {
	return NormalizeName(l.Country) + "/" + NormalizeName(l.City)
}

// NormalizeName lowercases a city or country name and collapses its
// whitespace. Two names match when their normalised forms are equal.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
