package httpadapter

import (
	"time"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

type prospectResponse struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	City                string     `json:"city"`
	Country             string     `json:"country"`
	Category            string     `json:"category"`
	Stage               string     `json:"stage"`
	InitialContactedAt  *time.Time `json:"initial_contacted_at,omitempty"`
	FollowUpContactedAt *time.Time `json:"follow_up_contacted_at,omitempty"`
	Confirmed           bool       `json:"confirmed"`
	ConfirmedAt         *time.Time `json:"confirmed_at,omitempty"`
	OptedOut            bool       `json:"opted_out"`
	OptedOutAt          *time.Time `json:"opted_out_at,omitempty"`
	ReplacementOffered  bool       `json:"replacement_offered"`
	SlotAssigned        bool       `json:"slot_assigned"`
	SlotExpiresAt       *time.Time `json:"slot_expires_at,omitempty"`
	ReplacesProspectID  *int64     `json:"replaces_prospect_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func newProspectResponse(p domain.Prospect) prospectResponse {
	return prospectResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Email:               p.Email,
		City:                p.City,
		Country:             p.Country,
		Category:            p.Category,
		Stage:               string(p.Stage),
		InitialContactedAt:  p.InitialContactedAt,
		FollowUpContactedAt: p.FollowUpContactedAt,
		Confirmed:           p.Confirmed,
		ConfirmedAt:         p.ConfirmedAt,
		OptedOut:            p.OptedOut,
		OptedOutAt:          p.OptedOutAt,
		ReplacementOffered:  p.ReplacementOffered,
		SlotAssigned:        p.SlotAssigned,
		SlotExpiresAt:       p.SlotExpiresAt,
		ReplacesProspectID:  p.ReplacesProspectID,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

type slotResponse struct {
	Location  string     `json:"location"`
	City      string     `json:"city"`
	Country   string     `json:"country"`
	HolderID  *int64     `json:"holder_id,omitempty"`
	IsPaid    bool       `json:"is_paid"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func newSlotResponse(s domain.Slot) slotResponse {
	return slotResponse{
		Location:  s.LocationKey,
		City:      s.City,
		Country:   s.Country,
		HolderID:  s.HolderID,
		IsPaid:    s.IsPaid,
		ExpiresAt: s.ExpiresAt,
	}
}

type messageResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Outcome   string    `json:"outcome"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type prospectDetailsResponse struct {
	Prospect prospectResponse  `json:"prospect"`
	Slot     *slotResponse     `json:"slot,omitempty"`
	Messages []messageResponse `json:"messages"`
}

func newProspectDetailsResponse(d port.ProspectDetails) prospectDetailsResponse {
	resp := prospectDetailsResponse{
		Prospect: newProspectResponse(d.Prospect),
		Messages: make([]messageResponse, 0, len(d.Messages)),
	}
	if d.Slot != nil {
		s := newSlotResponse(*d.Slot)
		resp.Slot = &s
	}
	for _, m := range d.Messages {
		resp.Messages = append(resp.Messages, messageResponse{
			ID:        m.ID.String(),
			Kind:      string(m.Kind),
			Outcome:   string(m.Outcome),
			Attempts:  m.Attempts,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return resp
}

type sweepReportResponse struct {
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
	Contacted        int       `json:"contacted"`
	FollowedUp       int       `json:"followed_up"`
	Expired          int       `json:"expired"`
	SlotsExpired     int       `json:"slots_expired"`
	Replaced         int       `json:"replaced"`
	Unresolved       int       `json:"unresolved"`
	Conflicts        int       `json:"conflicts"`
	DeliveryFailures int       `json:"delivery_failures"`
	Violations       int       `json:"violations"`
	Failures         int       `json:"failures"`
	Aborted          bool      `json:"aborted"`
}

func newSweepReportResponse(r port.SweepReport) sweepReportResponse {
	return sweepReportResponse{
		StartedAt:        r.StartedAt,
		FinishedAt:       r.FinishedAt,
		Contacted:        r.Contacted,
		FollowedUp:       r.FollowedUp,
		Expired:          r.Expired,
		SlotsExpired:     r.SlotsExpired,
		Replaced:         r.Replaced,
		Unresolved:       r.Unresolved,
		Conflicts:        r.Conflicts,
		DeliveryFailures: r.DeliveryFailures,
		Violations:       r.Violations,
		Failures:         r.Failures,
		Aborted:          r.Aborted,
	}
}

type statusResponse struct {
	Stages      map[string]int64     `json:"stages"`
	Slots       []slotResponse       `json:"slots"`
	LastSweepAt *time.Time           `json:"last_sweep_at,omitempty"`
	LastSweep   *sweepReportResponse `json:"last_sweep,omitempty"`
	Unresolved  int64                `json:"unresolved"`
	Violations  int64                `json:"violations"`
}

func newStatusResponse(st port.Status) statusResponse {
	resp := statusResponse{
		Stages:      make(map[string]int64, len(domain.Stages)),
		Slots:       make([]slotResponse, 0, len(st.Slots)),
		LastSweepAt: st.LastSweepAt,
		Unresolved:  st.Unresolved,
		Violations:  st.Violations,
	}
	// every stage is reported, zero included
	for _, s := range domain.Stages {
		resp.Stages[string(s)] = st.Stages[s]
	}
	for _, s := range st.Slots {
		resp.Slots = append(resp.Slots, newSlotResponse(s))
	}
	if st.LastSweep != nil {
		r := newSweepReportResponse(*st.LastSweep)
		resp.LastSweep = &r
	}
	return resp
}
