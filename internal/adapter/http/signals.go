package httpadapter

import (
	"context"
	"net/http"

	"mesa-outreach/internal/core/domain"
)

func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	h.handleSignal(w, r, "confirm", h.svc.Confirm)
}

func (h *Handler) handleOptOut(w http.ResponseWriter, r *http.Request) {
	h.handleSignal(w, r, "opt-out", h.svc.OptOut)
}

// handleSignal applies an inbound signal and returns the updated prospect.
// Repeating a signal returns 200 with the unchanged prospect.
func (h *Handler) handleSignal(w http.ResponseWriter, r *http.Request, op string, apply func(context.Context, int64) (*domain.Prospect, error)) {
	id, ok := prospectID(r)
	if !ok {
		http.Error(w, "invalid prospect id", http.StatusBadRequest)
		return
	}
	p, err := apply(r.Context(), id)
	if err != nil {
		h.writeError(w, op, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newProspectResponse(*p))
}
