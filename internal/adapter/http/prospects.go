package httpadapter

import (
	"encoding/json"
	"net/http"

	"mesa-outreach/internal/core/port"
)

// handleCreateProspect registers a discovered prospect. The body is a
// port.NewProspect; missing required fields produce HTTP 400.
func (h *Handler) handleCreateProspect(w http.ResponseWriter, r *http.Request) {
	var req port.NewProspect
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	p, err := h.svc.Discover(r.Context(), req)
	if err != nil {
		h.writeError(w, "discover prospect", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newProspectResponse(*p))
}

// handleGetProspect returns a prospect with its slot and message history.
func (h *Handler) handleGetProspect(w http.ResponseWriter, r *http.Request) {
	id, ok := prospectID(r)
	if !ok {
		http.Error(w, "invalid prospect id", http.StatusBadRequest)
		return
	}
	details, err := h.svc.Prospect(r.Context(), id)
	if err != nil {
		h.writeError(w, "get prospect", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newProspectDetailsResponse(*details))
}

// handleAssignSlot gives the prospect the slot of its home location.
func (h *Handler) handleAssignSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := prospectID(r)
	if !ok {
		http.Error(w, "invalid prospect id", http.StatusBadRequest)
		return
	}
	slot, err := h.svc.AssignSlot(r.Context(), id)
	if err != nil {
		h.writeError(w, "assign slot", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newSlotResponse(*slot))
}
