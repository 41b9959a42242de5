package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mesa-outreach/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: operators register prospects, deliver confirm and opt-out signals,
// inspect the engine and trigger sweeps. Routes are registered on a
// chi.Router.
type Handler struct {
	svc    port.OutreachUseCase
	sweeps port.SweepRunner
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Manual sweeps go
// through sweeps so they share the scheduler's in-progress guard.
func NewHandler(svc port.OutreachUseCase, sweeps port.SweepRunner, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, sweeps: sweeps, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/prospects", h.handleCreateProspect)
		r.Route("/prospects/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetProspect)
			r.Post("/confirm", h.handleConfirm)
			r.Post("/opt-out", h.handleOptOut)
			r.Post("/slot", h.handleAssignSlot)
		})
		r.Get("/status", h.handleStatus)
		r.Post("/sweeps", h.handleSweep)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func prospectID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto status codes. Unexpected errors are
// logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrInvalidProspect):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrTerminalProspect),
		errors.Is(err, port.ErrSlotOccupied),
		errors.Is(err, port.ErrSweepInProgress),
		errors.Is(err, port.ErrConflict):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
