package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleStatus returns stage counts, held slots, the last sweep report and
// the unresolved and violation counters.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Status(r.Context())
	if err != nil {
		h.writeError(w, "status", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newStatusResponse(*st))
}

// handleSweep runs a sweep now. A sweep that is already running yields
// HTTP 409. A sweep cut short by its deadline still returns its report;
// any other failure is an error response.
func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.sweeps.RunOnce(r.Context())
	if err != nil && (report == nil || !report.Aborted) {
		h.writeError(w, "sweep", err)
		return
	}
	if err != nil {
		h.logger.Warn("manual sweep incomplete", slog.Any("error", err))
	}
	h.writeJSON(w, http.StatusOK, newSweepReportResponse(*report))
}
