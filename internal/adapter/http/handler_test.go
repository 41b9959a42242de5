package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
	"mesa-outreach/internal/core/port/mocks"
)

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) (*mocks.MockOutreachUseCase, *mocks.MockSweepRunner, http.Handler) {
	t.Helper()
	svc := mocks.NewMockOutreachUseCase(t)
	sweeps := mocks.NewMockSweepRunner(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, sweeps, NewHandler(svc, sweeps, logger).Router()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestCreateProspect(t *testing.T) {
	svc, _, h := newTestHandler(t)
	req := port.NewProspect{Name: "Corner Cafe", Email: "cafe@example.com", City: "Leeds", Country: "UK", Category: "cafe"}
	svc.EXPECT().Discover(mock.Anything, req).
		Return(&domain.Prospect{ID: 5, Name: req.Name, Email: req.Email, City: req.City, Country: req.Country, Category: req.Category, Stage: domain.StagePending}, nil).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/prospects", req)
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode[prospectResponse](t, rec)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "pending", resp.Stage)
}

func TestCreateProspectValidation(t *testing.T) {
	svc, _, h := newTestHandler(t)
	svc.EXPECT().Discover(mock.Anything, mock.Anything).
		Return(nil, errors.Join(port.ErrInvalidProspect, errors.New("missing email"))).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/prospects", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prospects", bytes.NewBufferString("{"))
	bad := httptest.NewRecorder()
	h.ServeHTTP(bad, req)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestGetProspect(t *testing.T) {
	svc, _, h := newTestHandler(t)
	holder := int64(9)
	svc.EXPECT().Prospect(mock.Anything, int64(9)).Return(&port.ProspectDetails{
		Prospect: domain.Prospect{ID: 9, Stage: domain.StageInitialSent, SlotAssigned: true},
		Slot:     &domain.Slot{LocationKey: "uk/leeds", HolderID: &holder},
		Messages: []domain.MessageRecord{{ID: uuid.New(), ProspectID: 9, Kind: domain.MessageInitial, Outcome: domain.OutcomeDelivered, Attempts: 1, CreatedAt: t0}},
	}, nil).Once()
	svc.EXPECT().Prospect(mock.Anything, int64(10)).Return(nil, port.ErrNotFound).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/prospects/9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[prospectDetailsResponse](t, rec)
	assert.Equal(t, "initial_sent", resp.Prospect.Stage)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "uk/leeds", resp.Slot.Location)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "delivered", resp.Messages[0].Outcome)

	rec = do(t, h, http.MethodGet, "/api/v1/prospects/10", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/prospects/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignals(t *testing.T) {
	svc, _, h := newTestHandler(t)
	svc.EXPECT().Confirm(mock.Anything, int64(1)).Return(&domain.Prospect{ID: 1, Stage: domain.StageConfirmed, Confirmed: true}, nil).Once()
	svc.EXPECT().OptOut(mock.Anything, int64(1)).Return(nil, port.ErrTerminalProspect).Once()
	svc.EXPECT().OptOut(mock.Anything, int64(2)).Return(&domain.Prospect{ID: 2, Stage: domain.StageOptedOut, OptedOut: true}, nil).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/prospects/1/confirm", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[prospectResponse](t, rec).Confirmed)

	rec = do(t, h, http.MethodPost, "/api/v1/prospects/1/opt-out", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode[errorResponse](t, rec).Error, "terminal")

	rec = do(t, h, http.MethodPost, "/api/v1/prospects/2/opt-out", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "opted_out", decode[prospectResponse](t, rec).Stage)
}

func TestAssignSlot(t *testing.T) {
	svc, _, h := newTestHandler(t)
	holder := int64(4)
	expires := t0.Add(7 * 24 * time.Hour)
	svc.EXPECT().AssignSlot(mock.Anything, int64(4)).Return(&domain.Slot{LocationKey: "uk/leeds", City: "Leeds", Country: "UK", HolderID: &holder, ExpiresAt: &expires}, nil).Once()
	svc.EXPECT().AssignSlot(mock.Anything, int64(5)).Return(nil, port.ErrSlotOccupied).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/prospects/4/slot", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[slotResponse](t, rec)
	assert.Equal(t, holder, *resp.HolderID)
	assert.True(t, expires.Equal(*resp.ExpiresAt))

	rec = do(t, h, http.MethodPost, "/api/v1/prospects/5/slot", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStatus(t *testing.T) {
	svc, _, h := newTestHandler(t)
	svc.EXPECT().Status(mock.Anything).Return(&port.Status{
		Stages:      map[domain.Stage]int64{domain.StagePending: 3},
		LastSweepAt: &t0,
		LastSweep:   &port.SweepReport{StartedAt: t0, Contacted: 2},
		Unresolved:  1,
	}, nil).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[statusResponse](t, rec)
	assert.Equal(t, int64(3), resp.Stages["pending"])
	assert.Contains(t, resp.Stages, "expired")
	assert.Equal(t, 2, resp.LastSweep.Contacted)
	assert.Equal(t, int64(1), resp.Unresolved)
	assert.NotNil(t, resp.Slots)
}

func TestStatusInternalError(t *testing.T) {
	svc, _, h := newTestHandler(t)
	svc.EXPECT().Status(mock.Anything).Return(nil, errors.New("db down")).Once()

	rec := do(t, h, http.MethodGet, "/api/v1/status", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestSweep(t *testing.T) {
	_, sweeps, h := newTestHandler(t)
	sweeps.EXPECT().RunOnce(mock.Anything).Return(&port.SweepReport{Contacted: 4}, nil).Once()
	sweeps.EXPECT().RunOnce(mock.Anything).Return(nil, port.ErrSweepInProgress).Once()
	sweeps.EXPECT().RunOnce(mock.Anything).Return(&port.SweepReport{Contacted: 1, Aborted: true}, fmt.Errorf("sweep initial stage: %w", context.DeadlineExceeded)).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/sweeps", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decode[sweepReportResponse](t, rec).Contacted)

	rec = do(t, h, http.MethodPost, "/api/v1/sweeps", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/sweeps", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[sweepReportResponse](t, rec).Aborted)
}

func TestSweepStoreFailure(t *testing.T) {
	_, sweeps, h := newTestHandler(t)
	sweeps.EXPECT().RunOnce(mock.Anything).
		Return(&port.SweepReport{StartedAt: t0}, fmt.Errorf("sweep expiry stage: %w", errors.New("connection refused"))).Once()

	rec := do(t, h, http.MethodPost, "/api/v1/sweeps", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
