package confirm_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	confirmSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/confirm_slots"
)

type fakeUseCase struct {
	got *confirmSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmSlots.Request) (*confirmSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	created := make([]*domain.Slot, 0, len(req.Candidates))
	for i, c := range req.Candidates {
		created = append(created, &domain.Slot{ID: int64(i + 1), From: c.From, To: c.To, RoomNumber: c.RoomNumber, DateType: c.DateType})
	}
	return &confirmSlots.Response{Created: created}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{
	"candidates": [
		{"id": null, "from": "2026-11-02T18:00:00Z", "to": "2026-11-02T18:20:00Z", "roomNumber": "A1", "dateType": "choir"}
	],
	"selected": [true]
}`

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, i18n.MustNew(), nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/admin/dates/confirm", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, uc.got.Candidates, 1)
	assert.Nil(t, uc.got.Candidates[0].ID)
	assert.Equal(t, time.Date(2026, 11, 2, 18, 0, 0, 0, time.UTC), uc.got.Candidates[0].From.UTC())
	assert.Equal(t, []bool{true}, uc.got.Selected)

	var resp ConfirmSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.Contains(t, resp.Message, "1")
}

func TestHandler_TamperedCandidates(t *testing.T) {
	uc := &fakeUseCase{err: confirmSlots.ErrInvalidBufferedState}
	h := NewHandler(uc, i18n.MustNew(), nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/admin/dates/confirm", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
