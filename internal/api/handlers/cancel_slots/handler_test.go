package cancel_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	cancelSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/cancel_slots"
)

type fakeUseCase struct {
	got  *cancelSlots.Request
	resp *cancelSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *cancelSlots.Request) (*cancelSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_ReportsFailedMails(t *testing.T) {
	uc := &fakeUseCase{resp: &cancelSlots.Response{
		DeletedSlots:      2,
		CancelledBookings: 1,
		FailedMails:       []cancelSlots.FailedMail{{BookingID: 4, Email: "anna@example.org"}},
		NotifiedDateTypes: []string{"choir"},
	}}
	h := NewHandler(uc, i18n.MustNew(), nopLogger{})

	w := httptest.NewRecorder()
	body := `{"slotIds":[1,2],"explanations":{"de":"Krankheit","en":"Illness"}}`
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/admin/dates/cancel", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{1, 2}, uc.got.SlotIDs)
	assert.Equal(t, "Illness", uc.got.Explanations["en"])

	var resp CancelSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.DeletedSlots)
	require.Len(t, resp.FailedMails, 1)
	assert.Equal(t, "anna@example.org", resp.FailedMails[0].Email)
	assert.Equal(t, keyDatesCancelled, resp.Key)
}

func TestHandler_NothingSelected(t *testing.T) {
	uc := &fakeUseCase{err: cancelSlots.ErrNothingSelected}
	h := NewHandler(uc, i18n.MustNew(), nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/admin/dates/cancel", strings.NewReader(`{"slotIds":[]}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation-select")
}
