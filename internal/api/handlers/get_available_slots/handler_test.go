package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	getAvailableSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

type fakeAnnouncements map[string]string

func (f fakeAnnouncements) Content(_ context.Context, position, lang string) string {
	return f[position+"/"+lang]
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/dates/{dateType}", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandler_ListsSlots(t *testing.T) {
	from := time.Date(2026, 11, 2, 18, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		DateType: &domain.DateType{Value: domain.DateTypeChoir, DisplayName: "Chor"},
		Slots: []*domain.Slot{
			{ID: 1, From: from, To: from.Add(20 * time.Minute), RoomNumber: "A1", DateType: domain.DateTypeChoir},
			{ID: 2, From: from.Add(20 * time.Minute), To: from.Add(40 * time.Minute), RoomNumber: "A1", DateType: domain.DateTypeChoir},
		},
		Entry: &domain.WaitingListEntry{Email: "wl@example.org", Token: "tok"},
	}}
	announcements := fakeAnnouncements{domain.DateTypeChoir + "/de": "Noten mitbringen"}
	h := NewHandler(uc, announcements, i18n.MustNew(), nopLogger{})

	w := serve(h, "/dates/choir?token=tok")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.DateTypeChoir, uc.got.DateType)
	assert.Equal(t, "tok", uc.got.Token)

	var body SlotListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Chor", body.DisplayName)
	assert.Equal(t, "Noten mitbringen", body.Announcement)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, int64(1), body.Slots[0].ID)
	assert.Equal(t, "wl@example.org", body.WaitingListEmail)
}

func TestHandler_UnknownDateType(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrDateTypeNotFound}
	h := NewHandler(uc, fakeAnnouncements{}, i18n.MustNew(), nopLogger{})

	w := serve(h, "/dates/unknown")

	assert.Equal(t, http.StatusGone, w.Code)
	assert.Contains(t, w.Body.String(), "date-type-not-found")
}
