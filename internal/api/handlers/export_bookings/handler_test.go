package export_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/bookings"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/bookings/models"
)

type fakeService struct {
	resp *models.ExportResponse
	err  error
}

func (f fakeService) ExportBookings(context.Context, string, string) (*models.ExportResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/admin/bookings/{dateType}/export", h.Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/bookings/choir/export", nil))
	return w
}

func TestHandler_Attachment(t *testing.T) {
	content := []byte("PK\x03\x04xlsx")
	h := NewHandler(fakeService{resp: &models.ExportResponse{Filename: "bookings-choir-2026-10-14.xlsx", Content: content}},
		i18n.MustNew(), nopLogger{})

	w := serve(h)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=bookings-choir-2026-10-14.xlsx`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestHandler_UnknownDateType(t *testing.T) {
	h := NewHandler(fakeService{err: bookings.ErrDateTypeNotFound}, i18n.MustNew(), nopLogger{})

	w := serve(h)

	assert.Equal(t, http.StatusGone, w.Code)
}
