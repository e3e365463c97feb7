package unsubscribe_waiting_list

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
)

type fakeService struct {
	token string
	err   error
}

func (f *fakeService) Unsubscribe(_ context.Context, token string) error {
	f.token = token
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/waiting-list/unsubscribe/{token}", h.Handle).Methods(http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/waiting-list/unsubscribe/abc", nil))
	return w
}

func TestHandler(t *testing.T) {
	svc := &fakeService{}
	w := serve(NewHandler(svc, i18n.MustNew(), nopLogger{}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", svc.token)
	assert.Contains(t, w.Body.String(), keyUnsubscribed)
}

func TestHandler_StoreFailure(t *testing.T) {
	svc := &fakeService{err: errors.New("db down")}
	w := serve(NewHandler(svc, i18n.MustNew(), nopLogger{}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
