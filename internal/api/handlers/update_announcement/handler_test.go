package update_announcement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/announcements"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/announcements/models"
)

type fakeService struct {
	position, lang string
	req            *models.UpdateAnnouncementRequest
	err            error
}

func (f *fakeService) Update(_ context.Context, position, lang string, req *models.UpdateAnnouncementRequest) (*models.AnnouncementResponse, error) {
	f.position, f.lang, f.req = position, lang, req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AnnouncementResponse{Position: position, Lang: lang, Content: req.Content}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/admin/announcements/{position}/{lang}", h.Handle).Methods(http.MethodPut)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, target, strings.NewReader(body)))
	return w
}

func TestHandler_Updates(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, i18n.MustNew(), nopLogger{})

	w := serve(h, "/admin/announcements/choir/en", `{"content":"Bring your scores."}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "choir", svc.position)
	assert.Equal(t, "en", svc.lang)

	var body models.AnnouncementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bring your scores.", body.Content)
}

func TestHandler_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		want    int
		wantKey string
	}{
		{"malformed body", `{"content":`, nil, http.StatusBadRequest, "invalid-request"},
		{"unknown field", `{"text":"x"}`, nil, http.StatusBadRequest, "invalid-request"},
		{"unknown position", `{"content":"x"}`, announcements.ErrInvalidPosition, http.StatusBadRequest, "validation-announcement-position"},
		{"storage failure", `{"content":"x"}`, announcements.ErrInternal, http.StatusInternalServerError, "internal-error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, i18n.MustNew(), nopLogger{})

			w := serve(h, "/admin/announcements/brass/de", tt.body)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantKey)
		})
	}
}
