package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewError(domain.KindValidation, "validation-email"), http.StatusBadRequest},
		{"conflict", domain.NewError(domain.KindConflict, "date-no-longer-available"), http.StatusConflict},
		{"gone", domain.ErrDateGone, http.StatusGone},
		{"integrity", domain.NewError(domain.KindIntegrity, "invalid-buffered-state"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("outer: %w", domain.ErrDateGone), http.StatusGone},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestRespondDomainError_TranslatesKey(t *testing.T) {
	catalog := i18n.MustNew()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(WithLanguage(r.Context(), domain.LangEnglish))
	w := httptest.NewRecorder()

	status := RespondDomainError(w, r, catalog, domain.ErrDateGone)

	assert.Equal(t, http.StatusGone, status)
	assert.Equal(t, http.StatusGone, w.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "date-gone", body.Key)
	assert.Equal(t, catalog.Translate(domain.LangEnglish, "date-gone", nil), body.Error)
}

func TestRespondDomainError_HidesIntegrityDetails(t *testing.T) {
	catalog := i18n.MustNew()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	status := RespondDomainError(w, r, catalog, domain.NewError(domain.KindIntegrity, "voice-translation-missing"))

	assert.Equal(t, http.StatusInternalServerError, status)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, keyInternalError, body.Key)
	assert.NotContains(t, body.Error, "voice")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Email string `json:"email"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.de"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "a@b.de", dst.Email)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestLanguageFromContext_Default(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, domain.DefaultLanguage, LanguageFromContext(r.Context()))
}
