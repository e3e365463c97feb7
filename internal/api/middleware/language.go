package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RehearsalBooking/internal/i18n"
)

// LanguageCookie имя cookie с выбранным языком
const LanguageCookie = "language"

// Language определяет язык запроса и кладет его в контекст
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cookie string
		if c, err := r.Cookie(LanguageCookie); err == nil {
			cookie = c.Value
		}

		lang := i18n.MatchLanguage(cookie, r.Header.Get("Accept-Language"))
		w.Header().Set("Content-Language", lang)
		next.ServeHTTP(w, r.WithContext(handlers.WithLanguage(r.Context(), lang)))
	})
}
