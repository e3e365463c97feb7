package handlers

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

type languageKey struct{}

// WithLanguage сохраняет язык запроса в контексте
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// LanguageFromContext язык запроса, по умолчанию domain.DefaultLanguage
func LanguageFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(languageKey{}).(string); ok && lang != "" {
		return lang
	}
	return domain.DefaultLanguage
}
