package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

const (
	keyInternalError  = "internal-error"
	keyInvalidRequest = "invalid-request"
)

// Translator переводит ключи сообщений
type Translator interface {
	Translate(lang, key string, args map[string]string) string
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Key   string `json:"key,omitempty"`
}

// MessageResponse тело ответа с локализованным сообщением
type MessageResponse struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

// DecodeJSON читает тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ответ с текстом ошибки
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest 400 с переведенным "invalid-request"
func RespondBadRequest(w http.ResponseWriter, r *http.Request, t Translator) {
	lang := LanguageFromContext(r.Context())
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: t.Translate(lang, keyInvalidRequest, nil),
		Key:   keyInvalidRequest,
	})
}

// RespondInternalError 500 с общим сообщением, подробности только в логах
func RespondInternalError(w http.ResponseWriter, r *http.Request, t Translator) {
	lang := LanguageFromContext(r.Context())
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: t.Translate(lang, keyInternalError, nil),
		Key:   keyInternalError,
	})
}

// RespondMessage ответ с переведенным сообщением
func RespondMessage(w http.ResponseWriter, r *http.Request, t Translator, status int, key string, args map[string]string) {
	lang := LanguageFromContext(r.Context())
	RespondJSON(w, status, MessageResponse{
		Message: t.Translate(lang, key, args),
		Key:     key,
	})
}

// StatusFromError HTTP статус для ошибки usecase или сервиса
func StatusFromError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError переводит бизнес-ошибку в ответ и возвращает статус
// Ошибки целостности и неклассифицированные ошибки отдаются общим сообщением
func RespondDomainError(w http.ResponseWriter, r *http.Request, t Translator, err error) int {
	status := StatusFromError(err)
	de, ok := domain.AsError(err)
	if !ok || status == http.StatusInternalServerError {
		RespondInternalError(w, r, t)
		return http.StatusInternalServerError
	}

	lang := LanguageFromContext(r.Context())
	RespondJSON(w, status, ErrorResponse{
		Error: t.Translate(lang, de.Key, nil),
		Key:   de.Key,
	})
	return status
}
