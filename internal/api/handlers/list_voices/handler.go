package list_voices

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

type Handler struct {
	service    VoiceService
	translator handlers.Translator
	logger     Logger
}

func NewHandler(service VoiceService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
		logger:     logger,
	}
}

// Handle GET /api/v1/dates/{dateType}/voices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateType := mux.Vars(r)["dateType"]
	lang := handlers.LanguageFromContext(r.Context())

	result, err := h.service.ListVoices(r.Context(), dateType, lang)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /dates/{dateType}/voices - Failed to list voices: date_type=%s, error=%v", dateType, err)
		} else {
			h.logger.Warn("GET /dates/{dateType}/voices - Rejected: date_type=%s, error=%v", dateType, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
