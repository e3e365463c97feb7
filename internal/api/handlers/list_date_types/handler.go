package list_date_types

import (
	"net/http"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

type Handler struct {
	service       DateTypeService
	announcements AnnouncementService
	translator    handlers.Translator
	logger        Logger
}

func NewHandler(service DateTypeService, announcements AnnouncementService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		service:       service,
		announcements: announcements,
		translator:    translator,
		logger:        logger,
	}
}

// Handle GET /api/v1/date-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lang := handlers.LanguageFromContext(r.Context())

	result, err := h.service.ListEnabled(r.Context(), lang)
	if err != nil {
		h.logger.Error("GET /date-types - Failed to list date types: lang=%s, error=%v", lang, err)
		handlers.RespondDomainError(w, r, h.translator, err)
		return
	}

	result.Announcement = h.announcements.Content(r.Context(), domain.AnnouncementGeneral, lang)
	handlers.RespondJSON(w, http.StatusOK, result)
}
