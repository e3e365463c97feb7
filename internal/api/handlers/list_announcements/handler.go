package list_announcements

import (
	"net/http"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

type Handler struct {
	service    AnnouncementService
	translator handlers.Translator
	logger     Logger
}

func NewHandler(service AnnouncementService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
		logger:     logger,
	}
}

// Handle GET /api/v1/admin/announcements
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/announcements - Failed to list announcements: error=%v", err)
		handlers.RespondDomainError(w, r, h.translator, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
