package update_announcement

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/announcements/models"
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

// Handle PUT /api/v1/admin/announcements/{position}/{lang}
// {"content": ""} скрывает объявление
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	position, lang := vars["position"], vars["lang"]

	var req models.UpdateAnnouncementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/announcements/{position}/{lang} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	result, err := h.service.Update(r.Context(), position, lang, &req)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("PUT /admin/announcements/{position}/{lang} - Failed to update announcement: position=%s, lang=%s, error=%v",
				position, lang, err)
		} else {
			h.logger.Warn("PUT /admin/announcements/{position}/{lang} - Update rejected: position=%s, lang=%s, error=%v",
				position, lang, err)
		}
		return
	}

	h.logger.Info("PUT /admin/announcements/{position}/{lang} - Announcement updated: position=%s, lang=%s", position, lang)
	handlers.RespondJSON(w, http.StatusOK, result)
}
