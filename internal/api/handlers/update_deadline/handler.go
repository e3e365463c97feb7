package update_deadline

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes/models"
)

type Handler struct {
	service    DateTypeService
	translator handlers.Translator
	logger     Logger
}

func NewHandler(service DateTypeService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
		logger:     logger,
	}
}

// Handle PUT /api/v1/admin/date-types/{dateType}/deadline
// {"deadline": null} снимает дедлайн
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateType := mux.Vars(r)["dateType"]

	var req models.UpdateDeadlineRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/date-types/{dateType}/deadline - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	result, err := h.service.UpdateDeadline(r.Context(), dateType, &req)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("PUT /admin/date-types/{dateType}/deadline - Failed to update deadline: date_type=%s, error=%v",
				dateType, err)
		} else {
			h.logger.Warn("PUT /admin/date-types/{dateType}/deadline - Update rejected: date_type=%s, error=%v", dateType, err)
		}
		return
	}

	h.logger.Info("PUT /admin/date-types/{dateType}/deadline - Deadline updated: date_type=%s", dateType)
	handlers.RespondJSON(w, http.StatusOK, result)
}
