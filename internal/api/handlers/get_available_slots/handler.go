package get_available_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase       GetAvailableSlotsUseCase
	announcements AnnouncementService
	translator    handlers.Translator
	logger        Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, announcements AnnouncementService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		useCase:       useCase,
		announcements: announcements,
		translator:    translator,
		logger:        logger,
	}
}

// Handle GET /api/v1/dates/{dateType}?token=
// token опционален: запись листа ожидания, вошедшая до дедлайна, видит слоты после него
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateType := mux.Vars(r)["dateType"]

	req := &getAvailableSlots.Request{
		DateType: dateType,
		Token:    r.URL.Query().Get("token"),
		Lang:     handlers.LanguageFromContext(r.Context()),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /dates/{dateType} - Failed to get available slots: date_type=%s, error=%v", dateType, err)
		} else {
			h.logger.Warn("GET /dates/{dateType} - Rejected: date_type=%s, error=%v", dateType, err)
		}
		return
	}

	h.logger.Info("GET /dates/{dateType} - Available slots retrieved: date_type=%s, count=%d", dateType, len(result.Slots))
	resp := FromUseCaseResponse(result)
	resp.Announcement = h.announcements.Content(r.Context(), result.DateType.Value, req.Lang)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
