package list_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

type Handler struct {
	service    BookingService
	translator handlers.Translator
	logger     Logger
}

func NewHandler(service BookingService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
		logger:     logger,
	}
}

// Handle GET /api/v1/admin/bookings/{dateType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateType := mux.Vars(r)["dateType"]
	lang := handlers.LanguageFromContext(r.Context())

	result, err := h.service.ListBookings(r.Context(), dateType, lang)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /admin/bookings/{dateType} - Failed to list bookings: date_type=%s, error=%v", dateType, err)
		} else {
			h.logger.Warn("GET /admin/bookings/{dateType} - Rejected: date_type=%s, error=%v", dateType, err)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{dateType} - Bookings retrieved: date_type=%s, count=%d", dateType, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
