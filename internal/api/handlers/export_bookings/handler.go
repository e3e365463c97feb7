package export_bookings

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

// Handle GET /api/v1/admin/bookings/{dateType}/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateType := mux.Vars(r)["dateType"]
	lang := handlers.LanguageFromContext(r.Context())

	result, err := h.service.ExportBookings(r.Context(), dateType, lang)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /admin/bookings/{dateType}/export - Failed to export: date_type=%s, error=%v", dateType, err)
		} else {
			h.logger.Warn("GET /admin/bookings/{dateType}/export - Rejected: date_type=%s, error=%v", dateType, err)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /admin/bookings/{dateType}/export - Failed to write response: date_type=%s, error=%v", dateType, err)
		return
	}

	h.logger.Info("GET /admin/bookings/{dateType}/export - Exported: date_type=%s, file=%s", dateType, result.Filename)
}
