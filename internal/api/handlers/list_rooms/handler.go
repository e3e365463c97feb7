package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

type Handler struct {
	service    RoomService
	translator handlers.Translator
	logger     Logger
}

func NewHandler(service RoomService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
		logger:     logger,
	}
}

// Handle GET /api/v1/admin/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/rooms - Failed to list rooms: error=%v", err)
		handlers.RespondDomainError(w, r, h.translator, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
