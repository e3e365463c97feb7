package create_room

import (
	"net/http"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/rooms/models"
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

// Handle POST /api/v1/admin/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /admin/rooms - Failed to create room: room_number=%s, error=%v", req.RoomNumber, err)
		} else {
			h.logger.Warn("POST /admin/rooms - Room rejected: room_number=%s, error=%v", req.RoomNumber, err)
		}
		return
	}

	h.logger.Info("POST /admin/rooms - Room created: id=%d, room_number=%s", result.ID, result.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
