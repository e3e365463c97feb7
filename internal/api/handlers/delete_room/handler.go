package delete_room

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

const keyRoomDeleted = "room-deleted"

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

// Handle DELETE /api/v1/admin/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/rooms/{roomId} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("DELETE /admin/rooms/{roomId} - Failed to delete room: id=%d, error=%v", roomID, err)
		} else {
			h.logger.Warn("DELETE /admin/rooms/{roomId} - Deletion rejected: id=%d, error=%v", roomID, err)
		}
		return
	}

	h.logger.Info("DELETE /admin/rooms/{roomId} - Room deleted: id=%d", roomID)
	handlers.RespondMessage(w, r, h.translator, http.StatusOK, keyRoomDeleted, nil)
}
