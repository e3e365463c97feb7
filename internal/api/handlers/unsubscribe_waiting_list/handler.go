package unsubscribe_waiting_list

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

const keyUnsubscribed = "waiting-list-unsubscribed"

type Handler struct {
	service    WaitingListService
	translator handlers.Translator
	logger     Logger
}

func NewHandler(service WaitingListService, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		service:    service,
		translator: translator,
		logger:     logger,
	}
}

// Handle POST /api/v1/waiting-list/unsubscribe/{token}
// Неизвестный токен тоже отвечает успехом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.service.Unsubscribe(r.Context(), token); err != nil {
		h.logger.Error("POST /waiting-list/unsubscribe/{token} - Failed to unsubscribe: error=%v", err)
		handlers.RespondDomainError(w, r, h.translator, err)
		return
	}

	h.logger.Info("POST /waiting-list/unsubscribe/{token} - Unsubscribed")
	handlers.RespondMessage(w, r, h.translator, http.StatusOK, keyUnsubscribed, nil)
}
