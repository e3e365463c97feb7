package get_subscription

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

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

// Handle GET /api/v1/waiting-list/unsubscribe/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	lang := handlers.LanguageFromContext(r.Context())

	result, err := h.service.GetSubscription(r.Context(), token, lang)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /waiting-list/unsubscribe/{token} - Failed to get subscription: error=%v", err)
		} else {
			h.logger.Warn("GET /waiting-list/unsubscribe/{token} - Subscription not found")
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
