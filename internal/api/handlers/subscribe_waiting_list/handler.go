package subscribe_waiting_list

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

const keySubscribed = "waiting-list-subscribed"

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

// Handle POST /api/v1/waiting-list/subscribe/{dateType}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateType := mux.Vars(r)["dateType"]

	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waiting-list/subscribe/{dateType} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	lang := handlers.LanguageFromContext(r.Context())
	result, err := h.service.Subscribe(r.Context(), dateType, req.Email, lang)
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /waiting-list/subscribe/{dateType} - Failed to subscribe: date_type=%s, error=%v", dateType, err)
		} else {
			h.logger.Warn("POST /waiting-list/subscribe/{dateType} - Subscription rejected: date_type=%s, error=%v", dateType, err)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /waiting-list/subscribe/{dateType} - Subscribed: date_type=%s, created=%t, mail_sent=%t",
		dateType, result.Created, result.MailSent)
	handlers.RespondJSON(w, status, &SubscribeResponse{
		DateType: result.Entry.DateType,
		Email:    result.Entry.Email,
		Created:  result.Created,
		MailSent: result.MailSent,
		Message:  h.translator.Translate(lang, keySubscribed, nil),
		Key:      keySubscribed,
	})
}
