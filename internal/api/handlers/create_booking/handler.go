package create_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

const (
	keyBookingCreated = "booking-created"
	keyMailSendFailed = "mail-send-failed"
)

type Handler struct {
	useCase    CreateBookingUseCase
	translator handlers.Translator
	logger     Logger
}

func NewHandler(useCase CreateBookingUseCase, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		translator: translator,
		logger:     logger,
	}
}

// Handle POST /api/v1/bookings/new/{dateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["dateId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/new/{dateId} - Invalid date ID: %v", err)
		handlers.RespondDomainError(w, r, h.translator, domain.ErrDateGone)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/new/{dateId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	lang := handlers.LanguageFromContext(r.Context())
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slotID, lang))
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /bookings/new/{dateId} - Failed to create booking: slot_id=%d, error=%v", slotID, err)
		} else {
			h.logger.Warn("POST /bookings/new/{dateId} - Booking rejected: slot_id=%d, error=%v", slotID, err)
		}
		return
	}

	// Бронирование сохранено даже если письмо не ушло
	key := keyBookingCreated
	if !result.MailSent {
		key = keyMailSendFailed
	}

	h.logger.Info("POST /bookings/new/{dateId} - Booking created: booking_id=%d, slot_id=%d, mail_sent=%t",
		result.Booking.ID, slotID, result.MailSent)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.translator.Translate(lang, key, nil), key))
}
