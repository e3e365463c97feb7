package cancel_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/cancel_booking"
)

const keyBookingDeleted = "booking-deleted"

type Handler struct {
	useCase    CancelBookingUseCase
	translator handlers.Translator
	logger     Logger
}

func NewHandler(useCase CancelBookingUseCase, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		translator: translator,
		logger:     logger,
	}
}

// Handle POST /api/v1/bookings/delete/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{Token: token})
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /bookings/delete/{token} - Failed to cancel booking: error=%v", err)
		} else {
			h.logger.Warn("POST /bookings/delete/{token} - Cancellation rejected: error=%v", err)
		}
		return
	}

	h.logger.Info("POST /bookings/delete/{token} - Booking cancelled: slot_id=%d, notified=%d",
		result.Slot.ID, result.Notified)
	handlers.RespondMessage(w, r, h.translator, http.StatusOK, keyBookingDeleted, nil)
}
