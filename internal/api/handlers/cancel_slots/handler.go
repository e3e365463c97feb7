package cancel_slots

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

const keyDatesCancelled = "dates-cancelled"

type Handler struct {
	useCase    CancelSlotsUseCase
	translator handlers.Translator
	logger     Logger
}

func NewHandler(useCase CancelSlotsUseCase, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		translator: translator,
		logger:     logger,
	}
}

// Handle POST /api/v1/admin/dates/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/dates/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /admin/dates/cancel - Failed to cancel slots: slot_ids=%v, error=%v", req.SlotIDs, err)
		} else {
			h.logger.Warn("POST /admin/dates/cancel - Cancellation rejected: error=%v", err)
		}
		return
	}

	if len(result.FailedMails) > 0 {
		h.logger.Warn("POST /admin/dates/cancel - Some cancellation mails failed: count=%d", len(result.FailedMails))
	}

	lang := handlers.LanguageFromContext(r.Context())
	message := h.translator.Translate(lang, keyDatesCancelled, map[string]string{
		"count": strconv.FormatInt(result.DeletedSlots, 10),
	})

	h.logger.Info("POST /admin/dates/cancel - Slots cancelled: deleted=%d, bookings=%d, mails_sent=%d",
		result.DeletedSlots, result.CancelledBookings, result.MailsSent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, message, keyDatesCancelled))
}
