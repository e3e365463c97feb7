package confirm_slots

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

const keyDatesCreated = "dates-created"

type Handler struct {
	useCase    ConfirmSlotsUseCase
	translator handlers.Translator
	logger     Logger
}

func NewHandler(useCase ConfirmSlotsUseCase, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		translator: translator,
		logger:     logger,
	}
}

// Handle POST /api/v1/admin/dates/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/dates/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /admin/dates/confirm - Failed to confirm slots: candidates=%d, error=%v",
				len(req.Candidates), err)
		} else {
			h.logger.Warn("POST /admin/dates/confirm - Confirmation rejected: error=%v", err)
		}
		return
	}

	lang := handlers.LanguageFromContext(r.Context())
	message := h.translator.Translate(lang, keyDatesCreated, map[string]string{"count": strconv.Itoa(len(result.Created))})

	h.logger.Info("POST /admin/dates/confirm - Slots created: count=%d", len(result.Created))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, message, keyDatesCreated))
}
