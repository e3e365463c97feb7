package generate_slots

import (
	"net/http"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

type Handler struct {
	useCase    GenerateSlotsUseCase
	translator handlers.Translator
	logger     Logger
}

func NewHandler(useCase GenerateSlotsUseCase, translator handlers.Translator, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		translator: translator,
		logger:     logger,
	}
}

// Handle POST /api/v1/admin/dates/generate
// Ничего не сохраняет, возвращает кандидатов для шага подтверждения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/dates/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, r, h.translator)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("POST /admin/dates/generate - Failed to generate slots: error=%v", err)
		} else {
			h.logger.Warn("POST /admin/dates/generate - Generation rejected: room=%s, date_type=%s, error=%v",
				req.RoomNumber, req.DateType, err)
		}
		return
	}

	h.logger.Info("POST /admin/dates/generate - Candidates generated: count=%d", len(result.Candidates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
