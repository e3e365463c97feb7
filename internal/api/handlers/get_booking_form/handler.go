package get_booking_form

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

type Handler struct {
	availability  AvailabilityUseCase
	voices        VoiceService
	announcements AnnouncementService
	translator    handlers.Translator
	logger        Logger
}

func NewHandler(
	availability AvailabilityUseCase,
	voices VoiceService,
	announcements AnnouncementService,
	translator handlers.Translator,
	logger Logger,
) *Handler {
	return &Handler{
		availability:  availability,
		voices:        voices,
		announcements: announcements,
		translator:    translator,
		logger:        logger,
	}
}

// Handle GET /api/v1/bookings/new/{dateId}?token=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["dateId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/new/{dateId} - Invalid date ID: %v", err)
		handlers.RespondDomainError(w, r, h.translator, domain.ErrDateGone)
		return
	}

	lang := handlers.LanguageFromContext(r.Context())
	slot, err := h.availability.GetAvailable(r.Context(), &getAvailableSlots.GetRequest{
		SlotID: slotID,
		Token:  r.URL.Query().Get("token"),
		Lang:   lang,
	})
	if err != nil {
		status := handlers.RespondDomainError(w, r, h.translator, err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("GET /bookings/new/{dateId} - Failed to get slot: slot_id=%d, error=%v", slotID, err)
		} else {
			h.logger.Warn("GET /bookings/new/{dateId} - Slot not available: slot_id=%d", slotID)
		}
		return
	}

	voices, err := h.voices.ListVoices(r.Context(), slot.Slot.DateType, lang)
	if err != nil {
		h.logger.Error("GET /bookings/new/{dateId} - Failed to list voices: slot_id=%d, date_type=%s, error=%v",
			slotID, slot.Slot.DateType, err)
		handlers.RespondDomainError(w, r, h.translator, err)
		return
	}

	resp := FromUseCaseResponse(slot, voices)
	resp.Announcement = h.announcements.Content(r.Context(), slot.Slot.DateType, lang)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
