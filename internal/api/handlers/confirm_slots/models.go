package confirm_slots

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	confirmSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/confirm_slots"
)

// CandidateRequest кандидат из ответа шага генерации
type CandidateRequest struct {
	ID         *int64    `json:"id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	RoomNumber string    `json:"roomNumber"`
	DateType   string    `json:"dateType"`
}

// ConfirmSlotsRequest HTTP request model
type ConfirmSlotsRequest struct {
	Candidates []CandidateRequest `json:"candidates"`
	Selected   []bool             `json:"selected"`
}

// SlotResponse сохраненный слот
type SlotResponse struct {
	ID         int64     `json:"id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	RoomNumber string    `json:"roomNumber"`
	DateType   string    `json:"dateType"`
}

// ConfirmSlotsResponse HTTP response model
type ConfirmSlotsResponse struct {
	Slots   []SlotResponse `json:"slots"`
	Message string         `json:"message"`
	Key     string         `json:"key"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmSlotsRequest) ToUseCaseRequest() *confirmSlots.Request {
	candidates := make([]*domain.SlotCandidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		candidates = append(candidates, &domain.SlotCandidate{
			ID:         c.ID,
			From:       c.From,
			To:         c.To,
			RoomNumber: c.RoomNumber,
			DateType:   c.DateType,
		})
	}
	return &confirmSlots.Request{
		Candidates: candidates,
		Selected:   r.Selected,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmSlots.Response, message, key string) *ConfirmSlotsResponse {
	out := &ConfirmSlotsResponse{
		Slots:   make([]SlotResponse, 0, len(resp.Created)),
		Message: message,
		Key:     key,
	}
	for _, s := range resp.Created {
		out.Slots = append(out.Slots, SlotResponse{
			ID:         s.ID,
			From:       s.From,
			To:         s.To,
			RoomNumber: s.RoomNumber,
			DateType:   s.DateType,
		})
	}
	return out
}
