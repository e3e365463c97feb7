package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

// SlotResponse доступный слот
type SlotResponse struct {
	ID         int64     `json:"id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	RoomNumber string    `json:"roomNumber"`
}

// SlotListResponse HTTP response model
type SlotListResponse struct {
	DateType            string         `json:"dateType"`
	DisplayName         string         `json:"displayName"`
	Announcement        string         `json:"announcement"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline,omitempty"`
	Slots               []SlotResponse `json:"slots"`
	// WaitingListEmail адрес записи листа ожидания, если токен распознан
	WaitingListEmail string `json:"waitingListEmail,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotListResponse {
	out := &SlotListResponse{
		DateType:            resp.DateType.Value,
		DisplayName:         resp.DateType.DisplayName,
		ApplicationDeadline: resp.DateType.ApplicationDeadline,
		Slots:               make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, fromDomainSlot(s))
	}
	if resp.Entry != nil {
		out.WaitingListEmail = resp.Entry.Email
	}
	return out
}

func fromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		From:       s.From,
		To:         s.To,
		RoomNumber: s.RoomNumber,
	}
}
