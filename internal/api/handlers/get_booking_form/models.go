package get_booking_form

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes/models"
	getAvailableSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

// BookingFormResponse данные формы бронирования слота
type BookingFormResponse struct {
	SlotID              int64                  `json:"slotId"`
	From                time.Time              `json:"from"`
	To                  time.Time              `json:"to"`
	RoomNumber          string                 `json:"roomNumber"`
	DateType            string                 `json:"dateType"`
	DisplayName         string                 `json:"displayName"`
	Announcement        string                 `json:"announcement"`
	Voices              []models.VoiceResponse `json:"voices"`
	Email               string                 `json:"email,omitempty"`
	Token               string                 `json:"token,omitempty"`
	ApplicationDeadline *time.Time             `json:"applicationDeadline,omitempty"`
}

// FromUseCaseResponse конвертирует слот и голоса в HTTP response
// Email и токен заполняются из записи листа ожидания, если она есть
func FromUseCaseResponse(resp *getAvailableSlots.GetResponse, voices *models.VoiceListResponse) *BookingFormResponse {
	out := &BookingFormResponse{
		SlotID:              resp.Slot.ID,
		From:                resp.Slot.From,
		To:                  resp.Slot.To,
		RoomNumber:          resp.Slot.RoomNumber,
		DateType:            resp.DateType.Value,
		DisplayName:         resp.DateType.DisplayName,
		ApplicationDeadline: resp.DateType.ApplicationDeadline,
		Voices:              voices.Voices,
	}
	if resp.Entry != nil {
		out.Email = resp.Entry.Email
		out.Token = resp.Entry.Token
	}
	return out
}
