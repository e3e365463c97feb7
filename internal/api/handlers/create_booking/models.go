package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Email      string `json:"email"`
	PersonName string `json:"personName"`
	Notes      string `json:"notes"`
	Voice      string `json:"voice"`
	// Token токен листа ожидания из ссылки приглашения (опционально)
	Token string `json:"token,omitempty"`
}

// BookingResponse HTTP response model
// Токен отмены не возвращается, он приходит только в письме
type BookingResponse struct {
	ID         int64     `json:"id"`
	SlotID     int64     `json:"slotId"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	RoomNumber string    `json:"roomNumber"`
	DateType   string    `json:"dateType"`
	Email      string    `json:"email"`
	PersonName string    `json:"personName"`
	Voice      string    `json:"voice"`
	VoiceName  string    `json:"voiceName"`
	MailSent   bool      `json:"mailSent"`
	Message    string    `json:"message"`
	Key        string    `json:"key"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(slotID int64, lang string) *createBooking.Request {
	return &createBooking.Request{
		SlotID:     slotID,
		Email:      r.Email,
		PersonName: r.PersonName,
		Notes:      r.Notes,
		Voice:      r.Voice,
		Lang:       lang,
		Token:      r.Token,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, message, key string) *BookingResponse {
	return &BookingResponse{
		ID:         resp.Booking.ID,
		SlotID:     resp.Slot.ID,
		From:       resp.Slot.From,
		To:         resp.Slot.To,
		RoomNumber: resp.Slot.RoomNumber,
		DateType:   resp.Slot.DateType,
		Email:      resp.Booking.Email,
		PersonName: resp.Booking.PersonName,
		Voice:      resp.Booking.Voice,
		VoiceName:  resp.VoiceName,
		MailSent:   resp.MailSent,
		Message:    message,
		Key:        key,
	}
}
