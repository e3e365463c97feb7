package models

import (
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// BookingResponse бронирование в отчете администратора
type BookingResponse struct {
	ID         int64     `json:"id"`
	SlotID     int64     `json:"slotId"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	RoomNumber string    `json:"roomNumber"`
	Email      string    `json:"email"`
	PersonName string    `json:"personName"`
	Notes      string    `json:"notes"`
	Voice      string    `json:"voice"`
	VoiceName  string    `json:"voiceName"`
	Lang       string    `json:"lang"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListResponse бронирования типа
type BookingListResponse struct {
	DateType string            `json:"dateType"`
	Bookings []BookingResponse `json:"bookings"`
}

// ExportResponse готовый xlsx файл
type ExportResponse struct {
	Filename string
	Content  []byte
}

// FromDomainBookedSlot конвертирует domain модель в DTO
func FromDomainBookedSlot(b *domain.BookedSlot) BookingResponse {
	return BookingResponse{
		ID:         b.Booking.ID,
		SlotID:     b.Slot.ID,
		From:       b.Slot.From,
		To:         b.Slot.To,
		RoomNumber: b.Slot.RoomNumber,
		Email:      b.Booking.Email,
		PersonName: b.Booking.PersonName,
		Notes:      b.Booking.Notes,
		Voice:      b.Booking.Voice,
		VoiceName:  b.VoiceName,
		Lang:       b.Booking.Lang,
		CreatedAt:  b.Booking.CreatedAt,
	}
}

// FromDomainBookedSlots конвертирует список бронирований
func FromDomainBookedSlots(dateType string, list []*domain.BookedSlot) *BookingListResponse {
	resp := &BookingListResponse{DateType: dateType, Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, FromDomainBookedSlot(b))
	}
	return resp
}
