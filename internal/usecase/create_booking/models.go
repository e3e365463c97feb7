package create_booking

import "github.com/m04kA/SMC-RehearsalBooking/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	SlotID     int64
	Email      string `validate:"required,email,max=254"`
	PersonName string `validate:"required,max=200"`
	Notes      string `validate:"max=2000"`
	Voice      string `validate:"required"`
	Lang       string
	Token      string // токен листа ожидания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
	Slot    *domain.Slot
	// VoiceName название голоса на языке бронирования
	VoiceName string
	// MailSent false, если подтверждение не удалось отправить; бронирование при этом сохранено
	MailSent bool
}
