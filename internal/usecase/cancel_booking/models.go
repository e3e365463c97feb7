package cancel_booking

import "github.com/m04kA/SMC-RehearsalBooking/internal/domain"

// Request запрос самостоятельной отмены бронирования
type Request struct {
	Token string
}

// Response освобожденный слот
type Response struct {
	Slot domain.Slot
	// Notified сколько приглашений листа ожидания отправлено
	Notified int
}
