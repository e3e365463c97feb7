package cancel_booking

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrBookingNotFound токен не найден
	ErrBookingNotFound = domain.NewError(domain.KindNotFound, "booking-not-found")

	// ErrTooLate слот уже начался
	ErrTooLate = domain.NewError(domain.KindValidation, "booking-delete-too-late")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
