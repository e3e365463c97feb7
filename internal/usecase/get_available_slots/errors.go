package get_available_slots

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrDateTypeNotFound тип неизвестен или выключен
	ErrDateTypeNotFound = domain.ErrDateTypeNotFound

	// ErrDateGone слот не существует или скрыт правилами доступности
	ErrDateGone = domain.ErrDateGone

	// ErrDateTaken слот уже забронирован
	ErrDateTaken = domain.ErrDateTaken

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
