package bookings

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrDateTypeNotFound тип не существует
	ErrDateTypeNotFound = domain.ErrDateTypeNotFound

	// ErrExport не удалось собрать файл отчета
	ErrExport = errors.New("bookings.service: export failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
