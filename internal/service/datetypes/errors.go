package datetypes

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrDateTypeNotFound тип неизвестен или выключен
	ErrDateTypeNotFound = domain.ErrDateTypeNotFound

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("datetypes.service: internal error")
)
