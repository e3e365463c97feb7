package waitinglist

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrDateTypeNotFound тип неизвестен или выключен
	ErrDateTypeNotFound = domain.ErrDateTypeNotFound

	// ErrInvalidEmail адрес не прошел проверку формата
	ErrInvalidEmail = domain.NewError(domain.KindValidation, "validation-email")

	// ErrSubscriptionNotFound токен не найден
	ErrSubscriptionNotFound = domain.NewError(domain.KindNotFound, "waiting-list-not-found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("waitinglist.service: internal error")
)
