package confirm_slots

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrInvalidBufferedState кандидат изменен клиентом: пустой интервал или уже есть id
	ErrInvalidBufferedState = domain.NewError(domain.KindIntegrity, "invalid-buffered-state")

	// ErrRoomNotFound комната кандидата не существует
	ErrRoomNotFound = domain.NewError(domain.KindValidation, "validation-room")

	// ErrDateTypeNotSelected тип кандидата не существует
	ErrDateTypeNotSelected = domain.NewError(domain.KindValidation, "validation-select")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_slots: internal error")
)
