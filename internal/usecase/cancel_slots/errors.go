package cancel_slots

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrNothingSelected не выбран ни один слот
	ErrNothingSelected = domain.NewError(domain.KindValidation, "validation-select")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_slots: internal error")
)
