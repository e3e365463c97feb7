package announcements

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrInvalidPosition позиция не general и не известный тип дат
	ErrInvalidPosition = domain.NewError(domain.KindValidation, "validation-announcement-position")

	// ErrInvalidLanguage язык без каталога сообщений
	ErrInvalidLanguage = domain.NewError(domain.KindValidation, "validation-language")

	// ErrContentTooLong текст объявления превышает лимит
	ErrContentTooLong = domain.NewError(domain.KindValidation, "validation-announcement-length")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("announcements.service: internal error")
)
