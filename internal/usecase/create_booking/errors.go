package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrDateGone слот недоступен зрителю или токен листа ожидания не совпал с адресом
	ErrDateGone = domain.ErrDateGone

	// ErrDateTaken слот уже забронирован
	ErrDateTaken = domain.ErrDateTaken

	// ErrInvalidEmail некорректный адрес
	ErrInvalidEmail = domain.NewError(domain.KindValidation, "validation-email")

	// ErrInvalidPersonName имя не указано или слишком длинное
	ErrInvalidPersonName = domain.NewError(domain.KindValidation, "validation-person-name")

	// ErrVoiceNotSelected голос не выбран
	ErrVoiceNotSelected = domain.NewError(domain.KindValidation, "validation-select")

	// ErrVoiceMismatch голос не относится к типу слота
	ErrVoiceMismatch = domain.NewError(domain.KindValidation, "validation-voice")

	// ErrInvalidInput прочие ошибки формы
	ErrInvalidInput = domain.NewError(domain.KindValidation, "validation-unknown")

	// ErrVoiceTranslationMissing у голоса нет названия на языке бронирования
	ErrVoiceTranslationMissing = domain.NewError(domain.KindIntegrity, "voice-translation-missing")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
