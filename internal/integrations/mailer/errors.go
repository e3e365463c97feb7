package mailer

import "errors"

var (
	// ErrUnknownTemplate возвращается, если шаблон письма не найден
	ErrUnknownTemplate = errors.New("mailer: unknown template")

	// ErrMissingTranslation возвращается, если нет перевода темы письма
	ErrMissingTranslation = errors.New("mailer: missing translation")

	// ErrRender возвращается при ошибке рендеринга тела письма
	ErrRender = errors.New("mailer: failed to render body")

	// ErrDeliver возвращается при ошибке доставки письма транспортом
	ErrDeliver = errors.New("mailer: failed to deliver")
)
