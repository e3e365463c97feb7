package datetype

import "errors"

var (
	// ErrDateTypeNotFound возвращается, когда тип не найден
	ErrDateTypeNotFound = errors.New("datetype.repository: date type not found")

	// ErrVoiceNotFound возвращается, когда голос не относится к типу
	ErrVoiceNotFound = errors.New("datetype.repository: voice not found")

	// ErrTranslationMissing возвращается, когда у голоса нет перевода на язык
	ErrTranslationMissing = errors.New("datetype.repository: translation missing")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("datetype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("datetype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("datetype.repository: failed to scan row")
)
