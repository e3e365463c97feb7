package generate_slots

import (
	"errors"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

var (
	// ErrRoomNotFound комната не существует
	ErrRoomNotFound = domain.NewError(domain.KindValidation, "validation-room")

	// ErrDateTypeNotSelected тип не выбран или не существует
	ErrDateTypeNotSelected = domain.NewError(domain.KindValidation, "validation-select")

	// ErrInvalidInterval интервал должен быть положительным
	ErrInvalidInterval = domain.NewError(domain.KindValidation, "validation-interval")

	// ErrWrongDateOrder начало не раньше конца
	ErrWrongDateOrder = domain.NewError(domain.KindValidation, "wrong-date-order")

	// ErrIntervalNotEven диапазон не делится на интервал без остатка
	ErrIntervalNotEven = domain.NewError(domain.KindValidation, "interval-not-even")

	// ErrTooManyDates получилось бы больше domain.MaxGeneratedSlots слотов
	ErrTooManyDates = domain.NewError(domain.KindValidation, "too-many-dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
