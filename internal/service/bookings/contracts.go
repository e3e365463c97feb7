package bookings

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByDateType(ctx context.Context, dateType, lang string) ([]*domain.BookedSlot, error)
}

// DateTypeRepository интерфейс репозитория типов дат
type DateTypeRepository interface {
	Get(ctx context.Context, value, lang string) (*domain.DateType, error)
}

// Translator перевод заголовков отчета
type Translator interface {
	Translate(lang, key string, args map[string]string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
