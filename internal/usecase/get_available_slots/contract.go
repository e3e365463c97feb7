package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListUnbooked возвращает все свободные слоты типа
	ListUnbooked(ctx context.Context, dateType string) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	IsBooked(ctx context.Context, id int64) (bool, error)
}

// DateTypeRepository интерфейс репозитория типов дат
type DateTypeRepository interface {
	Get(ctx context.Context, value, lang string) (*domain.DateType, error)
}

// WaitingListRepository интерфейс репозитория листа ожидания
type WaitingListRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.WaitingListEntry, error)
}

// Policy глобальные правила бронирования из конфигурации
type Policy interface {
	Rules() domain.BookingRules
	IsDateTypeEnabled(dateType string) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
