package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/waitinglist"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.BookedSlot, error)
	DeleteUpcomingByToken(ctx context.Context, token string, now time.Time) error
}

// Notifier рассылка приглашений листа ожидания
type Notifier interface {
	Notify(ctx context.Context, dateType string) (*waitinglist.NotifyResult, error)
}

// Metrics бизнес-метрики отмен
type Metrics interface {
	BookingCancelled(dateType, by string)
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
