package cancel_slots

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-RehearsalBooking/internal/service/waitinglist"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	LockByIDs(ctx context.Context, ids []int64) ([]int64, error)
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBySlotIDs(ctx context.Context, slotIDs []int64) ([]*domain.BookedSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Notifier рассылка приглашений листа ожидания
type Notifier interface {
	Notify(ctx context.Context, dateType string) (*waitinglist.NotifyResult, error)
}

// Metrics бизнес-метрики отмен
type Metrics interface {
	BookingCancelled(dateType, by string)
	MailFailed(template string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
