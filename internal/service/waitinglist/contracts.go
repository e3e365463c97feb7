package waitinglist

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
)

// EntryRepository интерфейс репозитория листа ожидания
type EntryRepository interface {
	Upsert(ctx context.Context, entry *domain.WaitingListEntry) (*domain.WaitingListEntry, bool, error)
	GetByToken(ctx context.Context, token string) (*domain.WaitingListEntry, error)
	ListByDateType(ctx context.Context, dateType string) ([]*domain.WaitingListEntry, error)
	DeleteByToken(ctx context.Context, token string) error
}

// DateTypeRepository интерфейс репозитория типов дат
type DateTypeRepository interface {
	Get(ctx context.Context, value, lang string) (*domain.DateType, error)
}

// Policy проверка включенных типов
type Policy interface {
	IsDateTypeEnabled(dateType string) bool
}

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Metrics бизнес-метрики листа ожидания
type Metrics interface {
	WaitingListSubscription(dateType string)
	WaitingListNotification(dateType string, ok bool)
	MailFailed(template string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
