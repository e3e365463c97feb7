package create_booking

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
	"github.com/m04kA/SMC-RehearsalBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

// AvailabilityProvider повторная проверка доступности слота на момент отправки формы
type AvailabilityProvider interface {
	GetAvailable(ctx context.Context, req *get_available_slots.GetRequest) (*get_available_slots.GetResponse, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking, dateType string) (*domain.Booking, error)
}

// DateTypeRepository интерфейс репозитория типов и голосов
type DateTypeRepository interface {
	GetVoice(ctx context.Context, dateType, value, lang string) (*domain.Voice, error)
}

// WaitingListRepository интерфейс репозитория листа ожидания
type WaitingListRepository interface {
	DeleteByEmail(ctx context.Context, email, dateType string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	BookingCreated(dateType string)
	MailFailed(template string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
