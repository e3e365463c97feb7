package confirm_slots

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
}

// DateTypeRepository интерфейс репозитория типов дат
type DateTypeRepository interface {
	Get(ctx context.Context, value, lang string) (*domain.DateType, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
