package datetypes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// DateTypeRepository интерфейс репозитория типов дат и голосов
type DateTypeRepository interface {
	Get(ctx context.Context, value, lang string) (*domain.DateType, error)
	List(ctx context.Context, values []string, lang string) ([]*domain.DateType, error)
	UpdateDeadline(ctx context.Context, value string, deadline *time.Time) (*domain.DateType, error)
	ListVoices(ctx context.Context, dateType, lang string) ([]*domain.Voice, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
