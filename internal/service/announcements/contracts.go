package announcements

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/domain"
)

// AnnouncementRepository интерфейс репозитория объявлений
type AnnouncementRepository interface {
	Get(ctx context.Context, position, lang string) (*domain.Announcement, error)
	List(ctx context.Context) ([]*domain.Announcement, error)
	Upsert(ctx context.Context, position, lang, content string) (*domain.Announcement, error)
}

// DateTypeRepository нужен для проверки позиции объявления
type DateTypeRepository interface {
	Get(ctx context.Context, value, lang string) (*domain.DateType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
