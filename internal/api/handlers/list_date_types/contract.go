package list_date_types

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes/models"
)

type DateTypeService interface {
	ListEnabled(ctx context.Context, lang string) (*models.DateTypeListResponse, error)
}

type AnnouncementService interface {
	Content(ctx context.Context, position, lang string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
