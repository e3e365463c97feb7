package update_deadline

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes/models"
)

type DateTypeService interface {
	UpdateDeadline(ctx context.Context, dateType string, req *models.UpdateDeadlineRequest) (*models.DateTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
