package update_announcement

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/announcements/models"
)

type AnnouncementService interface {
	Update(ctx context.Context, position, lang string, req *models.UpdateAnnouncementRequest) (*models.AnnouncementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
