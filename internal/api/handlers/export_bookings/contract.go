package export_bookings

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/bookings/models"
)

type BookingService interface {
	ExportBookings(ctx context.Context, dateType, lang string) (*models.ExportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
