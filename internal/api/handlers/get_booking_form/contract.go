package get_booking_form

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes/models"
	getAvailableSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/get_available_slots"
)

type AvailabilityUseCase interface {
	GetAvailable(ctx context.Context, req *getAvailableSlots.GetRequest) (*getAvailableSlots.GetResponse, error)
}

type VoiceService interface {
	ListVoices(ctx context.Context, dateType, lang string) (*models.VoiceListResponse, error)
}

type AnnouncementService interface {
	Content(ctx context.Context, position, lang string) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
