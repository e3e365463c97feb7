package list_voices

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/datetypes/models"
)

type VoiceService interface {
	ListVoices(ctx context.Context, dateType, lang string) (*models.VoiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
