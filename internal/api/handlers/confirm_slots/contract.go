package confirm_slots

import (
	"context"

	confirmSlots "github.com/m04kA/SMC-RehearsalBooking/internal/usecase/confirm_slots"
)

type ConfirmSlotsUseCase interface {
	Execute(ctx context.Context, req *confirmSlots.Request) (*confirmSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
