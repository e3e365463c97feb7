package subscribe_waiting_list

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/waitinglist"
)

type WaitingListService interface {
	Subscribe(ctx context.Context, dateType, email, lang string) (*waitinglist.SubscribeResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
