package get_subscription

import (
	"context"

	"github.com/m04kA/SMC-RehearsalBooking/internal/service/waitinglist"
)

type WaitingListService interface {
	GetSubscription(ctx context.Context, token, lang string) (*waitinglist.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
