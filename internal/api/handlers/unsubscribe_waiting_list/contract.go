package unsubscribe_waiting_list

import "context"

type WaitingListService interface {
	Unsubscribe(ctx context.Context, token string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
