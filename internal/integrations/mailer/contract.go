package mailer

import "context"

// Transport доставляет готовое письмо
type Transport interface {
	Deliver(ctx context.Context, envelope Envelope) error
}

// Translator интерфейс каталога переводов
type Translator interface {
	Lookup(lang, key string) (string, bool)
	Translate(lang, key string, args map[string]string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
