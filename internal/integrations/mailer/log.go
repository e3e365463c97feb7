package mailer

import "context"

// LogTransport только пишет письма в лог, для локальной разработки
type LogTransport struct {
	log Logger
}

func NewLogTransport(log Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Deliver(_ context.Context, envelope Envelope) error {
	t.log.Info("Mailer(log): to=%s subject=%q\n%s", envelope.To, envelope.Subject, envelope.Body)
	return nil
}
