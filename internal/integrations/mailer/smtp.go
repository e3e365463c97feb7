package mailer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/wneessen/go-mail"
)

const (
	TLSNone          = "none"
	TLSOpportunistic = "opportunistic"
	TLSMandatory     = "mandatory"
)

// SMTPConfig параметры SMTP транспорта
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // пустой username отключает аутентификацию
	Password string
	TLS      string // none | opportunistic | mandatory
}

// SMTPTransport доставляет письма через SMTP сервер
type SMTPTransport struct {
	cfg  SMTPConfig
	now  func() time.Time
	dial func(ctx context.Context, network, address string) (net.Conn, error)
}

// NewSMTPTransport создает транспорт
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	dialer := &net.Dialer{}
	return &SMTPTransport{
		cfg:  cfg,
		now:  time.Now,
		dial: dialer.DialContext,
	}
}

// Deliver отправляет письмо, вся SMTP сессия ограничена дедлайном ctx
func (t *SMTPTransport) Deliver(ctx context.Context, envelope Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := t.buildMessage(envelope)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(t.cfg.Host, t.options(ctx)...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (t *SMTPTransport) options(ctx context.Context) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(t.cfg.TLS)),
		mail.WithDialContextFunc(t.dialWithDeadline),
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left > 0 {
			opts = append(opts, mail.WithTimeout(left))
		}
	}
	if t.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
		)
	}
	return opts
}

// dialWithDeadline переносит дедлайн контекста на соединение,
// иначе сервер, молчащий после accept, блокирует чтение приветствия
func (t *SMTPTransport) dialWithDeadline(ctx context.Context, network, address string) (net.Conn, error) {
	conn, err := t.dial(ctx, network, address)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

// buildMessage формирует письмо с UTF-8 телом text/plain
func (t *SMTPTransport) buildMessage(envelope Envelope) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(envelope.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(envelope.To); err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(envelope.Subject)
	msg.SetDateWithValue(t.now())
	msg.SetBodyString(mail.TypeTextPlain, envelope.Body)
	return msg, nil
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch name {
	case TLSNone:
		return mail.NoTLS
	case TLSMandatory:
		return mail.TLSMandatory
	default:
		return mail.TLSOpportunistic
	}
}
