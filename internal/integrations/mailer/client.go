package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Client переводит тему, рендерит тело и передаёт письмо транспорту
type Client struct {
	from       string
	translator Translator
	templates  *template.Template
	transport  Transport
	timeout    time.Duration
	log        Logger
}

// NewClient создает новый экземпляр клиента почты
// timeout ограничивает доставку одного письма, 0 = без ограничения
func NewClient(from string, timeout time.Duration, translator Translator, transport Transport, log Logger) (*Client, error) {
	tmpl, err := template.New("mail").
		Option("missingkey=zero").
		Funcs(template.FuncMap{
			"t": func(lang, key string) string {
				return translator.Translate(lang, key, nil)
			},
		}).
		ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: parse templates: %v", ErrRender, err)
	}

	return &Client{
		from:       from,
		translator: translator,
		templates:  tmpl,
		transport:  transport,
		timeout:    timeout,
		log:        log,
	}, nil
}

// Send отправляет письмо
func (c *Client) Send(ctx context.Context, msg Message) error {
	envelope, err := c.Render(msg)
	if err != nil {
		c.log.Error("Mailer: failed to render template=%s to=%s: %v", msg.Template, msg.To, err)
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.transport.Deliver(ctx, *envelope); err != nil {
		c.log.Error("Mailer: failed to deliver template=%s to=%s: %v", msg.Template, msg.To, err)
		return fmt.Errorf("%w: %v", ErrDeliver, err)
	}

	c.log.Info("Mailer: sent template=%s to=%s lang=%s", msg.Template, msg.To, msg.Lang)
	return nil
}

// Render переводит тему и рендерит тело письма
func (c *Client) Render(msg Message) (*Envelope, error) {
	subject, ok := c.translator.Lookup(msg.Lang, msg.SubjectKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, msg.SubjectKey, msg.Lang)
	}
	if len(msg.SubjectArgs) > 0 {
		subject = c.translator.Translate(msg.Lang, msg.SubjectKey, msg.SubjectArgs)
	}

	tmpl := c.templates.Lookup(msg.Template + ".tmpl")
	if tmpl == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, msg.Template)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, templateData{Lang: msg.Lang, Data: msg.Data}); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, msg.Template, err)
	}

	return &Envelope{
		From:    c.from,
		To:      msg.To,
		Subject: subject,
		Body:    body.String(),
		Lang:    msg.Lang,
	}, nil
}
