package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPTransport публикует готовые письма в очередь внешнего mail relay
type AMQPTransport struct {
	url   string
	queue string
}

// NewAMQPTransport создает транспорт для очереди queue
func NewAMQPTransport(url, queue string) *AMQPTransport {
	return &AMQPTransport{url: url, queue: queue}
}

// Deliver публикует письмо как persistent JSON сообщение
// Соединение открывается на каждое письмо, трафик низкий
func (t *AMQPTransport) Deliver(ctx context.Context, envelope Envelope) error {
	conn, err := amqp.Dial(t.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		t.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("amqp queue declare: %w", err)
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("amqp marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", t.queue, false, false, pub); err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}

	return nil
}
