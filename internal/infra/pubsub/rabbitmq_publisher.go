package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mdr/internal/domain/entity"
	"mdr/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements NotificationDispatcher with a durable RabbitMQ queue.
// A single channel is shared and guarded by mu; it is reopened when the broker closes it.
type rabbitMQPublisher struct {
	url    string
	queue  string
	logger *slog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitMQPublisher dials the broker and declares the queue.
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.NotificationDispatcher, error) {
	p := &rabbitMQPublisher{
		url:    url,
		queue:  queue,
		logger: logger,
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("queue", queue))

	return p, nil
}

// DeclareQueue declares the durable link queue on ch.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)

	return errors.Wrapf(err, "declare queue %s", queue)
}

// connect must be called with mu held or before the publisher is shared.
func (p *rabbitMQPublisher) connect() error {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return errors.Wrap(err, "dial rabbitmq")
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open rabbitmq channel")
	}

	if err := DeclareQueue(ch, p.queue); err != nil {
		_ = ch.Close()

		return err
	}

	p.ch = ch

	return nil
}

// SendLink publishes a persistent message routed to the link queue
func (p *rabbitMQPublisher) SendLink(ctx context.Context, msg *entity.LinkMessage) error {
	data, attributes, err := EncodeLinkMessage(msg)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range attributes {
		headers[k] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			Timestamp:     time.Now().UTC(),
			CorrelationId: msg.RequestID,
			Headers:       headers,
			Body:          data,
		},
	)
	if err != nil {
		return errors.Wrap(err, "publish link message")
	}

	p.logger.InfoContext(ctx, "[RabbitMQ] Link message published",
		slog.String("queue", p.queue),
		slog.String("purpose", msg.Purpose.String()),
	)

	return nil
}

// Close closes the channel and the connection
func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil && !p.ch.IsClosed() {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil && !p.conn.IsClosed() {
		errs = append(errs, p.conn.Close())
	}

	for _, err := range errs {
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
