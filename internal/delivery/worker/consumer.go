package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mdr/config"
	"mdr/internal/delivery"
	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/delivery/worker/handler"
	"mdr/internal/domain/constants"
	"mdr/internal/errors"
	"mdr/internal/infra/pubsub"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	defaultPrefetch = 10
	consumerTag     = "mdr-mailworker"

	minReconnectDelay    = time.Second
	maxReconnectDelay    = 30 * time.Second
	maxReconnectAttempts = 10
	requeueDelay         = 2 * time.Second
)

// ConsumerParams holds dependencies for the queue consumer
type ConsumerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Mailer *handler.LinkMailer
}

type linkConsumer struct {
	url      string
	queue    string
	prefetch int
	logger   *slog.Logger
	mailer   *handler.LinkMailer

	// subscribe opens a fresh consumer; replaced in tests.
	subscribe      func() (<-chan amqp.Delivery, error)
	reconnectDelay time.Duration
	maxAttempts    int
	retryDelay     time.Duration

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	stopped  bool
	done     chan struct{}
	stopOnce sync.Once
}

// NewConsumers returns the RabbitMQ consumer when the rabbitmq provider is configured, and nothing otherwise.
func NewConsumers(params ConsumerParams) ([]delivery.Delivery, error) {
	cfg := params.Cfg.Notification
	if cfg == nil || cfg.Provider != constants.NotificationProviderRabbitMQ {
		return nil, nil
	}
	if cfg.RabbitMQ == nil || cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.Queue == "" {
		return nil, errors.New("rabbitmq url and queue are required")
	}

	prefetch := cfg.RabbitMQ.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}

	c := &linkConsumer{
		url:            cfg.RabbitMQ.URL,
		queue:          cfg.RabbitMQ.Queue,
		prefetch:       prefetch,
		logger:         params.Logger,
		mailer:         params.Mailer,
		reconnectDelay: minReconnectDelay,
		maxAttempts:    maxReconnectAttempts,
		retryDelay:     requeueDelay,
		done:           make(chan struct{}),
	}
	c.subscribe = c.dial

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return []delivery.Delivery{c}, nil
}

// Serve consumes link messages until stop is called. A channel closed by the broker
// is re-subscribed with exponential backoff; after maxAttempts failed subscriptions
// in a row Serve returns an error.
func (c *linkConsumer) Serve(ctx context.Context) error {
	delay := c.reconnectDelay
	failures := 0

	for {
		deliveries, err := c.subscribe()
		if err != nil {
			if c.isStopped() {
				return nil
			}
			failures++
			if failures >= c.maxAttempts {
				return errors.Wrapf(err, "rabbitmq unavailable after %d attempts", failures)
			}
			c.logger.Warn("Failed to subscribe to RabbitMQ, retrying",
				slog.String("queue", c.queue),
				slog.Int("attempt", failures),
				slog.Duration("delay", delay),
				slog.Any("error", err),
			)
			if !c.wait(ctx, delay) {
				return nil
			}
			delay = min(delay*2, maxReconnectDelay)

			continue
		}

		failures = 0
		delay = c.reconnectDelay
		c.logger.Info("Starting RabbitMQ consumer",
			slog.String("queue", c.queue),
			slog.Int("prefetch", c.prefetch),
		)

		for d := range deliveries {
			c.handle(ctx, d)
		}

		if c.isStopped() || ctx.Err() != nil {
			c.logger.Info("RabbitMQ consumer stopped", slog.String("queue", c.queue))

			return nil
		}
		c.logger.Warn("RabbitMQ delivery channel closed unexpectedly, reconnecting", slog.String("queue", c.queue))
	}
}

// wait sleeps for d and reports false when the consumer is stopped first.
func (c *linkConsumer) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return !c.isStopped()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-c.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (c *linkConsumer) isStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stopped
}

func (c *linkConsumer) dial() (<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return nil, errors.New("consumer stopped")
	}
	if c.conn != nil && !c.conn.IsClosed() {
		_ = c.conn.Close()
	}

	conn, err := amqp.Dial(c.url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	fail := func(err error) (<-chan amqp.Delivery, error) {
		_ = ch.Close()
		_ = conn.Close()

		return nil, err
	}

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fail(errors.Wrap(err, "set rabbitmq qos"))
	}

	if err := pubsub.DeclareQueue(ch, c.queue); err != nil {
		return fail(err)
	}

	deliveries, err := ch.Consume(
		c.queue,     // queue
		consumerTag, // consumer
		false,       // autoAck
		false,       // exclusive
		false,       // noLocal
		false,       // noWait
		nil,         // args
	)
	if err != nil {
		return fail(errors.Wrap(err, "consume rabbitmq queue"))
	}

	c.conn = conn
	c.ch = ch

	return deliveries, nil
}

// handle acknowledges delivered mails and undecodable messages, and requeues retryable failures
func (c *linkConsumer) handle(ctx context.Context, d amqp.Delivery) {
	msg, err := pubsub.DecodeLinkMessage(d.Body)
	if err != nil {
		c.logger.Error("[Worker] Dropping undecodable link message",
			slog.String("message_id", d.MessageId),
			slog.Any("error", err),
		)
		c.settle(d.Reject(false))

		return
	}

	requestID := deliveryRequestID(d, msg.RequestID)
	reqLogger := c.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := c.mailer.Deliver(ctx, msg); err != nil {
		retryable := handler.IsRetryableError(err)
		reqLogger.Error("[Worker] Failed to deliver link mail",
			slog.String("purpose", msg.Purpose.String()),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			c.wait(ctx, c.retryDelay)
		}
		c.settle(d.Nack(false, retryable))

		return
	}

	c.settle(d.Ack(false))
}

func (c *linkConsumer) settle(err error) {
	if err != nil {
		c.logger.Warn("[Worker] Failed to settle RabbitMQ delivery", slog.Any("error", err))
	}
}

func deliveryRequestID(d amqp.Delivery, payloadID string) string {
	if requestID, ok := d.Headers[pubsub.AttrRequestID].(string); ok && requestID != "" {
		return requestID
	}
	if d.CorrelationId != "" {
		return d.CorrelationId
	}
	if payloadID != "" {
		return payloadID
	}

	return uuid.NewString()
}

// stop cancels the subscription so Serve drains and returns
func (c *linkConsumer) stop(_ context.Context) error {
	c.stopOnce.Do(func() {
		if c.done != nil {
			close(c.done)
		}
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.ch != nil && !c.ch.IsClosed() {
		if err := c.ch.Cancel(consumerTag, false); err != nil {
			c.logger.Warn("Failed to cancel RabbitMQ consumer", slog.Any("error", err))
		}
		_ = c.ch.Close()
	}
	if c.conn != nil && !c.conn.IsClosed() {
		return errors.WithStack(c.conn.Close())
	}

	return nil
}
