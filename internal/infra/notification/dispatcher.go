package notification

import (
	"context"
	"log/slog"

	"mdr/internal/domain/entity"
	"mdr/internal/domain/service"
	"mdr/internal/errors"
)

// logDispatcher writes link messages to the log instead of delivering them.
// Intended for local development only.
type logDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher returns a dispatcher that only logs.
func NewLogDispatcher(logger *slog.Logger) service.NotificationDispatcher {
	return &logDispatcher{logger: logger}
}

func (d *logDispatcher) SendLink(ctx context.Context, msg *entity.LinkMessage) error {
	d.logger.InfoContext(ctx, "[LogNotification] Link message",
		slog.String("purpose", msg.Purpose.String()),
		slog.String("to", msg.To),
		slog.String("link", msg.Link),
	)

	return nil
}

func (d *logDispatcher) Close() error {
	return nil
}

// mailDispatcher renders link messages and sends them synchronously.
type mailDispatcher struct {
	sender service.MailSender
	logger *slog.Logger
}

// NewMailDispatcher returns a dispatcher that sends each message through sender.
func NewMailDispatcher(sender service.MailSender, logger *slog.Logger) service.NotificationDispatcher {
	return &mailDispatcher{sender: sender, logger: logger}
}

func (d *mailDispatcher) SendLink(ctx context.Context, msg *entity.LinkMessage) error {
	mail, err := Render(msg)
	if err != nil {
		return err
	}

	if err := d.sender.Send(ctx, mail.To, mail.Subject, mail.Body); err != nil {
		d.logger.ErrorContext(ctx, "Failed to send link mail",
			slog.String("purpose", msg.Purpose.String()),
			slog.String("to", msg.To),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send link mail")
	}

	return nil
}

func (d *mailDispatcher) Close() error {
	return nil
}
