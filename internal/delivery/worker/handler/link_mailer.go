package handler

import (
	"context"
	"log/slog"

	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/entity"
	"mdr/internal/domain/service"
	"mdr/internal/errors"
	"mdr/internal/infra/notification"
)

// LinkMailer renders link messages and hands them to the mail server.
// It is shared by the push endpoint and the queue consumer.
type LinkMailer struct {
	sender service.MailSender
	logger *slog.Logger
}

// NewLinkMailer creates a LinkMailer
func NewLinkMailer(sender service.MailSender, logger *slog.Logger) *LinkMailer {
	return &LinkMailer{
		sender: sender,
		logger: logger,
	}
}

// Deliver sends one link mail. Send failures are retryable, template failures are not.
func (m *LinkMailer) Deliver(ctx context.Context, msg *entity.LinkMessage) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

	mail, err := notification.Render(msg)
	if err != nil {
		return err
	}

	if err := m.sender.Send(ctx, mail.To, mail.Subject, mail.Body); err != nil {
		return newRetryableError(errors.Wrapf(err, "send %s mail", msg.Purpose))
	}

	logger.InfoContext(ctx, "[Worker] Link mail sent",
		slog.String("purpose", msg.Purpose.String()),
	)

	return nil
}
