package service

import (
	"context"

	"mdr/internal/domain/entity"
)

// NotificationDispatcher delivers a link message to its recipient or to a queue
// that eventually does. A returned error means the message was not accepted.
type NotificationDispatcher interface {
	SendLink(ctx context.Context, msg *entity.LinkMessage) error

	// Close releases any resources held by the dispatcher
	Close() error
}

// MailSender sends a rendered mail.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
