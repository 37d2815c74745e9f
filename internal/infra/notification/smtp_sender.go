package notification

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mdr/config"
	"mdr/internal/domain/service"
	"mdr/internal/errors"

	"github.com/wneessen/go-mail"
)

const (
	defaultSMTPPort    = 25
	defaultSMTPTimeout = 10 * time.Second
)

type smtpSender struct {
	host    string
	from    string
	options []mail.Option
	logger  *slog.Logger
	deliver func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPSender builds a MailSender from the injected SMTP configuration.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.SMTP.From == "" {
		return nil, errors.New("smtp from address is required")
	}

	sender := &smtpSender{
		host:    cfg.SMTP.Host,
		from:    cfg.SMTP.From,
		options: smtpOptions(cfg.SMTP),
		logger:  logger,
	}
	sender.deliver = sender.dialAndSend

	if _, err := mail.NewClient(cfg.SMTP.Host, sender.options...); err != nil {
		return nil, errors.Wrap(err, "invalid smtp configuration")
	}

	return sender, nil
}

func smtpOptions(cfg *config.SMTPConfig) []mail.Option {
	port := cfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	policy := mail.TLSOpportunistic
	if cfg.RequireTLS {
		policy = mail.TLSMandatory
	}

	options := []mail.Option{
		mail.WithPort(port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(policy),
	}
	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	return options
}

// Send delivers an HTML mail. The context bounds the whole SMTP session.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return errors.New("mail header contains line breaks")
	}

	msg, err := s.buildMessage(to, subject, body)
	if err != nil {
		return err
	}

	if err := s.deliver(ctx, msg); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}

	s.logger.Debug("Mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

func (s *smtpSender) buildMessage(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextHTML, body)

	return msg, nil
}

func (s *smtpSender) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(s.host, s.options...)
	if err != nil {
		return errors.Wrap(err, "create smtp client")
	}

	return errors.WithStack(client.DialAndSendWithContext(ctx, msg))
}
