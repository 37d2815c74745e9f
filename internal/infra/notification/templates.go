package notification

import (
	"bytes"
	"html/template"

	"mdr/internal/domain/entity"
	"mdr/internal/errors"
)

// Mail is a rendered link message.
type Mail struct {
	To      string
	Subject string
	Body    string
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

var mailTemplates = map[entity.LinkPurpose]mailTemplate{
	entity.LinkPurposeAccountSetup: {
		subject: "Set Up Your Account",
		body: template.Must(template.New("account_setup").Parse(
			`<p>Hello {{.Username}},</p>` +
				`<p>An account has been created for you. Please set your password using the link below.</p>` +
				`<p><a href="{{.Link}}">Set up your account</a></p>` +
				`<p>This link expires in 24 hours.</p>`)),
	},
	entity.LinkPurposeConfirmEmail: {
		subject: "Confirm Your Email",
		body: template.Must(template.New("confirm_email").Parse(
			`<p>Hello {{.Username}},</p>` +
				`<p>Please confirm your email address by clicking the link below.</p>` +
				`<p><a href="{{.Link}}">Confirm email</a></p>`)),
	},
	entity.LinkPurposePasswordReset: {
		subject: "Reset Your Password",
		body: template.Must(template.New("password_reset").Parse(
			`<p>Hello {{.Username}},</p>` +
				`<p>A password reset was requested for your account. Use the link below to choose a new password.</p>` +
				`<p><a href="{{.Link}}">Reset password</a></p>` +
				`<p>This link expires in 1 hour. If you did not request it, you can ignore this email.</p>`)),
	},
	entity.LinkPurposeConfirmDeletion: {
		subject: "Confirm Account Deletion",
		body: template.Must(template.New("confirm_deletion").Parse(
			`<p>Hello {{.Username}},</p>` +
				`<p>We received a request to permanently delete your account. Confirm it using the link below.</p>` +
				`<p><a href="{{.Link}}">Delete my account</a></p>` +
				`<p>This link expires in 24 hours. If you did not request it, you can ignore this email.</p>`)),
	},
}

// Render turns a link message into a mail using the template for its purpose.
func Render(msg *entity.LinkMessage) (*Mail, error) {
	tmpl, ok := mailTemplates[msg.Purpose]
	if !ok {
		return nil, errors.Errorf("no mail template for purpose %q", msg.Purpose)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, msg); err != nil {
		return nil, errors.Wrapf(err, "render %s mail", msg.Purpose)
	}

	return &Mail{
		To:      msg.To,
		Subject: tmpl.subject,
		Body:    body.String(),
	}, nil
}
