package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/email"
)

// emailClient matches go-pkgz/email Sender, extracted for tests
type emailClient interface {
	Send(text string, params email.Params) error
}

// SMTPParams holds SMTP connection settings for email delivery
type SMTPParams struct {
	Host     string
	Port     int // default 587
	User     string
	Password string
	TLS      bool
	From     string
	Timeout  time.Duration // default 10s
}

// SMTPSender delivers mention notifications over SMTP
type SMTPSender struct {
	client emailClient
	from   string
}

// NewSMTPSender creates a sender for the given SMTP endpoint
func NewSMTPSender(params SMTPParams) *SMTPSender {
	if params.Port == 0 {
		params.Port = 587
	}
	if params.Timeout == 0 {
		params.Timeout = 10 * time.Second
	}
	opts := []email.Option{
		email.Port(params.Port),
		email.TimeOut(params.Timeout),
		email.ContentType("text/plain"),
	}
	if params.User != "" {
		opts = append(opts, email.Auth(params.User, params.Password))
	}
	if params.TLS {
		opts = append(opts, email.TLS(true))
	}
	return &SMTPSender{client: email.NewSender(params.Host, opts...), from: params.From}
}

// SendEmail sends one mention notification to the tenant's configured address.
// The underlying sender has no context support, its own timeout bounds the call.
func (s *SMTPSender) SendEmail(_ context.Context, address, keyword, excerpt, link string) error {
	subject, text := emailContent(keyword, excerpt, link)
	if err := s.client.Send(text, email.Params{From: s.from, To: []string{address}, Subject: subject}); err != nil {
		return fmt.Errorf("send email to %s: %w", address, err)
	}
	return nil
}

// emailContent builds the notification subject and body
func emailContent(keyword, excerpt, link string) (subject, text string) {
	subject = fmt.Sprintf("Keyword mention: %s", keyword)
	text = fmt.Sprintf("Keyword %q mentioned:\n\n%s", keyword, excerpt)
	if link != "" {
		text += "\n\n" + link
	}
	return subject, text
}
