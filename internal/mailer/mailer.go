// Package mailer delivers plain-text messages through SMTP submission or the Mailgun API.
package mailer

import (
	"context"
	"fmt"

	"rolsa/internal/config"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends one message synchronously. Implementations do not retry.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New builds the transport selected by cfg.Driver.
func New(cfg config.MailConfig) (Mailer, error) {
	switch cfg.Driver {
	case config.MailDriverSMTP:
		return NewSMTP(cfg.SMTP, cfg.From, cfg.Timeout)
	case config.MailDriverMailgun:
		return NewMailgun(cfg.Mailgun.Domain, cfg.Mailgun.APIKey, cfg.From, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}
