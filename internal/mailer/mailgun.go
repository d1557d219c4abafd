package mailer

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun sends through the Mailgun HTTP API.
type Mailgun struct {
	client  *mg.MailgunImpl
	sender  string
	timeout time.Duration
}

func NewMailgun(domain, apiKey, sender string, timeout time.Duration) *Mailgun {
	return &Mailgun{
		client:  mg.NewMailgun(domain, apiKey),
		sender:  sender,
		timeout: timeout,
	}
}

// SetAPIBase points the client at another endpoint, e.g. the EU region.
func (m *Mailgun) SetAPIBase(url string) {
	m.client.SetAPIBase(url)
}

func (m *Mailgun) Send(ctx context.Context, msg Message) error {
	message := m.client.NewMessage(m.sender, msg.Subject, msg.Body, msg.To)

	c, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if _, _, err := m.client.Send(c, message); err != nil {
		return fmt.Errorf("mailgun send to %q: %w", msg.To, err)
	}
	return nil
}
