package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/fanattics-portal/internal/domain/port/core"
	mg "github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

// Options configures the Mailgun client
type Options struct {
	Domain  string
	APIKey  string
	Sender  string
	APIBase string // empty selects the US endpoint
}

// Mailgun sends email through the Mailgun API
type Mailgun struct {
	client *mg.MailgunImpl
	sender string
	logger coreport.Logger
}

// NewMailgun creates a Mailgun sender
func NewMailgun(opts Options, logger coreport.Logger) (*Mailgun, error) {
	if opts.Domain == "" || opts.APIKey == "" || opts.Sender == "" {
		return nil, errors.New("mailgun domain, api key and sender are required")
	}

	client := mg.NewMailgun(opts.Domain, opts.APIKey)
	if opts.APIBase != "" {
		client.SetAPIBase(opts.APIBase)
	}
	return &Mailgun{client: client, sender: opts.Sender, logger: logger}, nil
}

// Send sends an email. html is optional; when set it is used as the HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	msg := m.client.NewMessage(m.sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := m.client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}

	m.logger.Debug("Email accepted by Mailgun", map[string]any{"message_id": id, "subject": subject})
	return nil
}
