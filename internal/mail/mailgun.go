package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"

	"helloteam.app/api/core/config"
)

type mailgunSender struct {
	client *mailgun.MailgunImpl
}

// NewMailgunSender delivers through the Mailgun HTTP API instead of SMTP.
func NewMailgunSender(cfg config.MailConfig) (Sender, error) {
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		return nil, errors.New("mailgun requires MAILGUN_DOMAIN and MAILGUN_API_KEY")
	}
	client := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunAPIBase != "" {
		client.SetAPIBase(cfg.MailgunAPIBase)
	}
	return &mailgunSender{client: client}, nil
}

func (s *mailgunSender) Send(ctx context.Context, env Envelope) error {
	msg := s.client.NewMessage(env.From, env.Subject, "", env.To)
	msg.SetHtml(env.HTML)

	if _, _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending through mailgun: %w", err)
	}
	return nil
}
