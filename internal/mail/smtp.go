package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"helloteam.app/api/core/config"
)

type Envelope struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers one rendered email.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}

// NewSender picks the delivery backend named by cfg.Provider.
func NewSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.Provider {
	case config.MailProviderMailgun:
		return NewMailgunSender(cfg)
	case config.MailProviderSMTP, "":
		return NewSMTPSender(cfg)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

type smtpSender struct {
	client *gomail.Client
}

func NewSMTPSender(cfg config.MailConfig) (Sender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTPPort),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(10 * time.Second),
	}
	if cfg.SMTPAuthEnabled() {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTPUsername),
			gomail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := gomail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}
	return &smtpSender{client: client}, nil
}

func (s *smtpSender) Send(ctx context.Context, env Envelope) error {
	msg, err := newMessage(env)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending over smtp: %w", err)
	}
	return nil
}

func newMessage(env Envelope) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(env.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", env.From, err)
	}
	if err := msg.To(env.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(env.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextHTML, env.HTML)
	return msg, nil
}
