package mail

import (
	"context"
	"fmt"
	"log/slog"

	"helloteam.app/api/common/logger"
	"helloteam.app/api/internal/queue"
)

// Deliverer renders a queued message and sends it. It is the worker's
// processor.
type Deliverer struct {
	templates *Templates
	sender    Sender
	from      string
}

func NewDeliverer(templates *Templates, sender Sender, from string) *Deliverer {
	return &Deliverer{templates: templates, sender: sender, from: from}
}

func (d *Deliverer) Deliver(ctx context.Context, msg queue.Message) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TemplateID: logger.Ptr(string(msg.TemplateID)),
		UserID:     msg.UserID,
	})

	rendered, err := d.templates.Render(msg.TemplateID, msg.Data)
	if err != nil {
		return err
	}

	if err := d.sender.Send(ctx, Envelope{
		From:    d.from,
		To:      msg.Recipient,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
	}); err != nil {
		return fmt.Errorf("delivering %s: %w", msg.TemplateID, err)
	}

	slog.InfoContext(ctx, "mail delivered",
		"recipient", logger.MaskEmail(msg.Recipient),
		"attempt", msg.Attempt)
	return nil
}
