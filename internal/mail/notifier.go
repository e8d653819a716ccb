package mail

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"helloteam.app/api/common/logger"
	"helloteam.app/api/internal/queue"
)

// Notifier hands an email to the delivery pipeline. It does not wait for
// the mail to be sent.
type Notifier interface {
	Send(ctx context.Context, templateID queue.TemplateID, recipient string, data map[string]string) error
}

type streamNotifier struct {
	producer  queue.Producer
	templates *Templates
}

func NewNotifier(producer queue.Producer, templates *Templates) Notifier {
	return &streamNotifier{producer: producer, templates: templates}
}

func (n *streamNotifier) Send(ctx context.Context, templateID queue.TemplateID, recipient string, data map[string]string) error {
	if !n.templates.Has(templateID) {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, templateID)
	}

	msg := queue.MailMessage{
		TemplateID: templateID,
		Recipient:  recipient,
		Data:       data,
	}
	if fields := logger.GetLogFields(ctx); fields.UserID != nil {
		msg.UserID = fields.UserID
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		traceID := sc.TraceID().String()
		msg.TraceID = &traceID
	}

	if err := n.producer.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("sending %s mail: %w", templateID, err)
	}
	return nil
}
