package worker

import (
	"context"

	"helloteam.app/api/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// Deliverer sends one email. mail.Deliverer is the production implementation.
type Deliverer interface {
	Deliver(ctx context.Context, msg queue.Message) error
}
