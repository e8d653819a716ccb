package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"helloteam.app/api/common/logger"
)

type Producer interface {
	Enqueue(ctx context.Context, msg MailMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg MailMessage) error {
	values, err := mailValues(msg)
	if err != nil {
		return err
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue mail: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued mail",
		"template_id", msg.TemplateID,
		"recipient", logger.MaskEmail(msg.Recipient),
		"attempt", values["attempt"])
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

func mailValues(msg MailMessage) (map[string]any, error) {
	attempt := msg.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	data := msg.Data
	if data == nil {
		data = map[string]string{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding mail data: %w", err)
	}

	values := map[string]any{
		"template_id": string(msg.TemplateID),
		"recipient":   msg.Recipient,
		"data":        string(encoded),
		"attempt":     attempt,
	}
	if msg.UserID != nil {
		values["user_id"] = *msg.UserID
	}
	if msg.TraceID != nil && *msg.TraceID != "" {
		values["trace_id"] = *msg.TraceID
	}
	return values, nil
}
