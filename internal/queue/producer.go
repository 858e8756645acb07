package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Delivery kinds.
const (
	KindUser  = "user"
	KindGroup = "group"
)

// Delivery is one outbound chat message waiting for the worker to push it
// to the chat platform. Payload is the JSON body to POST.
type Delivery struct {
	ID        int64
	Kind      string // "user" or "group"
	Recipient string // user id or group id
	Payload   string
	TraceID   string
	Attempt   int
}

type Producer interface {
	Enqueue(ctx context.Context, d Delivery) error
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

func (p *redisProducer) Enqueue(ctx context.Context, d Delivery) error {
	attempt := d.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := map[string]any{
		"delivery_id": d.ID,
		"kind":        d.Kind,
		"recipient":   d.Recipient,
		"payload":     d.Payload,
		"attempt":     attempt,
	}

	if d.TraceID != "" {
		fields["trace_id"] = d.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delivery: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued outbound delivery", "delivery_id", d.ID, "kind", d.Kind, "recipient", d.Recipient, "attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
