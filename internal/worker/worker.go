// Package worker drains the outbound delivery stream and pushes messages to
// the chat platform, with retry and dead-lettering.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"groupbook.app/concierge/common/logger"
	"groupbook.app/concierge/internal/queue"
)

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer  *queue.RedisConsumer
	deliverer Deliverer
	cfg       Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer *queue.RedisConsumer, deliverer Deliverer, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		deliverer: deliverer,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "concierge.worker",
	})

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "delivery failed",
				"error", err,
				"message_id", msg.ID,
				"delivery_id", msg.Delivery.ID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in delivery",
				"panic", r,
				"message_id", msg.ID,
				"delivery_id", msg.Delivery.ID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

// ProcessMessage delivers one message and acks it. Exported so it can be
// reused by the reclaimer.
func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		DeliveryID: logger.Ptr(msg.Delivery.ID),
		MessageID:  logger.Ptr(msg.ID),
	})
	if msg.Delivery.Kind == queue.KindGroup {
		ctx = logger.WithLogFields(ctx, logger.LogFields{GroupID: logger.Ptr(msg.Delivery.Recipient)})
	} else {
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(msg.Delivery.Recipient)})
	}

	slog.InfoContext(ctx, "delivering message",
		"kind", msg.Delivery.Kind,
		"attempt", msg.Delivery.Attempt)

	if err := w.deliverer.Deliver(ctx, msg.Delivery); err != nil {
		return fmt.Errorf("deliver: %w", err)
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// The reclaimer will pick it up; a duplicate send is acceptable.
		slog.WarnContext(ctx, "failed to ACK message", "error", err)
	}

	slog.InfoContext(ctx, "message delivered")
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Delivery.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"delivery_id", msg.Delivery.ID,
			"attempts", msg.Delivery.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"delivery_id", msg.Delivery.ID,
		"attempt", msg.Delivery.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
