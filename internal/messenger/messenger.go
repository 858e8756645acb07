// Package messenger enqueues outbound chat messages. Actual delivery to the
// chat platform happens asynchronously in the worker process.
package messenger

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"groupbook.app/concierge/common/id"
	"groupbook.app/concierge/internal/queue"
	"groupbook.app/concierge/internal/vote"
)

// UserPayload is the body delivered for direct user messages.
type UserPayload struct {
	Text string `json:"text"`
}

// Outbound satisfies both the dispatcher's UserSender and the vote session
// builder's GroupSender by pushing deliveries onto the outbound stream.
type Outbound struct {
	producer queue.Producer
}

func NewOutbound(producer queue.Producer) *Outbound {
	return &Outbound{producer: producer}
}

func (o *Outbound) SendToUser(ctx context.Context, userID, text string) error {
	body, err := json.Marshal(UserPayload{Text: text})
	if err != nil {
		return fmt.Errorf("marshal user payload: %w", err)
	}
	return o.enqueue(ctx, queue.KindUser, userID, body)
}

func (o *Outbound) SendToGroup(ctx context.Context, groupID string, payload vote.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal group payload: %w", err)
	}
	return o.enqueue(ctx, queue.KindGroup, groupID, body)
}

func (o *Outbound) enqueue(ctx context.Context, kind, recipient string, body []byte) error {
	d := queue.Delivery{
		ID:        id.New(),
		Kind:      kind,
		Recipient: recipient,
		Payload:   string(body),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		d.TraceID = sc.TraceID().String()
	}
	return o.producer.Enqueue(ctx, d)
}
