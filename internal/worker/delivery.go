package worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"groupbook.app/concierge/internal/queue"
)

// Deliverer pushes one outbound delivery to the chat platform.
type Deliverer interface {
	Deliver(ctx context.Context, d queue.Delivery) error
}

type WebhookConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// WebhookDeliverer POSTs delivery payloads to the chat platform's webhook:
// user messages to /messages/user/{id}, group messages to /messages/group/{id}.
type WebhookDeliverer struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewWebhookDeliverer(cfg WebhookConfig) *WebhookDeliverer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &WebhookDeliverer{
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
	}
}

func (w *WebhookDeliverer) Deliver(ctx context.Context, d queue.Delivery) error {
	url := fmt.Sprintf("%s/messages/%s/%s", w.baseURL, d.Kind, d.Recipient)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte(d.Payload)))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
