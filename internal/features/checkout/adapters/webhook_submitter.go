package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coffee-checkout/internal/core/httpclient"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/features/checkout/domain"

	"go.uber.org/zap"
)

// IdempotencyHeader lets the receiver drop repeated deliveries of one order.
const IdempotencyHeader = "Idempotency-Key"

// ErrRejected is returned when the receiver refuses the order with a 4xx status.
var ErrRejected = errors.New("order rejected by receiver")

// WebhookSubmitter implements ports.OrderSubmitter by POSTing the order as JSON.
// Transport errors and 5xx responses are retried; any 2xx is an acknowledgement.
type WebhookSubmitter struct {
	client   *http.Client
	url      string
	attempts int
	backoff  time.Duration
	log      *zap.Logger
}

// NewWebhookSubmitter creates a new WebhookSubmitter.
func NewWebhookSubmitter(url string, attempts int, timeout time.Duration) *WebhookSubmitter {
	if attempts < 1 {
		attempts = 1
	}
	return &WebhookSubmitter{
		client:   httpclient.NewClient(timeout),
		url:      url,
		attempts: attempts,
		backoff:  500 * time.Millisecond,
		log:      logger.Named("submitter"),
	}
}

type ackBody struct {
	OrderID any `json:"order_id"`
}

// Submit delivers payload and returns the receiver's acknowledgement.
func (w *WebhookSubmitter) Submit(ctx context.Context, payload domain.OrderPayload) (domain.Ack, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Ack{}, fmt.Errorf("failed to marshal order: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= w.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return domain.Ack{}, ctx.Err()
			case <-time.After(w.backoff * time.Duration(attempt-1)):
			}
		}

		ack, retry, err := w.post(ctx, body, payload.IdempotencyKey)
		if err == nil {
			return ack, nil
		}
		lastErr = err

		w.log.Warn("Order delivery attempt failed",
			zap.Int("attempt", attempt),
			zap.String("idempotency_key", payload.IdempotencyKey),
			zap.Error(err),
		)
		if !retry {
			break
		}
	}

	return domain.Ack{}, lastErr
}

// post makes one delivery attempt and reports whether a failure may be retried.
func (w *WebhookSubmitter) post(ctx context.Context, body []byte, key string) (domain.Ack, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return domain.Ack{}, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(IdempotencyHeader, key)

	resp, err := w.client.Do(req)
	if err != nil {
		return domain.Ack{}, ctx.Err() == nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return domain.Ack{}, true, fmt.Errorf("order receiver returned status: %d", resp.StatusCode)
	case resp.StatusCode >= 300:
		return domain.Ack{}, false, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	return domain.Ack{Reference: reference(resp.Body)}, false, nil
}

// reference extracts the optional order_id from an acknowledgement body.
func reference(r io.Reader) string {
	dec := json.NewDecoder(io.LimitReader(r, 64<<10))
	dec.UseNumber()

	var ack ackBody
	if err := dec.Decode(&ack); err != nil || ack.OrderID == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(ack.OrderID))
}
