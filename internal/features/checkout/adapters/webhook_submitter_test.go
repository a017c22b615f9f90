package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"coffee-checkout/internal/core/httpclient"
	"coffee-checkout/internal/features/checkout/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() domain.OrderPayload {
	return domain.OrderPayload{
		Action:         domain.ActionCreateOrder,
		IdempotencyKey: "0b8f8a47-7d36-4b1c-9a56-1f3c2f0b1e11",
		Items:          []domain.OrderItem{{ID: 1, Name: "Капучино", Price: decimal.NewFromInt(180), Quantity: 1}},
		Subtotal:       decimal.NewFromInt(180),
		Total:          decimal.NewFromInt(180),
	}
}

func newSubmitter(url string, attempts int) *WebhookSubmitter {
	s := NewWebhookSubmitter(url, attempts, 2*time.Second)
	s.backoff = 0
	return s
}

func TestWebhookSubmitter_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "0b8f8a47-7d36-4b1c-9a56-1f3c2f0b1e11", r.Header.Get(IdempotencyHeader))
		assert.Equal(t, "init-data", r.Header.Get(httpclient.AuthHeader))

		var got domain.OrderPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, domain.ActionCreateOrder, got.Action)
		assert.Len(t, got.Items, 1)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"order_id": 4711}`))
	}))
	defer server.Close()

	ctx := httpclient.WithAuthToken(context.Background(), "init-data")
	ack, err := newSubmitter(server.URL, 3).Submit(ctx, testPayload())

	require.NoError(t, err)
	assert.Equal(t, "4711", ack.Reference)
}

func TestWebhookSubmitter_EmptyAck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	ack, err := newSubmitter(server.URL, 1).Submit(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Empty(t, ack.Reference)
}

func TestWebhookSubmitter_StringReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"order_id":"CB-204"}`))
	}))
	defer server.Close()

	ack, err := newSubmitter(server.URL, 1).Submit(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "CB-204", ack.Reference)
}

func TestWebhookSubmitter_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	keys := make(chan string, 3)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys <- r.Header.Get(IdempotencyHeader)
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"order_id":"77"}`))
	}))
	defer server.Close()

	ack, err := newSubmitter(server.URL, 3).Submit(context.Background(), testPayload())
	require.NoError(t, err)
	assert.Equal(t, "77", ack.Reference)
	assert.Equal(t, int32(3), calls.Load())

	close(keys)
	for key := range keys {
		assert.Equal(t, testPayload().IdempotencyKey, key, "every attempt carries the same key")
	}
}

func TestWebhookSubmitter_GivesUp(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newSubmitter(server.URL, 3).Submit(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookSubmitter_RejectedIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	_, err := newSubmitter(server.URL, 3).Submit(context.Background(), testPayload())
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWebhookSubmitter_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newSubmitter(url, 2).Submit(context.Background(), testPayload())
	assert.Error(t, err)
}
