package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coffee-checkout/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests pass through the logging middleware.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(1 * time.Second)
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests surface the error.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(1 * time.Second)
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

// TestAuthForwarding verifies that the context token reaches the backend.
func TestAuthForwarding(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(AuthHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	client := NewClient(1 * time.Second)

	t.Run("WithToken", func(t *testing.T) {
		ctx := WithAuthToken(context.Background(), "query_id=1&hash=abc")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "query_id=1&hash=abc", got)
		assert.Empty(t, req.Header.Get(AuthHeader), "caller's request must stay untouched")
	})

	t.Run("WithoutToken", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, got)
	})
}

func TestAuthToken(t *testing.T) {
	assert.Empty(t, AuthToken(context.Background()))
	assert.Equal(t, "tok", AuthToken(WithAuthToken(context.Background(), "tok")))
}
