package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffee-checkout/internal/core/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLoyaltyAdapter_Balance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/loyalty", r.URL.Path)
		assert.Equal(t, "signed-init-data", r.Header.Get(httpclient.AuthHeader))
		w.Write([]byte(`{"points":1530,"level":"Silver"}`))
	}))
	defer server.Close()

	ctx := httpclient.WithAuthToken(context.Background(), "signed-init-data")
	balance, err := NewHTTPLoyaltyAdapter(server.URL+"/api").Balance(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1530, balance.Points)
	require.NotNil(t, balance.Level)
	assert.Equal(t, "Silver", balance.Level.Name)
}

func TestHTTPLoyaltyAdapter_Errors(t *testing.T) {
	t.Run("NoToken", func(t *testing.T) {
		_, err := NewHTTPLoyaltyAdapter("http://unused.local").Balance(context.Background())
		assert.Error(t, err)
	})

	t.Run("Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		ctx := httpclient.WithAuthToken(context.Background(), "t")
		_, err := NewHTTPLoyaltyAdapter(server.URL).Balance(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("Decode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		ctx := httpclient.WithAuthToken(context.Background(), "t")
		_, err := NewHTTPLoyaltyAdapter(server.URL).Balance(ctx)
		assert.Error(t, err)
	})
}
