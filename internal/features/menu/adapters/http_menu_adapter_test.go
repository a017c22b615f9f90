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

func TestHTTPMenuAdapter_Products(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/menu", r.URL.Path)
		assert.Equal(t, "init-data", r.Header.Get(httpclient.AuthHeader))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"id":7,"name":"Флэт уайт","price":210,"discount_price":null,"category_name":"coffee","popular":true,"new":false}]`))
	}))
	defer server.Close()

	adapter := NewHTTPMenuAdapter(server.URL + "/api/")
	ctx := httpclient.WithAuthToken(context.Background(), "init-data")

	products, err := adapter.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 7, products[0].ID)
	assert.Equal(t, "210", products[0].Price.String())
	assert.True(t, products[0].Popular)
}

func TestHTTPMenuAdapter_Categories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/menu/categories", r.URL.Path)
		w.Write([]byte(`[{"name":"coffee","emoji":"☕"},{"name":"tea"}]`))
	}))
	defer server.Close()

	categories, err := NewHTTPMenuAdapter(server.URL).Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "☕", categories[0].Emoji)
	assert.Empty(t, categories[1].Emoji)
}

func TestHTTPMenuAdapter_Errors(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewHTTPMenuAdapter(server.URL).Products(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("Decode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"a list"}`))
		}))
		defer server.Close()

		_, err := NewHTTPMenuAdapter(server.URL).Products(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})

	t.Run("Transport", func(t *testing.T) {
		_, err := NewHTTPMenuAdapter("http://invalid-url-that-does-not-exist.local").Categories(context.Background())
		assert.Error(t, err)
	})
}
