package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coffee-checkout/internal/core/httpclient"
	"coffee-checkout/internal/features/menu/domain"
)

// HTTPMenuAdapter implements ports.MenuProvider against the menu REST endpoint.
type HTTPMenuAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the API root, e.g. https://shop.example.com/api.
	baseURL string
}

// NewHTTPMenuAdapter creates a new instance of HTTPMenuAdapter.
func NewHTTPMenuAdapter(baseURL string) *HTTPMenuAdapter {
	return &HTTPMenuAdapter{
		client:  httpclient.NewClient(5 * time.Second),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Products fetches GET {base}/menu.
func (a *HTTPMenuAdapter) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := a.getJSON(ctx, "/menu", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories fetches GET {base}/menu/categories.
func (a *HTTPMenuAdapter) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := a.getJSON(ctx, "/menu/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (a *HTTPMenuAdapter) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("menu API %s returned status: %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
