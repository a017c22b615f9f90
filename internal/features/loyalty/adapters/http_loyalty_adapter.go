package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coffee-checkout/internal/core/httpclient"
	"coffee-checkout/internal/features/loyalty/domain"
)

// HTTPLoyaltyAdapter implements ports.BalanceProvider against the loyalty REST endpoint.
type HTTPLoyaltyAdapter struct {
	client  *http.Client
	baseURL string
}

// NewHTTPLoyaltyAdapter creates a new instance of HTTPLoyaltyAdapter.
func NewHTTPLoyaltyAdapter(baseURL string) *HTTPLoyaltyAdapter {
	return &HTTPLoyaltyAdapter{
		client:  httpclient.NewClient(5 * time.Second),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Balance fetches GET {base}/user/loyalty on behalf of the token in ctx.
func (a *HTTPLoyaltyAdapter) Balance(ctx context.Context) (domain.Balance, error) {
	if httpclient.AuthToken(ctx) == "" {
		return domain.Balance{}, fmt.Errorf("loyalty lookup requires an auth token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/user/loyalty", nil)
	if err != nil {
		return domain.Balance{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.Balance{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Balance{}, fmt.Errorf("loyalty API returned status: %d", resp.StatusCode)
	}

	var balance domain.Balance
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return domain.Balance{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return balance, nil
}
