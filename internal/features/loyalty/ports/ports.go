package ports

import (
	"context"

	"coffee-checkout/internal/features/loyalty/domain"
)

// BalanceProvider fetches the caller's loyalty balance from the loyalty endpoint.
// The caller is identified by the auth token carried in ctx.
type BalanceProvider interface {
	Balance(ctx context.Context) (domain.Balance, error)
}

// LoyaltyService is the primary port; it never fails.
type LoyaltyService interface {
	Balance(ctx context.Context) domain.Balance
}
