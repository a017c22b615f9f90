package service

import (
	"context"

	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/features/loyalty/domain"
	"coffee-checkout/internal/features/loyalty/ports"

	"go.uber.org/zap"
)

// LoyaltyService reads loyalty balances, degrading to a zero balance on any failure.
type LoyaltyService struct {
	provider ports.BalanceProvider
	log      *zap.Logger
}

// NewLoyaltyService creates a LoyaltyService. provider may be nil when no loyalty
// endpoint is configured.
func NewLoyaltyService(provider ports.BalanceProvider) *LoyaltyService {
	return &LoyaltyService{
		provider: provider,
		log:      logger.Named("loyalty"),
	}
}

// Balance returns the caller's balance, or a zero balance if it cannot be read.
func (s *LoyaltyService) Balance(ctx context.Context) domain.Balance {
	if s.provider == nil {
		return domain.Balance{}
	}

	balance, err := s.provider.Balance(ctx)
	if err != nil {
		s.log.Warn("Loyalty balance unavailable, using zero balance", zap.Error(err))
		return domain.Balance{}
	}

	if balance.Points < 0 {
		balance.Points = 0
	}
	return balance
}
