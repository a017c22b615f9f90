package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coffee-checkout/internal/core/cache"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/features/cart/domain"

	"go.uber.org/zap"
)

// cartTTL bounds how long an abandoned cart is kept.
const cartTTL = 30 * 24 * time.Hour

// CacheCartRepository implements ports.CartRepository on top of the key-value store.
type CacheCartRepository struct {
	cache cache.Cache
}

// NewCacheCartRepository creates a new CacheCartRepository.
func NewCacheCartRepository(c cache.Cache) *CacheCartRepository {
	return &CacheCartRepository{
		cache: c,
	}
}

func cartKey(userID int64) string {
	return fmt.Sprintf("cart:%d", userID)
}

// Load retrieves the user's cart. Missing and corrupt carts load as empty.
func (r *CacheCartRepository) Load(ctx context.Context, userID int64) (*domain.Cart, error) {
	var c domain.Cart
	_, err := cache.GetJSON(ctx, r.cache, cartKey(userID), &c)
	if errors.Is(err, cache.ErrCorrupt) {
		logger.Get().Warn("Discarding unreadable cart", zap.Int64("user_id", userID), zap.Error(err))
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	c.Normalize()
	return &c, nil
}

// Save stores the whole cart.
func (r *CacheCartRepository) Save(ctx context.Context, userID int64, c *domain.Cart) error {
	if err := cache.PutJSON(ctx, r.cache, cartKey(userID), c, cartTTL); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Exists reports whether a cart record is stored for the user, empty or not.
func (r *CacheCartRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	_, err := r.cache.Get(ctx, cartKey(userID))
	if errors.Is(err, cache.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check cart: %w", err)
	}
	return true, nil
}
