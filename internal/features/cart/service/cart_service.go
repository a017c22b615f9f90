package service

import (
	"context"
	"errors"
	"sync"

	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/features/cart/domain"
	"coffee-checkout/internal/features/cart/ports"

	"go.uber.org/zap"
)

// ErrConfirmationRequired is returned by Clear when the caller has not confirmed.
var ErrConfirmationRequired = errors.New("clearing the cart requires confirmation")

// CartService owns every cart mutation. Each mutation persists the whole cart.
type CartService struct {
	repo     ports.CartRepository
	products ports.ProductFinder
	log      *zap.Logger

	// mu serializes load-modify-save cycles.
	mu sync.Mutex
}

// NewCartService creates a new instance of CartService.
func NewCartService(repo ports.CartRepository, products ports.ProductFinder) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		log:      logger.Named("cart"),
	}
}

// Get returns the user's cart.
func (s *CartService) Get(ctx context.Context, userID int64) (domain.View, error) {
	c, err := s.repo.Load(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}
	return domain.NewView(c, ""), nil
}

// AddItem adds one unit of the product. Unknown products leave the cart unchanged.
func (s *CartService) AddItem(ctx context.Context, userID int64, productID int) (domain.View, error) {
	product, ok := s.products.Find(ctx, productID)
	if !ok {
		s.log.Debug("Ignoring unknown product", zap.Int("product_id", productID))
		return s.Get(ctx, userID)
	}

	return s.mutate(ctx, userID, func(c *domain.Cart) (domain.Notice, bool) {
		c.Add(product)
		return domain.NoticeItemAdded, true
	})
}

// ChangeQuantity applies delta to the item, removing it when it reaches zero.
func (s *CartService) ChangeQuantity(ctx context.Context, userID int64, productID, delta int) (domain.View, error) {
	return s.mutate(ctx, userID, func(c *domain.Cart) (domain.Notice, bool) {
		return "", c.ChangeQuantity(productID, delta)
	})
}

// RemoveItem drops the item from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID int64, productID int) (domain.View, error) {
	return s.mutate(ctx, userID, func(c *domain.Cart) (domain.Notice, bool) {
		if !c.Remove(productID) {
			return "", false
		}
		return domain.NoticeItemRemoved, true
	})
}

// Clear empties the cart once the user has confirmed.
func (s *CartService) Clear(ctx context.Context, userID int64, confirmed bool) (domain.View, error) {
	if !confirmed {
		return domain.View{}, ErrConfirmationRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, userID, &domain.Cart{}); err != nil {
		return domain.View{}, err
	}
	return domain.NewView(&domain.Cart{}, domain.NoticeCartCleared), nil
}

// Items returns the cart lines, for checkout.
func (s *CartService) Items(ctx context.Context, userID int64) ([]domain.Item, error) {
	c, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

// Restore replaces the cart with items recovered from a checkout draft.
func (s *CartService) Restore(ctx context.Context, userID int64, items []domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &domain.Cart{Items: append([]domain.Item(nil), items...)}
	c.Normalize()
	return s.repo.Save(ctx, userID, c)
}

// Reset empties the cart after a successful order.
func (s *CartService) Reset(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Save(ctx, userID, &domain.Cart{})
}

// Stored reports whether the user has a cart record. An emptied cart is
// still stored; only a cart that was never saved or has expired is not.
func (s *CartService) Stored(ctx context.Context, userID int64) (bool, error) {
	return s.repo.Exists(ctx, userID)
}

// mutate loads the cart, applies fn and saves only when fn reports a change.
func (s *CartService) mutate(ctx context.Context, userID int64, fn func(*domain.Cart) (domain.Notice, bool)) (domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.Load(ctx, userID)
	if err != nil {
		return domain.View{}, err
	}

	notice, changed := fn(c)
	if !changed {
		return domain.NewView(c, ""), nil
	}

	if err := s.repo.Save(ctx, userID, c); err != nil {
		return domain.View{}, err
	}
	return domain.NewView(c, notice), nil
}
