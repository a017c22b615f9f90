package service

import (
	"context"
	"time"

	"coffee-checkout/internal/core/cache"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/features/menu/domain"
	"coffee-checkout/internal/features/menu/ports"

	"go.uber.org/zap"
)

const (
	productsKey   = "menu:products"
	categoriesKey = "menu:categories"
)

// MenuService serves the menu, reusing fetched data for a while and degrading to the
// built-in menu when the endpoint is missing or failing. It never returns an error.
type MenuService struct {
	provider ports.MenuProvider
	cache    cache.Cache
	ttl      time.Duration
	log      *zap.Logger
}

// NewMenuService creates a MenuService. provider may be nil, in which case the
// built-in menu is always served.
func NewMenuService(provider ports.MenuProvider, c cache.Cache, ttl time.Duration) *MenuService {
	return &MenuService{
		provider: provider,
		cache:    c,
		ttl:      ttl,
		log:      logger.Named("menu"),
	}
}

// Products returns the whole menu.
func (s *MenuService) Products(ctx context.Context) []domain.Product {
	return load(ctx, s, productsKey, domain.PlaceholderProducts, func(ctx context.Context) ([]domain.Product, error) {
		return s.provider.Products(ctx)
	})
}

// List returns the products matching filter.
func (s *MenuService) List(ctx context.Context, filter domain.Filter) []domain.Product {
	return filter.Apply(s.Products(ctx))
}

// Categories returns the menu categories.
func (s *MenuService) Categories(ctx context.Context) []domain.Category {
	return load(ctx, s, categoriesKey, domain.PlaceholderCategories, func(ctx context.Context) ([]domain.Category, error) {
		return s.provider.Categories(ctx)
	})
}

// Find looks a product up by id.
func (s *MenuService) Find(ctx context.Context, id int) (domain.Product, bool) {
	return domain.FindProduct(s.Products(ctx), id)
}

// load reads key from the cache, then the provider, then falls back.
// Only provider results are cached; fallbacks are retried on the next call.
func load[T any](ctx context.Context, s *MenuService, key string, fallback func() []T, fetch func(context.Context) ([]T, error)) []T {
	if s.provider == nil {
		return fallback()
	}

	var cached []T
	found, err := cache.GetJSON(ctx, s.cache, key, &cached)
	if err != nil {
		s.log.Warn("Menu cache read failed", zap.String("key", key), zap.Error(err))
	}
	if found {
		return cached
	}

	fresh, err := fetch(ctx)
	if err != nil || len(fresh) == 0 {
		s.log.Warn("Menu endpoint unavailable, serving built-in menu",
			zap.String("key", key),
			zap.Error(err),
		)
		return fallback()
	}

	if err := cache.PutJSON(ctx, s.cache, key, fresh, s.ttl); err != nil {
		s.log.Warn("Menu cache write failed", zap.String("key", key), zap.Error(err))
	}
	return fresh
}
