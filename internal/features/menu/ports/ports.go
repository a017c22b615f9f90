package ports

import (
	"context"

	"coffee-checkout/internal/features/menu/domain"
)

// MenuProvider fetches the menu from an external source.
// This is a Secondary Port (Driven Port).
type MenuProvider interface {
	// Products returns every product on the menu.
	Products(ctx context.Context) ([]domain.Product, error)
	// Categories returns the menu categories.
	Categories(ctx context.Context) ([]domain.Category, error)
}

// MenuService is the primary port used by handlers and the cart.
type MenuService interface {
	List(ctx context.Context, filter domain.Filter) []domain.Product
	Categories(ctx context.Context) []domain.Category
	Find(ctx context.Context, id int) (domain.Product, bool)
}
