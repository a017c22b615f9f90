package ports

import (
	"context"

	"coffee-checkout/internal/features/cart/domain"
	menu "coffee-checkout/internal/features/menu/domain"
)

// CartRepository persists one cart per user.
type CartRepository interface {
	// Load returns the user's cart; a missing or unreadable cart is an empty cart.
	Load(ctx context.Context, userID int64) (*domain.Cart, error)
	Save(ctx context.Context, userID int64, cart *domain.Cart) error
	// Exists reports whether a record is stored, including an emptied cart.
	Exists(ctx context.Context, userID int64) (bool, error)
}

// ProductFinder resolves product ids against the current menu.
type ProductFinder interface {
	Find(ctx context.Context, id int) (menu.Product, bool)
}

// CartService is the primary port used by the cart handler.
type CartService interface {
	Get(ctx context.Context, userID int64) (domain.View, error)
	AddItem(ctx context.Context, userID int64, productID int) (domain.View, error)
	ChangeQuantity(ctx context.Context, userID int64, productID, delta int) (domain.View, error)
	RemoveItem(ctx context.Context, userID int64, productID int) (domain.View, error)
	Clear(ctx context.Context, userID int64, confirmed bool) (domain.View, error)
}
