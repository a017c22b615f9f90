package ports

import (
	"context"

	"coffee-checkout/internal/features/shop/domain"
)

// ShopService is the primary port used by the shop handler.
type ShopService interface {
	Status(ctx context.Context) domain.Status
}
