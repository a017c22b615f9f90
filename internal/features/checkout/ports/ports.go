package ports

import (
	"context"
	"time"

	"coffee-checkout/internal/core/identity"
	cart "coffee-checkout/internal/features/cart/domain"
	"coffee-checkout/internal/features/checkout/domain"
	loyalty "coffee-checkout/internal/features/loyalty/domain"
)

// CartStore reads and resets the user's cart. Implemented by the cart service.
type CartStore interface {
	Items(ctx context.Context, userID int64) ([]cart.Item, error)
	// Stored reports whether a cart record exists. An emptied cart is stored.
	Stored(ctx context.Context, userID int64) (bool, error)
	Restore(ctx context.Context, userID int64, items []cart.Item) error
	Reset(ctx context.Context, userID int64) error
}

// DraftRepository stores one recovery snapshot per user.
type DraftRepository interface {
	// Load returns nil when there is no readable snapshot.
	Load(ctx context.Context, userID int64) (*domain.Snapshot, error)
	Save(ctx context.Context, userID int64, s domain.Snapshot, ttl time.Duration) error
	Delete(ctx context.Context, userID int64) error
}

// ContactRepository stores the opt-in phone and email prefill.
type ContactRepository interface {
	Load(ctx context.Context, userID int64) (domain.SavedContact, bool, error)
	Save(ctx context.Context, userID int64, c domain.SavedContact) error
}

// HistoryRepository keeps the most recent orders, newest first.
type HistoryRepository interface {
	List(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
	Prepend(ctx context.Context, userID int64, e domain.HistoryEntry, limit int) error
}

// LoyaltyReader reads the caller's balance. Implemented by the loyalty service.
type LoyaltyReader interface {
	Balance(ctx context.Context) loyalty.Balance
}

// OrderSubmitter delivers an order and waits for its acknowledgement.
type OrderSubmitter interface {
	Submit(ctx context.Context, payload domain.OrderPayload) (domain.Ack, error)
}

// Locker guards against concurrent submissions of the same checkout.
type Locker interface {
	// Acquire reports false when the key is already held. The returned token
	// identifies this holder.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// Release frees the key only while token still holds it.
	Release(ctx context.Context, key, token string) error
}

// CheckoutService is the primary port used by the checkout handler.
type CheckoutService interface {
	Begin(ctx context.Context, id *identity.Identity) (domain.View, error)
	Get(ctx context.Context, userID int64) (domain.View, error)
	UpdateContact(ctx context.Context, userID int64, in domain.ContactInput) (domain.View, error)
	UpdateDelivery(ctx context.Context, userID int64, in domain.DeliveryInput) (domain.View, error)
	SetPaymentMethod(ctx context.Context, userID int64, m domain.PaymentMethod) (domain.View, error)
	UsePoints(ctx context.Context, userID int64, points int) (domain.View, error)
	SetNotes(ctx context.Context, userID int64, notes string) (domain.View, error)
	SetAgreements(ctx context.Context, userID int64, in domain.AgreementsInput) (domain.View, error)
	Next(ctx context.Context, userID int64) (domain.View, error)
	Back(ctx context.Context, userID int64) (domain.View, error)
	Submit(ctx context.Context, userID int64) (domain.Confirmation, error)
	History(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
}
