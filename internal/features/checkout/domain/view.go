package domain

import (
	"time"

	cart "coffee-checkout/internal/features/cart/domain"
	loyalty "coffee-checkout/internal/features/loyalty/domain"

	"github.com/shopspring/decimal"
)

// SavedContact is the phone and email kept for prefilling the next checkout.
type SavedContact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// LoyaltyState is the balance the draft may spend from.
type LoyaltyState struct {
	Available   int            `json:"available"`
	MaxDiscount int            `json:"maxDiscount"`
	Level       *loyalty.Level `json:"level,omitempty"`
}

// View is the checkout as rendered by the page, totals included.
type View struct {
	Step          int          `json:"step"`
	Draft         Draft        `json:"draft"`
	Items         []cart.Item  `json:"items"`
	Totals        Totals       `json:"totals"`
	Loyalty       LoyaltyState `json:"loyalty"`
	PickupAddress string       `json:"pickupAddress"`
	Notice        Notice       `json:"notice,omitempty"`
	// Block is set when the last forward move was refused.
	Block *Block `json:"block,omitempty"`
	// Exit is set when back was requested on the first step.
	Exit bool `json:"exit,omitempty"`
}

// Confirmation is returned once the order channel has acknowledged the order.
type Confirmation struct {
	OrderNumber string          `json:"orderNumber"`
	Reference   string          `json:"reference,omitempty"`
	Total       decimal.Decimal `json:"total"`
	Items       []OrderItem     `json:"items"`
	PlacedAt    time.Time       `json:"placedAt"`
}
