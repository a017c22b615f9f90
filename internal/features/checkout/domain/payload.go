package domain

import (
	"time"

	cart "coffee-checkout/internal/features/cart/domain"

	"github.com/shopspring/decimal"
)

// ActionCreateOrder tags order payloads for the receiving channel.
const ActionCreateOrder = "create_order"

// OrderItem is the price snapshot of a cart line at submission time.
type OrderItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderPayload is the immutable order handed to the order channel.
type OrderPayload struct {
	Action         string          `json:"action"`
	IdempotencyKey string          `json:"idempotencyKey"`
	CreatedAt      time.Time       `json:"createdAt"`
	Contact        Contact         `json:"contact"`
	Delivery       Delivery        `json:"delivery"`
	Payment        Payment         `json:"payment"`
	Loyalty        Loyalty         `json:"loyalty"`
	Notes          string          `json:"notes"`
	Items          []OrderItem     `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
}

// BuildPayload assembles the order from the draft, the cart lines and their totals.
func BuildPayload(d Draft, items []cart.Item, totals Totals, idempotencyKey string, now time.Time) OrderPayload {
	lines := make([]OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return OrderPayload{
		Action:         ActionCreateOrder,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      now,
		Contact:        d.Contact,
		Delivery:       d.Delivery,
		Payment:        d.Payment,
		Loyalty:        d.Loyalty,
		Notes:          d.Notes,
		Items:          lines,
		Subtotal:       totals.Subtotal,
		DeliveryFee:    totals.DeliveryFee,
		Discount:       totals.Discount,
		Total:          totals.Total,
	}
}

// Ack is the order channel's acknowledgement.
type Ack struct {
	// Reference is the order id assigned by the receiver, if it returned one.
	Reference string
}
