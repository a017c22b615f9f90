package domain

import (
	cart "coffee-checkout/internal/features/cart/domain"

	"github.com/shopspring/decimal"
)

// Pricing holds the fee and threshold rules of the shop.
type Pricing struct {
	DeliveryFee      decimal.Decimal
	FreeDeliveryFrom decimal.Decimal
	MinOrder         decimal.Decimal
}

// NewPricing builds Pricing from whole currency amounts.
func NewPricing(deliveryFee, freeDeliveryFrom, minOrder int) Pricing {
	return Pricing{
		DeliveryFee:      decimal.NewFromInt(int64(deliveryFee)),
		FreeDeliveryFrom: decimal.NewFromInt(int64(freeDeliveryFrom)),
		MinOrder:         decimal.NewFromInt(int64(minOrder)),
	}
}

// Totals are always derived from the cart and the draft, never stored on their own.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	// Discount is the loyalty discount actually applied, at most Subtotal + DeliveryFee.
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Fee returns the delivery fee for the delivery type and subtotal.
func (p Pricing) Fee(t DeliveryType, subtotal decimal.Decimal) decimal.Decimal {
	if t != DeliveryDelivery || subtotal.GreaterThanOrEqual(p.FreeDeliveryFrom) {
		return decimal.Zero
	}
	return p.DeliveryFee
}

// Totals computes subtotal, fee, discount and total for items under d.
func (p Pricing) Totals(items []cart.Item, d Draft) Totals {
	subtotal := cart.Subtotal(items)
	fee := p.Fee(d.Delivery.Type, subtotal)
	gross := subtotal.Add(fee)

	discount := decimal.NewFromInt(int64(d.Loyalty.Discount))
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	discount = decimal.Min(discount, gross)

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Discount:    discount,
		Total:       gross.Sub(discount),
	}
}

// MeetsMinimum reports whether subtotal reaches the minimum order amount.
func (p Pricing) MeetsMinimum(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(p.MinOrder)
}
