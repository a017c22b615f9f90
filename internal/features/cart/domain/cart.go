package domain

import (
	menu "coffee-checkout/internal/features/menu/domain"

	"github.com/shopspring/decimal"
)

// Item is a product line in the cart. IDs are unique within a cart and
// Quantity is at least 1 while the item is present.
type Item struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	// OriginalPrice is the regular price when the item was added at a discount.
	OriginalPrice decimal.NullDecimal `json:"originalPrice"`
	Image         string              `json:"image,omitempty"`
}

// LineTotal is Price × Quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemFromProduct builds a single-quantity line priced at the product's effective price.
func ItemFromProduct(p menu.Product) Item {
	item := Item{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.EffectivePrice(),
		Quantity: 1,
		Image:    p.ImageURL,
	}
	if p.HasDiscount() {
		item.OriginalPrice = decimal.NewNullDecimal(p.Price)
	}
	return item
}

// Cart is the ordered list of selected items.
type Cart struct {
	Items []Item `json:"items"`
}

// Add increments the product's line, or appends a new line with quantity 1.
func (c *Cart) Add(p menu.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, ItemFromProduct(p))
}

// ChangeQuantity applies delta to the item's quantity, removing it at zero or below.
// It reports whether the item was present.
func (c *Cart) ChangeQuantity(id, delta int) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}

	c.Items[i].Quantity += delta
	if c.Items[i].Quantity <= 0 {
		c.removeAt(i)
	}
	return true
}

// Remove drops the item and reports whether it was present.
func (c *Cart) Remove(id int) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal is the sum of all line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.Items)
}

// Count is the total number of units in the cart.
func (c *Cart) Count() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// Empty reports whether the cart has no items.
func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

// Normalize drops lines that break the cart invariants: non-positive quantities,
// negative prices and repeated ids (the first occurrence wins).
func (c *Cart) Normalize() {
	seen := make(map[int]bool, len(c.Items))
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.Quantity < 1 || item.Price.IsNegative() || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		kept = append(kept, item)
	}
	c.Items = kept
}

func (c *Cart) index(id int) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// Subtotal sums price × quantity over items.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}
