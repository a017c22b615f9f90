package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a menu position as served by the menu endpoint.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Price is the regular price.
	Price decimal.Decimal `json:"price"`
	// DiscountPrice, when set and positive, replaces Price in the cart.
	DiscountPrice decimal.NullDecimal `json:"discount_price"`
	CategoryName  string              `json:"category_name"`
	ImageURL      string              `json:"image_url,omitempty"`
	Popular       bool                `json:"popular"`
	New           bool                `json:"new"`
}

// HasDiscount reports whether the product is sold below its regular price.
func (p Product) HasDiscount() bool {
	return p.DiscountPrice.Valid && p.DiscountPrice.Decimal.IsPositive()
}

// EffectivePrice is the unit price a cart uses for this product.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.HasDiscount() {
		return p.DiscountPrice.Decimal
	}
	return p.Price
}

// Category groups products on the menu.
type Category struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

// FilterKind narrows the menu to a product flag.
type FilterKind string

const (
	FilterAll      FilterKind = "all"
	FilterPopular  FilterKind = "popular"
	FilterNew      FilterKind = "new"
	FilterDiscount FilterKind = "discount"
)

// Filter selects products by category, free-text search and flag.
// Zero values match everything.
type Filter struct {
	Category string
	Search   string
	Kind     FilterKind
}

// Match reports whether p passes the filter.
func (f Filter) Match(p Product) bool {
	if f.Category != "" && f.Category != "all" && p.CategoryName != f.Category {
		return false
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	switch f.Kind {
	case FilterPopular:
		return p.Popular
	case FilterNew:
		return p.New
	case FilterDiscount:
		return p.HasDiscount()
	}
	return true
}

// Apply returns the products matching the filter, in menu order.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// FindProduct looks a product up by id.
func FindProduct(products []Product, id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
