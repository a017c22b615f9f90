package domain

import "github.com/shopspring/decimal"

// Notice is a one-shot message shown after a cart mutation.
type Notice string

const (
	NoticeItemAdded   Notice = "item_added"
	NoticeItemRemoved Notice = "item_removed"
	NoticeCartCleared Notice = "cart_cleared"
)

// View is the cart as returned to the page, with its derived figures.
type View struct {
	Items    []Item          `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Count    int             `json:"count"`
	Notice   Notice          `json:"notice,omitempty"`
}

// NewView derives the view of c.
func NewView(c *Cart, notice Notice) View {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return View{
		Items:    items,
		Subtotal: c.Subtotal(),
		Count:    c.Count(),
		Notice:   notice,
	}
}
