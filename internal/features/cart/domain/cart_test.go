package domain

import (
	"encoding/json"
	"testing"

	menu "coffee-checkout/internal/features/menu/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, price int64) menu.Product {
	return menu.Product{ID: id, Name: "p", Price: decimal.NewFromInt(price)}
}

func TestCart_Add(t *testing.T) {
	var c Cart
	c.Add(product(1, 180))
	c.Add(product(1, 180))
	c.Add(product(2, 190))

	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, 3, c.Count())
	assert.True(t, decimal.NewFromInt(550).Equal(c.Subtotal()))
}

func TestCart_AddUsesDiscountPrice(t *testing.T) {
	p := menu.Product{
		ID:            2,
		Name:          "Латте",
		Price:         decimal.NewFromInt(190),
		DiscountPrice: decimal.NewNullDecimal(decimal.NewFromInt(170)),
	}

	var c Cart
	c.Add(p)

	require.Len(t, c.Items, 1)
	assert.True(t, decimal.NewFromInt(170).Equal(c.Items[0].Price))
	require.True(t, c.Items[0].OriginalPrice.Valid)
	assert.True(t, decimal.NewFromInt(190).Equal(c.Items[0].OriginalPrice.Decimal))
}

func TestCart_ChangeQuantity(t *testing.T) {
	var c Cart
	c.Add(product(1, 100))

	assert.True(t, c.ChangeQuantity(1, 2))
	assert.Equal(t, 3, c.Items[0].Quantity)

	assert.True(t, c.ChangeQuantity(1, -3))
	assert.True(t, c.Empty(), "quantity zero removes the item")

	assert.False(t, c.ChangeQuantity(99, 1), "missing item is a no-op")
	assert.True(t, c.Empty())
}

func TestCart_Remove(t *testing.T) {
	var c Cart
	c.Add(product(1, 100))
	c.Add(product(2, 100))

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].ID)
}

func TestCart_Clear(t *testing.T) {
	var c Cart
	c.Add(product(1, 100))
	c.Clear()

	assert.True(t, c.Empty())
	assert.True(t, c.Subtotal().IsZero())
	assert.Zero(t, c.Count())
}

func TestCart_SubtotalIndependentOfOrder(t *testing.T) {
	var a, b Cart

	a.Add(product(1, 180))
	a.Add(product(2, 170))
	a.Add(product(2, 170))
	a.Add(product(3, 150))
	a.Remove(3)

	b.Add(product(3, 150))
	b.Add(product(2, 170))
	b.Add(product(1, 180))
	b.ChangeQuantity(2, 1)
	b.ChangeQuantity(3, -1)

	assert.True(t, decimal.NewFromInt(520).Equal(a.Subtotal()))
	assert.True(t, a.Subtotal().Equal(b.Subtotal()))
	assert.Equal(t, a.Count(), b.Count())
}

func TestCart_Normalize(t *testing.T) {
	c := Cart{Items: []Item{
		{ID: 1, Price: decimal.NewFromInt(100), Quantity: 1},
		{ID: 1, Price: decimal.NewFromInt(100), Quantity: 4},
		{ID: 2, Price: decimal.NewFromInt(100), Quantity: 0},
		{ID: 3, Price: decimal.NewFromInt(-5), Quantity: 1},
		{ID: 4, Price: decimal.NewFromInt(50), Quantity: 2},
	}}

	c.Normalize()

	require.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[0].ID)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 4, c.Items[1].ID)
}

func TestItem_JSON(t *testing.T) {
	var c Cart
	c.Add(product(1, 180))

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"originalPrice":null`)
	assert.Contains(t, string(raw), `"quantity":1`)
}
