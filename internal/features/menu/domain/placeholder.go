package domain

import "github.com/shopspring/decimal"

// PlaceholderProducts is the built-in menu served when the menu endpoint is unavailable.
func PlaceholderProducts() []Product {
	return []Product{
		{
			ID:           1,
			Name:         "Капучино",
			Description:  "Классический капучино с молоком и воздушной пенкой",
			Price:        decimal.NewFromInt(180),
			CategoryName: "coffee",
			Popular:      true,
		},
		{
			ID:            2,
			Name:          "Латте",
			Description:   "Нежный латте с молочной пенкой и сиропом на выбор",
			Price:         decimal.NewFromInt(190),
			DiscountPrice: decimal.NewNullDecimal(decimal.NewFromInt(170)),
			CategoryName:  "coffee",
			Popular:       true,
		},
		{
			ID:           3,
			Name:         "Американо",
			Description:  "Эспрессо, разбавленный горячей водой",
			Price:        decimal.NewFromInt(150),
			CategoryName: "coffee",
		},
		{
			ID:           4,
			Name:         "Раф лавандовый",
			Description:  "Сливочный раф с лавандовым сиропом",
			Price:        decimal.NewFromInt(240),
			CategoryName: "coffee",
			New:          true,
		},
		{
			ID:           5,
			Name:         "Круассан",
			Description:  "Сливочный круассан из слоёного теста",
			Price:        decimal.NewFromInt(120),
			CategoryName: "bakery",
		},
		{
			ID:            6,
			Name:          "Чизкейк",
			Description:   "Нью-Йорк чизкейк с ягодным соусом",
			Price:         decimal.NewFromInt(260),
			DiscountPrice: decimal.NewNullDecimal(decimal.NewFromInt(230)),
			CategoryName:  "desserts",
			New:           true,
		},
	}
}

// PlaceholderCategories matches PlaceholderProducts.
func PlaceholderCategories() []Category {
	return []Category{
		{Name: "coffee", Emoji: "☕"},
		{Name: "bakery", Emoji: "🥐"},
		{Name: "desserts", Emoji: "🍰"},
	}
}
