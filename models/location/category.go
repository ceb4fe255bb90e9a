package location

import (
	"fmt"
	"strings"
)

// Category is the kind of place a Location is. The set is closed.
type Category string

const (
	CategoryMall      Category = "mall"
	CategoryFoodCourt Category = "foodcourt"
	CategoryPark      Category = "park"
	CategoryTransit   Category = "transit"
	CategoryMarket    Category = "market"
	CategoryMuseum    Category = "museum"
	CategoryToll      Category = "toll"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryMall,
	CategoryFoodCourt,
	CategoryPark,
	CategoryTransit,
	CategoryMarket,
	CategoryMuseum,
	CategoryToll,
}

// ParseCategory converts untrusted input into a Category.
// The spellings "food-court" and "toll-plaza" are accepted as aliases.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mall":
		return CategoryMall, nil
	case "foodcourt", "food-court":
		return CategoryFoodCourt, nil
	case "park":
		return CategoryPark, nil
	case "transit":
		return CategoryTransit, nil
	case "market":
		return CategoryMarket, nil
	case "museum":
		return CategoryMuseum, nil
	case "toll", "toll-plaza":
		return CategoryToll, nil
	}
	return "", fmt.Errorf("unknown location category %q", s)
}

// Label returns the plural display label used by category filters.
func (c Category) Label() string {
	switch c {
	case CategoryMall:
		return "Malls"
	case CategoryFoodCourt:
		return "Food Courts"
	case CategoryPark:
		return "Parks"
	case CategoryTransit:
		return "Transit"
	case CategoryMarket:
		return "Markets"
	case CategoryMuseum:
		return "Museums"
	case CategoryToll:
		return "Toll Plazas"
	}
	panic(fmt.Sprintf("location: unknown category %q", string(c)))
}

// Icon returns the emoji shown next to the category.
func (c Category) Icon() string {
	switch c {
	case CategoryMall:
		return "🏬"
	case CategoryFoodCourt:
		return "🍕"
	case CategoryPark:
		return "🌳"
	case CategoryTransit:
		return "🚉"
	case CategoryMarket:
		return "🛒"
	case CategoryMuseum:
		return "🏛️"
	case CategoryToll:
		return "🛣️"
	}
	panic(fmt.Sprintf("location: unknown category %q", string(c)))
}

// CategoryInfo is the presentation record for a category.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
}
