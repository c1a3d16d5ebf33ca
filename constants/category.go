package constants

import (
	"strings"
)

type Category string

const (
	Appetizers Category = "Appetizers"
	Soups      Category = "Soups"
	Salads     Category = "Salads"
	Sandwiches Category = "Sandwiches"
	Burgers    Category = "Burgers"
	Pizza      Category = "Pizza"
	Pasta      Category = "Pasta"
	Entrees    Category = "Entrees"
	Seafood    Category = "Seafood"
	Sides      Category = "Sides"
	Desserts   Category = "Desserts"
	Beverages  Category = "Beverages"
	Alcohol    Category = "Alcohol"
	KidsMenu   Category = "KidsMenu"
	Specials   Category = "Specials"
	Other      Category = "Other"
)

var allCategories = []Category{
	Appetizers,
	Soups,
	Salads,
	Sandwiches,
	Burgers,
	Pizza,
	Pasta,
	Entrees,
	Seafood,
	Sides,
	Desserts,
	Beverages,
	Alcohol,
	KidsMenu,
	Specials,
	Other,
}

func AllCategories() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form category label from the model onto the enum.
// The second return is false when the label did not resolve and Other was used.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"starters":      Appetizers,
		"appetizer":     Appetizers,
		"small plates":  Appetizers,
		"soup":          Soups,
		"salad":         Salads,
		"sandwich":      Sandwiches,
		"wraps":         Sandwiches,
		"subs":          Sandwiches,
		"burger":        Burgers,
		"pizzas":        Pizza,
		"noodles":       Pasta,
		"mains":         Entrees,
		"main course":   Entrees,
		"main courses":  Entrees,
		"entree":        Entrees,
		"fish":          Seafood,
		"side":          Sides,
		"side dishes":   Sides,
		"dessert":       Desserts,
		"sweets":        Desserts,
		"drinks":        Beverages,
		"beverage":      Beverages,
		"soft drinks":   Beverages,
		"beer":          Alcohol,
		"wine":          Alcohol,
		"cocktails":     Alcohol,
		"kids":          KidsMenu,
		"kids menu":     KidsMenu,
		"children":      KidsMenu,
		"special":       Specials,
		"chef specials": Specials,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
