package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/internal/llm"
)

func TestParseModifierOptionPriceExtraction(t *testing.T) {
	tests := []struct {
		raw       string
		wantName  string
		wantPrice float64
		hasPrice  bool
	}{
		{"Extra cheese (+$2)", "Extra cheese", 2, true},
		{"No onions", "No onions", 0, false},
		{"Bacon +$1.50", "Bacon", 1.50, true},
		{"Avocado ($3.25)", "Avocado", 3.25, true},
		{"+$0.75 Sauce", "Sauce", 0.75, true},
		{"Grilled chicken +4", "Grilled chicken", 4, true},
		{"2 Liter Soda", "2 Liter Soda", 0, false},
		{"Add shrimp $6", "Add shrimp", 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			opt := ParseModifierOption(tt.raw)
			assert.Equal(t, tt.wantName, opt.Name)
			if tt.hasPrice {
				require.NotNil(t, opt.Price)
				assert.InDelta(t, tt.wantPrice, *opt.Price, 0.001)
			} else {
				assert.Nil(t, opt.Price)
			}
		})
	}
}

func TestParsePriceFallbacks(t *testing.T) {
	assert.Equal(t, 12.5, ParsePrice("12.50"))
	assert.Equal(t, 12.5, ParsePrice("$12.50"))
	assert.Equal(t, 1250.0, ParsePrice("1,250"))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice("market price"))
	assert.Equal(t, 0.0, ParsePrice("-4"))
}

func TestPlanDeduplicatesAgainstExistingNames(t *testing.T) {
	items := []llm.ExtractedItem{
		{Name: "Pad Thai", Category: "Entrees"},
		{Name: "  pad thai  ", Category: "Entrees"}, // batch-internal dup
		{Name: "Green Curry", Category: "Entrees"},
		{Name: "Spring Rolls", Category: "Appetizers"},
	}
	existing := []string{"Spring Rolls", "TOM YUM SOUP"}

	plan := Plan(items, existing, nil)

	require.Len(t, plan.Items, 2)
	assert.Equal(t, "Pad Thai", plan.Items[0].Name)
	assert.Equal(t, "Green Curry", plan.Items[1].Name)
	assert.Equal(t, 2, plan.Duplicates)
}

func TestPlanIsIdempotentAcrossRuns(t *testing.T) {
	items := []llm.ExtractedItem{
		{Name: "Margherita", Category: "Pizza"},
		{Name: "Pepperoni", Category: "Pizza"},
	}

	first := Plan(items, nil, nil)
	require.Len(t, first.Items, 2)

	// second run sees the first run's names as persisted
	persisted := []string{"Margherita", "Pepperoni"}
	second := Plan(items, persisted, nil)
	assert.Empty(t, second.Items)
	assert.Equal(t, 2, second.Duplicates)
}

func TestPlanSizeDefaults(t *testing.T) {
	items := []llm.ExtractedItem{
		{Name: "House Salad", Category: "Salads"}, // no sizes at all
		{
			Name:     "Lemonade",
			Category: "Beverages",
			Sizes: []llm.SizeEntry{
				{Size: "", Price: "3.00"},
				{Size: "Large", Price: "market"},
			},
		},
	}

	plan := Plan(items, nil, nil)
	require.Len(t, plan.Items, 2)

	assert.Empty(t, plan.Items[0].Sizes, "no declared sizes means no size rows")

	sizes := plan.Items[1].Sizes
	require.Len(t, sizes, 2)
	assert.Equal(t, constants.DefaultSize, sizes[0].Size)
	assert.Equal(t, 3.0, sizes[0].Price)
	assert.Equal(t, "Large", sizes[1].Size)
	assert.Equal(t, 0.0, sizes[1].Price, "unparseable price degrades to 0.00")
}

func TestPlanCanonicalizesCategories(t *testing.T) {
	items := []llm.ExtractedItem{
		{Name: "Seasonal Gnocchi", Category: "main courses"},
		{Name: "Mystery Dish", Category: "weird label"},
	}

	plan := Plan(items, nil, nil)
	require.Len(t, plan.Items, 2)
	assert.Equal(t, constants.Entrees, plan.Items[0].Subcategory)
	assert.Equal(t, constants.Other, plan.Items[1].Subcategory)
}

func TestPlanSkipsEmptyNamesAndOptions(t *testing.T) {
	items := []llm.ExtractedItem{
		{Name: "   ", Category: "Entrees"},
		{
			Name:     "Burrito",
			Category: "Entrees",
			Modifiers: []llm.ModifierEntry{
				{GroupName: "Add-ons", Options: []string{"Guac (+$2)", "  "}},
				{GroupName: "", Options: []string{"orphaned"}},
			},
		},
	}

	plan := Plan(items, nil, nil)
	require.Len(t, plan.Items, 1)
	require.Len(t, plan.Items[0].Modifiers, 1)
	opts := plan.Items[0].Modifiers[0].Options
	require.Len(t, opts, 1)
	assert.Equal(t, "Guac", opts[0].Name)
}
