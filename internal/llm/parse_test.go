package llm

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/internal/common"
)

func itemSchema() map[string]any {
	return BuildItemJSONSchema(constants.AllCategories())
}

func sampleItems(n int) string {
	out := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"name":"Item %d","category":"Entrees","sizes":[{"size":"Regular","price":"9.50"}]}`, i)
	}
	return out + "]"
}

func TestParseItemsBareArray(t *testing.T) {
	items, err := ParseItems(itemSchema(), sampleItems(3))
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Item 0", items[0].Name)
	assert.Equal(t, "Entrees", items[0].Category)
	assert.Equal(t, "9.50", items[0].Sizes[0].Price)
}

func TestParseItemsObjectWrapper(t *testing.T) {
	raw := `{"items": [{"name":"Tiramisu","category":"Desserts"}]}`
	items, err := ParseItems(itemSchema(), raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tiramisu", items[0].Name)
}

func TestParseItemsStripsCodeFences(t *testing.T) {
	for _, fence := range []string{"```json\n%s\n```", "```\n%s\n```", "%s"} {
		raw := fmt.Sprintf(fence, sampleItems(2))
		items, err := ParseItems(itemSchema(), raw)
		require.NoError(t, err, "fence %q", fence)
		assert.Len(t, items, 2)
	}
}

func TestParseItemsTruncationRepairRoundTrip(t *testing.T) {
	complete := sampleItems(4)
	// cut mid-way through a fifth, incomplete object
	truncated := complete[:len(complete)-1] + `,{"name":"Cut Off","cat`

	items, err := ParseItems(itemSchema(), truncated)
	require.NoError(t, err)
	assert.Len(t, items, 4, "exactly the complete leading items survive")
	assert.Equal(t, "Item 3", items[3].Name)
}

func TestParseItemsUnrecoverableOutput(t *testing.T) {
	_, err := ParseItems(itemSchema(), "Sorry, I could not read the menu.")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrParse)
	assert.Contains(t, err.Error(), "could not read the menu", "offending text is captured")
}

func TestParseItemsRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing name", `[{"category":"Entrees"}]`},
		{"missing category", `[{"name":"Burger"}]`},
		{"category outside enum", `[{"name":"Burger","category":"Lunch Stuff"}]`},
		{"unknown field", `[{"name":"Burger","category":"Burgers","price":"9"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItems(itemSchema(), tt.raw)
			assert.ErrorIs(t, err, common.ErrParse)
		})
	}
}

func TestRepairTruncatedArray(t *testing.T) {
	repaired, ok := RepairTruncatedArray(`[{"a":{"x":1}},{"b":2},{"c":{"y"`)
	require.True(t, ok)

	var items []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(repaired), &items))
	assert.Len(t, items, 2)
}

func TestRepairTruncatedArrayCompleteInputUnchanged(t *testing.T) {
	in := `[{"a":1}]`
	repaired, ok := RepairTruncatedArray(in)
	require.True(t, ok)
	assert.Equal(t, in, repaired)
}

func TestRepairTruncatedArrayHandlesBracketsInStrings(t *testing.T) {
	in := `[{"name":"Wings [6 pc]"},{"name":"Wings {12} pc","desc":"trunc`
	repaired, ok := RepairTruncatedArray(in)
	require.True(t, ok)

	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(repaired), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Wings [6 pc]", items[0]["name"])
}

func TestRepairTruncatedArrayNotAnArray(t *testing.T) {
	_, ok := RepairTruncatedArray(`{"items": [`)
	assert.False(t, ok)
}
