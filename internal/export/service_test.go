package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/normalize"
)

type fakeMenuRepo struct {
	items  []*entity.MenuItem
	sizes  map[uuid.UUID][]entity.ItemSize
	groups map[uuid.UUID][]entity.ItemModifierGroup
}

func (f *fakeMenuRepo) ListItemNames(context.Context, uuid.UUID) ([]string, error) { return nil, nil }

func (f *fakeMenuRepo) ListMenu(context.Context, uuid.UUID) ([]*entity.MenuItem, map[uuid.UUID][]entity.ItemSize, map[uuid.UUID][]entity.ItemModifierGroup, error) {
	return f.items, f.sizes, f.groups, nil
}

func (f *fakeMenuRepo) CreateItems(context.Context, uuid.UUID, []normalize.NewItem) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeMenuRepo) CreateSizes(context.Context, []uuid.UUID, []normalize.NewItem) (int, error) {
	return 0, nil
}

func (f *fakeMenuRepo) CreateModifierGroups(context.Context, []uuid.UUID, []normalize.NewItem) (int, error) {
	return 0, nil
}

func TestExportMenuXLSX(t *testing.T) {
	pizzaID := uuid.New()
	saladID := uuid.New()
	two := 2.0

	repo := &fakeMenuRepo{
		items: []*entity.MenuItem{
			{ID: saladID, Name: "Caesar Salad", Subcategory: "Salads"},
			{ID: pizzaID, Name: "Margherita Pizza", Subcategory: "Pizza", Description: "Tomato, mozzarella, basil"},
		},
		sizes: map[uuid.UUID][]entity.ItemSize{
			pizzaID: {
				{Size: "Medium", Price: 12.50},
				{Size: "Large", Price: 16.00},
			},
		},
		groups: map[uuid.UUID][]entity.ItemModifierGroup{
			pizzaID: {
				{Name: "Toppings", Options: []entity.ModifierOption{
					{Name: "Extra cheese", Price: &two},
					{Name: "Basil"},
				}},
			},
		},
	}

	svc := NewService(repo, nil)
	out, err := svc.ExportMenuXLSX(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Menu")
	require.NoError(t, err)

	// header + sizeless salad + two pizza size rows
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Category", "Item", "Description", "Size", "Price", "Modifiers"}, rows[0])

	assert.Equal(t, "Caesar Salad", rows[1][1])
	assert.Equal(t, "Margherita Pizza", rows[2][1])
	assert.Equal(t, "Medium", rows[2][3])
	assert.Equal(t, "Large", rows[3][3])
	assert.Contains(t, rows[2][5], "Toppings: Extra cheese (+2.00), Basil")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
	assert.Equal(t, "a", truncate("abc", 1))

	// counts runes, never splits a multi-byte character
	assert.Equal(t, "crème brû…", truncate("crème brûlée with sugar", 10))
	assert.Equal(t, "五目…", truncate("五目そば大盛り", 3))

	for _, n := range []int{1, 2, 3, 5} {
		for _, r := range truncate("crème brûlée", n) {
			assert.NotEqual(t, '�', r)
		}
	}
}
