package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/platewise/menu-extractor/gen/ent"
	"github.com/platewise/menu-extractor/gen/ent/menuitem"
	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/normalize"
)

type ItemRepository interface {
	ListItemNames(ctx context.Context, jobID uuid.UUID) ([]string, error)
	ListMenu(ctx context.Context, jobID uuid.UUID) ([]*entity.MenuItem, map[uuid.UUID][]entity.ItemSize, map[uuid.UUID][]entity.ItemModifierGroup, error)
	CreateItems(ctx context.Context, jobID uuid.UUID, items []normalize.NewItem) ([]uuid.UUID, error)
	CreateSizes(ctx context.Context, itemIDs []uuid.UUID, items []normalize.NewItem) (int, error)
	CreateModifierGroups(ctx context.Context, itemIDs []uuid.UUID, items []normalize.NewItem) (int, error)
}

type itemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewItemRepository(entc *ent.Client, log *slog.Logger) ItemRepository {
	return &itemRepo{ent: entc, log: log}
}

func (r *itemRepo) ListItemNames(ctx context.Context, jobID uuid.UUID) ([]string, error) {
	names, err := r.ent.MenuItem.
		Query().
		Where(menuitem.JobID(jobID)).
		Select(menuitem.FieldName).
		Strings(ctx)
	if err != nil {
		r.log.Error("failed to list item names", "job_id", jobID, "err", err)
		return nil, err
	}
	return names, nil
}

func (r *itemRepo) ListMenu(ctx context.Context, jobID uuid.UUID) ([]*entity.MenuItem, map[uuid.UUID][]entity.ItemSize, map[uuid.UUID][]entity.ItemModifierGroup, error) {
	rows, err := r.ent.MenuItem.
		Query().
		Where(menuitem.JobID(jobID)).
		WithSizes().
		WithModifierGroups().
		Order(menuitem.ByName()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list menu", "job_id", jobID, "err", err)
		return nil, nil, nil, err
	}

	items := make([]*entity.MenuItem, len(rows))
	sizes := make(map[uuid.UUID][]entity.ItemSize, len(rows))
	groups := make(map[uuid.UUID][]entity.ItemModifierGroup, len(rows))
	for i, row := range rows {
		items[i] = toMenuItem(row)
		for _, s := range row.Edges.Sizes {
			sizes[row.ID] = append(sizes[row.ID], entity.ItemSize{
				ID:       s.ID,
				ItemID:   s.ItemID,
				Size:     s.Size,
				Price:    s.Price,
				IsActive: s.IsActive,
			})
		}
		for _, g := range row.Edges.ModifierGroups {
			var opts []entity.ModifierOption
			if len(g.Options) > 0 {
				if err := json.Unmarshal(g.Options, &opts); err != nil {
					r.log.Warn("skipping malformed modifier options", "group_id", g.ID, "err", err)
				}
			}
			groups[row.ID] = append(groups[row.ID], entity.ItemModifierGroup{
				ID:      g.ID,
				ItemID:  g.ItemID,
				Name:    g.Name,
				Options: opts,
			})
		}
	}
	return items, sizes, groups, nil
}

// CreateItems inserts the item rows and returns their ids in plan order. Size
// and modifier rows are written by the follow-up calls so a mid-sequence
// failure can name the stage it died in.
func (r *itemRepo) CreateItems(ctx context.Context, jobID uuid.UUID, items []normalize.NewItem) ([]uuid.UUID, error) {
	if len(items) == 0 {
		return nil, nil
	}
	builders := make([]*ent.MenuItemCreate, len(items))
	for i, it := range items {
		b := r.ent.MenuItem.
			Create().
			SetJobID(jobID).
			SetName(it.Name).
			SetSubcategory(string(it.Subcategory))
		if it.Description != "" {
			b = b.SetDescription(it.Description)
		}
		if it.MenuName != "" {
			b = b.SetMenuName(it.MenuName)
		}
		builders[i] = b
	}
	rows, err := r.ent.MenuItem.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.log.Error("item insert failed", "job_id", jobID, "count", len(items), "err", err)
		return nil, err
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	r.log.Info("items inserted", "job_id", jobID, "count", len(ids))
	return ids, nil
}

func (r *itemRepo) CreateSizes(ctx context.Context, itemIDs []uuid.UUID, items []normalize.NewItem) (int, error) {
	var builders []*ent.ItemSizeCreate
	for i, it := range items {
		for _, s := range it.Sizes {
			builders = append(builders, r.ent.ItemSize.
				Create().
				SetItemID(itemIDs[i]).
				SetSize(s.Size).
				SetPrice(s.Price))
		}
	}
	if len(builders) == 0 {
		return 0, nil
	}
	if _, err := r.ent.ItemSize.CreateBulk(builders...).Save(ctx); err != nil {
		r.log.Error("size insert failed", "count", len(builders), "err", err)
		return 0, err
	}
	return len(builders), nil
}

func (r *itemRepo) CreateModifierGroups(ctx context.Context, itemIDs []uuid.UUID, items []normalize.NewItem) (int, error) {
	var builders []*ent.ItemModifierGroupCreate
	for i, it := range items {
		for _, g := range it.Modifiers {
			opts, err := json.Marshal(g.Options)
			if err != nil {
				return 0, err
			}
			builders = append(builders, r.ent.ItemModifierGroup.
				Create().
				SetItemID(itemIDs[i]).
				SetName(g.Name).
				SetOptions(opts))
		}
	}
	if len(builders) == 0 {
		return 0, nil
	}
	if _, err := r.ent.ItemModifierGroup.CreateBulk(builders...).Save(ctx); err != nil {
		r.log.Error("modifier group insert failed", "count", len(builders), "err", err)
		return 0, err
	}
	return len(builders), nil
}

func toMenuItem(m *ent.MenuItem) *entity.MenuItem {
	out := &entity.MenuItem{
		ID:          m.ID,
		JobID:       m.JobID,
		Name:        m.Name,
		Subcategory: m.Subcategory,
		CreatedFrom: m.CreatedFrom,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Description != nil {
		out.Description = *m.Description
	}
	if m.MenuName != nil {
		out.MenuName = *m.MenuName
	}
	return out
}
