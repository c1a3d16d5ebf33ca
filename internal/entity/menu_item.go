package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuItem represents a persisted menu item for data transfer between layers.
// (job_id, lowercased+trimmed name) is unique; the normalizer enforces this
// before insertion.
type MenuItem struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Subcategory string    `json:"subcategory"`
	MenuName    string    `json:"menu_name,omitempty"`
	CreatedFrom string    `json:"created_from"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemSize is a priced size row owned by a MenuItem.
type ItemSize struct {
	ID       uuid.UUID `json:"id"`
	ItemID   uuid.UUID `json:"item_id"`
	Size     string    `json:"size"`
	Price    float64   `json:"price"`
	IsActive bool      `json:"is_active"`
}

// ModifierOption is one choice inside a modifier group. Price is nil when the
// raw option string carried no recognizable price token.
type ModifierOption struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

// ItemModifierGroup is a named set of add-ons owned by a MenuItem.
type ItemModifierGroup struct {
	ID      uuid.UUID        `json:"id"`
	ItemID  uuid.UUID        `json:"item_id"`
	Name    string           `json:"name"`
	Options []ModifierOption `json:"options"`
}
