package llm

import (
	"context"

	"github.com/platewise/menu-extractor/internal/filestore"
)

// SizeEntry is one size/price pair as emitted by the model.
type SizeEntry struct {
	Size  string `json:"size"`
	Price string `json:"price"`
}

// ModifierEntry is one modifier group as emitted by the model. Options are
// raw strings; embedded price tokens are split out by the normalizer.
type ModifierEntry struct {
	GroupName string   `json:"group_name"`
	Options   []string `json:"options"`
}

// ExtractedItem is the normalized shape we want from the model, transient
// until the normalizer maps it into persisted rows.
type ExtractedItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	MenuName    string          `json:"menu_name,omitempty"`
	Sizes       []SizeEntry     `json:"sizes,omitempty"`
	Modifiers   []ModifierEntry `json:"modifiers,omitempty"`
}

// ExtractRequest carries one batch of uploaded documents to extract from.
type ExtractRequest struct {
	Files             []*filestore.RemoteFileHandle
	AllowedCategories []string
	AllowedSizes      []string
}

// MenuExtractor is the interface our pipeline depends on.
type MenuExtractor interface {
	ExtractItems(ctx context.Context, req ExtractRequest) ([]ExtractedItem, []byte /*rawJSON*/, error)
}
