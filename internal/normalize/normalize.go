// Package normalize maps parsed extraction output into the persisted schema
// and filters out items the job already has. Records degrade to safe defaults
// (price 0.00, size "Regular") rather than being dropped.
package normalize

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/llm"
)

// NewItem is one menu item ready for insertion, with its owned rows.
type NewItem struct {
	Name        string
	Description string
	Subcategory constants.Category
	MenuName    string
	Sizes       []NewSize
	Modifiers   []NewModifierGroup
}

type NewSize struct {
	Size  string
	Price float64
}

type NewModifierGroup struct {
	Name    string
	Options []entity.ModifierOption
}

// InsertPlan is the deduplicated write set for one extraction run.
type InsertPlan struct {
	Items      []NewItem
	Duplicates int // extracted items skipped because the job already has them
}

// NormalizeName collapses case and whitespace variants so "  Pad Thai " and
// "pad thai" dedupe to one item.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Plan builds the insert set from extracted items, skipping any whose
// normalized name is already persisted for the job (or already seen earlier
// in this batch). Re-running extraction against the same documents therefore
// never doubles the menu.
func Plan(items []llm.ExtractedItem, existingNames []string, logger *slog.Logger) InsertPlan {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]struct{}, len(existingNames))
	for _, n := range existingNames {
		seen[NormalizeName(n)] = struct{}{}
	}

	var plan InsertPlan
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		key := NormalizeName(name)
		if _, dup := seen[key]; dup {
			plan.Duplicates++
			logger.Debug("normalize.duplicate_skipped", "name", name)
			continue
		}
		seen[key] = struct{}{}

		canon, ok := constants.Canonicalize(item.Category)
		if !ok {
			logger.Warn("normalize.category_unknown", "name", name, "label", item.Category)
		}

		plan.Items = append(plan.Items, NewItem{
			Name:        name,
			Description: strings.TrimSpace(item.Description),
			Subcategory: canon,
			MenuName:    strings.TrimSpace(item.MenuName),
			Sizes:       normalizeSizes(item.Sizes),
			Modifiers:   normalizeModifiers(item.Modifiers),
		})
	}
	return plan
}

// normalizeSizes keeps every declared size, degrading label and price to
// defaults. An item with no declared sizes gets no size rows at all.
func normalizeSizes(sizes []llm.SizeEntry) []NewSize {
	out := make([]NewSize, 0, len(sizes))
	for _, s := range sizes {
		label := strings.TrimSpace(s.Size)
		if label == "" {
			label = constants.DefaultSize
		}
		out = append(out, NewSize{Size: label, Price: ParsePrice(s.Price)})
	}
	return out
}

func normalizeModifiers(mods []llm.ModifierEntry) []NewModifierGroup {
	out := make([]NewModifierGroup, 0, len(mods))
	for _, m := range mods {
		name := strings.TrimSpace(m.GroupName)
		if name == "" {
			continue
		}
		opts := make([]entity.ModifierOption, 0, len(m.Options))
		for _, raw := range m.Options {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			opts = append(opts, ParseModifierOption(raw))
		}
		out = append(out, NewModifierGroup{Name: name, Options: opts})
	}
	return out
}

// modifierPriceRe matches an embedded option price token: a decimal with an
// optional leading plus sign and dollar sign, optionally parenthesized, e.g.
// "(+$2)", "+$1.50", "($3.25)", "+2".
var modifierPriceRe = regexp.MustCompile(`\(\s*\+?\s*\$?\s*(\d+(?:\.\d{1,2})?)\s*\)|\+\s*\$?\s*(\d+(?:\.\d{1,2})?)|\$\s*(\d+(?:\.\d{1,2})?)`)

// ParseModifierOption splits the price token out of a raw option string,
// leaving the bare name as the label. Options without a recognizable token
// keep the full string and carry no price.
func ParseModifierOption(raw string) entity.ModifierOption {
	s := strings.TrimSpace(raw)

	loc := modifierPriceRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return entity.ModifierOption{Name: s}
	}

	// only strip tokens sitting at the start or the end of the string;
	// a digit in the middle of a name ("2 Liter Soda") is not a price
	atStart := strings.TrimSpace(s[:loc[0]]) == ""
	atEnd := strings.TrimSpace(s[loc[1]:]) == ""
	if !atStart && !atEnd {
		return entity.ModifierOption{Name: s}
	}

	var digits string
	for g := 1; g <= 3; g++ {
		if loc[2*g] >= 0 {
			digits = s[loc[2*g]:loc[2*g+1]]
			break
		}
	}
	price, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return entity.ModifierOption{Name: s}
	}

	name := strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
	name = strings.Trim(name, "-–: ")
	if name == "" {
		name = s
	}
	return entity.ModifierOption{Name: name, Price: &price}
}

// ParsePrice parses a declared price string, tolerating currency symbols and
// thousands separators. Unparseable or negative input falls back to 0.00.
func ParsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
