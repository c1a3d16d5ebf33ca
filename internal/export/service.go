package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/platewise/menu-extractor/internal/entity"
	"github.com/platewise/menu-extractor/internal/repository"
)

// Service is a tiny façade over the item repository that produces XLSX bytes
// for menu exports.
type Service struct {
	items  repository.ItemRepository
	logger *slog.Logger
}

func NewService(items repository.ItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{items: items, logger: logger}
}

// ExportMenuXLSX returns an XLSX workbook (as bytes) for one job's extracted
// menu. Each item/size pair is one row; modifier groups collapse into a
// single notes column.
func (s *Service) ExportMenuXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, error) {
	start := time.Now()

	items, sizes, groups, err := s.items.ListMenu(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("query menu: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Menu"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Category",
		"Item",
		"Description",
		"Size",
		"Price",
		"Modifiers",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		mods := formatModifiers(groups[it.ID])
		itemSizes := sizes[it.ID]
		if len(itemSizes) == 0 {
			write(1, it.Subcategory)
			write(2, it.Name)
			write(3, truncate(it.Description, 140))
			write(6, mods)
			row++
			continue
		}
		for _, sz := range itemSizes {
			write(1, it.Subcategory)
			write(2, it.Name)
			write(3, truncate(it.Description, 140))
			write(4, sz.Size)
			write(5, sz.Price)
			write(6, mods)
			row++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 16) // category
	_ = f.SetColWidth(sheet, "B", "B", 28) // item
	_ = f.SetColWidth(sheet, "C", "C", 48) // description
	_ = f.SetColWidth(sheet, "D", "E", 12) // size + price
	_ = f.SetColWidth(sheet, "F", "F", 60) // modifiers

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"job_id", jobID.String(),
		"items", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// formatModifiers renders groups as "Toppings: Extra cheese (+2.00), Mushrooms".
func formatModifiers(groups []entity.ItemModifierGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		opts := make([]string, 0, len(g.Options))
		for _, o := range g.Options {
			if o.Price != nil {
				opts = append(opts, fmt.Sprintf("%s (+%.2f)", o.Name, *o.Price))
			} else {
				opts = append(opts, o.Name)
			}
		}
		parts = append(parts, g.Name+": "+strings.Join(opts, ", "))
	}
	return strings.Join(parts, "; ")
}

// truncate caps s at n runes so a multi-byte character is never split.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
