// Package ingest pulls plain text out of text-bearing document formats so the
// classifier can decide between text-mode and image-mode extraction. Image
// formats are not handled here; they go straight to the vision model.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/platewise/menu-extractor/constants"
)

// Config holds external tool locations for text extraction.
type Config struct {
	Pdftotext string // default "pdftotext"
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

// TextResult is the extracted text plus page accounting for cost estimation.
type TextResult struct {
	Text  string
	Pages int
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// ExtractText returns embedded text for PDF and spreadsheet documents.
// Failures here are advisory: the caller falls back to image-mode extraction
// instead of failing the run.
func (e *Extractor) ExtractText(ctx context.Context, path, mimeType string) (TextResult, error) {
	switch constants.MapMIMEToFormat(mimeType) {
	case constants.PDF:
		return e.pdfToText(ctx, path)
	case constants.SPREADSHEET:
		if strings.EqualFold(mimeType, "text/csv") {
			return e.csvToText(path)
		}
		return e.xlsxToText(path)
	default:
		return TextResult{}, fmt.Errorf("no embedded text for mime type %q", mimeType)
	}
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (TextResult, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return TextResult{}, fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	text := string(out)
	// A form-feed \f is used as page separator by default
	pages := 1 + strings.Count(text, "\f")
	return TextResult{Text: text, Pages: pages}, nil
}

func (e *Extractor) xlsxToText(path string) (TextResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return TextResult{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("ingest.xlsx_close_failed", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	sheets := f.GetSheetList()
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return TextResult{}, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		b.WriteString(sheet)
		b.WriteString("\n")
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteString("\n")
		}
	}
	return TextResult{Text: b.String(), Pages: len(sheets)}, nil
}

func (e *Extractor) csvToText(path string) (TextResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return TextResult{}, fmt.Errorf("open csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.Warn("ingest.csv_close_failed", "path", path, "error", cerr)
		}
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return TextResult{}, fmt.Errorf("read csv: %w", err)
	}

	var b strings.Builder
	for _, rec := range records {
		b.WriteString(strings.Join(rec, "\t"))
		b.WriteString("\n")
	}
	return TextResult{Text: b.String(), Pages: 1}, nil
}
