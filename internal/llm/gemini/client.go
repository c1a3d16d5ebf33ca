package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/platewise/menu-extractor/internal/common"
	"github.com/platewise/menu-extractor/internal/llm"
)

// ExtractItems implements llm.MenuExtractor using generateContent with
// file-reference parts. Large document sets are split into batches of
// cfg.BatchSize to stay under request size limits; batch results are
// concatenated. Any request-level failure aborts the whole call.
func (c *Client) ExtractItems(ctx context.Context, req llm.ExtractRequest) ([]llm.ExtractedItem, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"files", len(req.Files),
		"batch_size", c.cfg.BatchSize,
		"allowed_categories", len(req.AllowedCategories),
	)

	schema := llm.BuildItemJSONSchema(req.AllowedCategories)

	var all []llm.ExtractedItem
	var lastRaw []byte
	for batchStart := 0; batchStart < len(req.Files); batchStart += c.cfg.BatchSize {
		end := batchStart + c.cfg.BatchSize
		if end > len(req.Files) {
			end = len(req.Files)
		}
		batch := req
		batch.Files = req.Files[batchStart:end]

		items, raw, err := c.extractBatch(ctx, rid, schema, batch)
		lastRaw = raw
		if err != nil {
			c.log.Error("llm.extract.batch_failed",
				"req_id", rid, "batch_start", batchStart, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, raw, err
		}
		all = append(all, items...)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"items", len(all),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return all, lastRaw, nil
}

func (c *Client) extractBatch(ctx context.Context, rid string, schema map[string]any, req llm.ExtractRequest) ([]llm.ExtractedItem, []byte, error) {
	parts := make([]map[string]any, 0, len(req.Files)+1)
	for _, f := range req.Files {
		parts = append(parts, map[string]any{
			"fileData": map[string]any{
				"mimeType": f.MIMEType,
				"fileUri":  f.URI,
			},
		})
	}
	parts = append(parts, map[string]any{"text": llm.BuildUserPrompt(req)})

	body := map[string]any{
		"systemInstruction": map[string]any{
			"parts": []map[string]any{{"text": llm.BuildSystemPrompt(req)}},
		},
		"contents": []map[string]any{
			{"role": "user", "parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":      c.cfg.Temperature,
			"maxOutputTokens":  c.cfg.MaxOutputTokens,
			"responseMimeType": "application/json",
		},
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	headers := map[string]string{"x-goog-api-key": c.cfg.APIKey}

	raw, _, err := llm.SendJSON(ctx, c.httpClient, endpoint, body, headers, c.log)
	if err != nil {
		return nil, raw, fmt.Errorf("%w: %v", common.ErrExtraction, err)
	}

	var gc struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &gc); err != nil {
		return nil, raw, fmt.Errorf("%w: decode gemini response: %v", common.ErrExtraction, err)
	}
	if len(gc.Candidates) == 0 || len(gc.Candidates[0].Content.Parts) == 0 {
		return nil, raw, fmt.Errorf("%w: no candidates in gemini response", common.ErrExtraction)
	}

	var text strings.Builder
	for _, p := range gc.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	content := text.String()

	items, err := llm.ParseItems(schema, content)
	if err != nil {
		c.log.Error("llm.extract.parse_failed", "req_id", rid, "error", err)
		return nil, []byte(content), err
	}
	return items, []byte(content), nil
}
