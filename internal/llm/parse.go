package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/platewise/menu-extractor/internal/common"
)

// ParseItems turns raw model output into ExtractedItems. It strips Markdown
// code fences, accepts either a bare JSON array or an object with an "items"
// array, and on parse failure attempts to salvage a truncated array before
// giving up. Unrecoverable output fails with the offending text captured so
// the run reports a parse failure rather than a zero-item success.
func ParseItems(schemaMap map[string]any, raw string) ([]ExtractedItem, error) {
	text := StripCodeFences(raw)

	rawItems, err := decodeItemArray(text)
	if err != nil {
		repaired, ok := RepairTruncatedArray(text)
		if !ok {
			return nil, parseError(raw, err)
		}
		rawItems, err = decodeItemArray(repaired)
		if err != nil {
			return nil, parseError(raw, err)
		}
	}

	if err := ValidateItems(schemaMap, rawItems); err != nil {
		return nil, parseError(raw, err)
	}

	items := make([]ExtractedItem, len(rawItems))
	for i, r := range rawItems {
		if err := json.Unmarshal(r, &items[i]); err != nil {
			return nil, parseError(raw, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return items, nil
}

func parseError(raw string, cause error) error {
	return fmt.Errorf("%w: %v (raw output: %s)", common.ErrParse, cause, truncateText(raw, 2048))
}

// StripCodeFences removes leading/trailing Markdown code-fence markers
// (```json ... ``` or bare ``` ... ```).
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```json")
		out = strings.TrimPrefix(out, "```")
		out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	}
	return strings.TrimSpace(out)
}

// decodeItemArray accepts `[...]` or `{"items": [...]}` and returns the raw
// array elements.
func decodeItemArray(text string) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		var wrapper struct {
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal([]byte(trimmed), &wrapper); err != nil {
			return nil, fmt.Errorf("decode items object: %w", err)
		}
		if wrapper.Items == nil {
			return nil, fmt.Errorf("object has no items array")
		}
		return wrapper.Items, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, fmt.Errorf("decode item array: %w", err)
	}
	return items, nil
}

// RepairTruncatedArray salvages the leading complete elements of a JSON array
// cut off mid-element, the common failure mode of token-capped output. It
// scans with a bracket-balance state machine, remembers the offset just past
// the last element that closed at depth 1, and closes the array there. The
// second return is false when the text is not a salvageable array.
func RepairTruncatedArray(text string) (string, bool) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "[") {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	lastComplete := -1 // offset just past the last complete top-level element

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth == 1 {
				lastComplete = i + 1
			}
			if depth == 0 {
				// the array actually terminates; nothing to repair
				return s[:i+1], true
			}
		}
	}

	if lastComplete < 0 {
		return "", false
	}
	return s[:lastComplete] + "]", true
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
