package constants

import "strings"

// DefaultSize is the fallback label when the model omits a size.
const DefaultSize = "Regular"

// AllowedSizes is the fixed size vocabulary the extraction prompt permits.
// Any size label outside this list must be emitted by the model as a modifier
// option instead of a size.
var AllowedSizes = []string{
	"Regular",
	"Small",
	"Medium",
	"Large",
	"X-Large",
	"Half",
	"Full",
	"Kids",
}

// IsAllowedSize reports whether label matches the vocabulary, ignoring case
// and surrounding whitespace.
func IsAllowedSize(label string) bool {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, s := range AllowedSizes {
		if normalized == strings.ToLower(s) {
			return true
		}
	}
	return false
}
