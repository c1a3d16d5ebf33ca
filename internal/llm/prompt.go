package llm

import (
	"strconv"
	"strings"
)

// BuildSystemPrompt composes the system message with the category and size
// vocabularies and strict-but-practical formatting rules.
func BuildSystemPrompt(req ExtractRequest) string {
	catLine := "Every item MUST include a 'category' and it MUST be exactly one of the allowed enum. " +
		"If uncertain, choose 'Other'. Allowed categories (enum): " + strings.Join(req.AllowedCategories, ", ") + ". "
	sizeLine := "Size labels MUST come from the allowed size enum: " + strings.Join(req.AllowedSizes, ", ") + ". " +
		"Any size not in the enum (e.g. '10 inch', 'Family') must NOT appear under 'sizes'; " +
		"emit it as an option inside a modifier group named 'Size Options' instead."

	parts := []string{
		"You are a restaurant menu parser. Return ONLY a JSON array of item objects; no prose, no Markdown.",
		"Each item object has exactly these fields: name (string, required), description (string, optional), " +
			"category (string, required), menu_name (string, optional, the menu section heading the item appears under), " +
			"sizes (array of {size, price}, optional), modifiers (array of {group_name, options}, optional).",
		catLine,
		sizeLine,
		"Prices are decimal strings without currency symbols (e.g. \"12.50\").",
		"If an item shows a single price with no size label, emit one size with label 'Regular'.",
		"Modifier options keep their printed price notation, e.g. \"Extra cheese (+$2)\".",
		"Extract every distinct item you can read; do not invent items that are not visible.",

		// Formatting hygiene:
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt lists the attached documents so the model can attribute
// items when several menus are sent in one batch.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("Extract all menu items from the attached document")
	if len(req.Files) > 1 {
		b.WriteString("s")
	}
	b.WriteString(".\n")
	for i, f := range req.Files {
		b.WriteString("Document ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(f.DocumentID)
		b.WriteString("\n")
	}
	b.WriteString("\nReturn ONLY the JSON array.")
	return b.String()
}
