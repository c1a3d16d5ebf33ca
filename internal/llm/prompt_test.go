package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platewise/menu-extractor/constants"
	"github.com/platewise/menu-extractor/internal/filestore"
)

func TestBuildSystemPromptEnumeratesVocabularies(t *testing.T) {
	req := ExtractRequest{
		AllowedCategories: constants.AllCategories(),
		AllowedSizes:      constants.AllowedSizes,
	}
	sys := BuildSystemPrompt(req)

	for _, cat := range constants.AllCategories() {
		assert.Contains(t, sys, cat)
	}
	for _, size := range constants.AllowedSizes {
		assert.Contains(t, sys, size)
	}
	assert.Contains(t, sys, "modifier group")
}

func TestBuildUserPromptListsDocuments(t *testing.T) {
	req := ExtractRequest{
		Files: []*filestore.RemoteFileHandle{
			{DocumentID: "job-1/menu.pdf"},
			{DocumentID: "job-1/drinks.png"},
		},
	}
	user := BuildUserPrompt(req)
	assert.Contains(t, user, "Document 1: job-1/menu.pdf")
	assert.Contains(t, user, "Document 2: job-1/drinks.png")
}
