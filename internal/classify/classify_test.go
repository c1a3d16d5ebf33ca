package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEmptyTextIsImageCandidate(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t\n"} {
		res := Classify(text)
		assert.False(t, res.HasText, "text %q", text)
		assert.Equal(t, float32(0), res.Confidence)
		assert.Zero(t, res.WordCount)
		assert.Zero(t, res.CharCount)
	}
}

func TestClassifyRichTextIsTextMode(t *testing.T) {
	text := "Margherita Pizza fresh mozzarella basil tomato sauce twelve dollars " +
		"Caesar Salad romaine parmesan croutons house dressing nine dollars"
	res := Classify(text)

	assert.True(t, res.HasText)
	assert.GreaterOrEqual(t, res.Confidence, float32(0.75))
	assert.Greater(t, res.WordCount, 10)
	assert.Greater(t, res.CharCount, 50)
}

func TestClassifyGarbledShortTextStaysTextMode(t *testing.T) {
	// a logo artifact: low confidence but nonzero counts never force image mode
	res := Classify("PZ")
	assert.LessOrEqual(t, res.Confidence, float32(0.3))
	assert.True(t, res.HasText)
}

func TestClassifyLongSingleToken(t *testing.T) {
	// no whitespace structure and one word, but plenty of characters
	res := Classify(strings.Repeat("x", 80))
	assert.Equal(t, 1, res.WordCount)
	assert.True(t, res.HasText)
}

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantImage bool
		maxConf   float32
	}{
		{"empty", "", true, 0},
		{"whitespace only", "  \n ", true, 0},
		{"short fragment", "Menu", false, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(tt.text)
			assert.Equal(t, tt.wantImage, !res.HasText)
			assert.LessOrEqual(t, res.Confidence, tt.maxConf)
		})
	}
}
