// Package classify decides whether a text-bearing document carries enough
// usable embedded text for text-mode extraction, or must be sent to the
// vision model as an image.
package classify

import (
	"strings"
)

// Thresholds are deliberately low: menu PDFs often carry partial or garbled
// embedded text (logos, decorative glyphs), and text-mode extraction is the
// cheaper, more accurate path. We only fall back to image mode when there is
// truly nothing to work with.
const (
	minContentLength = 50
	minWordCount     = 10
	minAvgWordLen    = 2.0

	imageModeCeiling = 0.3
)

// Result summarizes the text heuristics for one document.
type Result struct {
	HasText    bool
	Confidence float32
	WordCount  int
	CharCount  int
}

// Classify scores extracted text content. Confidence starts at 0 and each
// satisfied heuristic adds 0.25.
func Classify(text string) Result {
	trimmed := strings.TrimSpace(text)
	words := strings.Fields(trimmed)

	res := Result{
		CharCount: len(trimmed),
		WordCount: len(words),
	}

	var score float32
	if res.CharCount > minContentLength {
		score += 0.25
	}
	if res.WordCount > minWordCount {
		score += 0.25
	}
	if avgWordLength(words) > minAvgWordLen {
		score += 0.25
	}
	if strings.ContainsAny(trimmed, " \n\t") {
		score += 0.25
	}

	res.Confidence = score
	res.HasText = !isImageCandidate(res)
	return res
}

// isImageCandidate is true only when confidence is at or below the ceiling
// AND the document has no words or no characters at all. Wrong classification
// degrades extraction quality but never fails the run.
func isImageCandidate(r Result) bool {
	return r.Confidence <= imageModeCeiling && (r.CharCount == 0 || r.WordCount == 0)
}

func avgWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}
