// Package cost estimates the monetary cost of an extraction run. Token
// counts here are fixed per-unit estimates, not provider-metered usage; the
// resulting figure is advisory and must never be presented as a billed
// amount.
package cost

// Per-unit token estimates. True accounting would need provider-side
// metering, which is not available synchronously.
const (
	tokensPerDocumentPage = 2600 // embedded text sent as context
	tokensPerImage        = 1600 // vision tile cost per attached image
	tokensPerItem         = 180  // structured output per extracted item
	tokensPerRequestBase  = 900  // prompt scaffolding per model call
)

// Per-million-token prices by tier, USD.
const (
	flashInputPerM  = 0.10
	flashOutputPerM = 0.40
	proInputPerM    = 1.25
	proOutputPerM   = 10.00
)

// deepAnalysisSurcharge covers the extra pass when modifier groups are
// analyzed separately.
const deepAnalysisSurcharge = 0.02

// Tier selects the pricing row for the model that served the run.
type Tier string

const (
	TierFlash Tier = "flash"
	TierPro   Tier = "pro"
)

// Counts are the observable stage outputs the estimate is computed from.
type Counts struct {
	Documents            int
	Pages                int
	Images               int
	Items                int
	ModelCalls           int
	Tier                 Tier
	DeepModifierAnalysis bool
}

// Breakdown itemizes the estimate. Advisory is always true; it exists so
// serialized payloads carry the caveat with the number.
type Breakdown struct {
	DocumentCost      float64 `json:"document_cost"`
	ImageCost         float64 `json:"image_cost"`
	ItemCost          float64 `json:"item_cost"`
	RequestCost       float64 `json:"request_cost"`
	AnalysisSurcharge float64 `json:"analysis_surcharge"`
	Total             float64 `json:"total"`
	InputTokens       int     `json:"input_tokens"`
	OutputTokens      int     `json:"output_tokens"`
	Advisory          bool    `json:"advisory"`
}

// Estimate is a pure function from counts to a cost breakdown.
func Estimate(c Counts) Breakdown {
	inPerM, outPerM := flashInputPerM, flashOutputPerM
	if c.Tier == TierPro {
		inPerM, outPerM = proInputPerM, proOutputPerM
	}

	docTokens := c.Pages * tokensPerDocumentPage
	if docTokens == 0 {
		docTokens = c.Documents * tokensPerDocumentPage
	}
	imageTokens := c.Images * tokensPerImage
	requestTokens := c.ModelCalls * tokensPerRequestBase
	itemTokens := c.Items * tokensPerItem

	b := Breakdown{
		DocumentCost: tokenCost(docTokens, inPerM),
		ImageCost:    tokenCost(imageTokens, inPerM),
		RequestCost:  tokenCost(requestTokens, inPerM),
		ItemCost:     tokenCost(itemTokens, outPerM),
		InputTokens:  docTokens + imageTokens + requestTokens,
		OutputTokens: itemTokens,
		Advisory:     true,
	}
	if c.DeepModifierAnalysis {
		b.AnalysisSurcharge = deepAnalysisSurcharge
	}
	b.Total = b.DocumentCost + b.ImageCost + b.RequestCost + b.ItemCost + b.AnalysisSurcharge
	return b
}

func tokenCost(tokens int, perMillion float64) float64 {
	return float64(tokens) / 1_000_000 * perMillion
}
