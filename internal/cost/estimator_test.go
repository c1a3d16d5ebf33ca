package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateZeroCounts(t *testing.T) {
	b := Estimate(Counts{})
	assert.Zero(t, b.Total)
	assert.True(t, b.Advisory)
}

func TestEstimateTotalsAddUp(t *testing.T) {
	b := Estimate(Counts{
		Documents:  2,
		Pages:      5,
		Images:     1,
		Items:      40,
		ModelCalls: 1,
		Tier:       TierFlash,
	})

	sum := b.DocumentCost + b.ImageCost + b.RequestCost + b.ItemCost + b.AnalysisSurcharge
	assert.InDelta(t, sum, b.Total, 1e-9)
	assert.Positive(t, b.Total)
	assert.Equal(t, 5*tokensPerDocumentPage+tokensPerImage+tokensPerRequestBase, b.InputTokens)
	assert.Equal(t, 40*tokensPerItem, b.OutputTokens)
}

func TestEstimateProTierCostsMore(t *testing.T) {
	counts := Counts{Documents: 1, Pages: 3, Items: 20, ModelCalls: 1}

	counts.Tier = TierFlash
	flash := Estimate(counts)
	counts.Tier = TierPro
	pro := Estimate(counts)

	assert.Greater(t, pro.Total, flash.Total)
}

func TestEstimateDeepAnalysisSurcharge(t *testing.T) {
	base := Estimate(Counts{Documents: 1, ModelCalls: 1})
	deep := Estimate(Counts{Documents: 1, ModelCalls: 1, DeepModifierAnalysis: true})

	assert.Zero(t, base.AnalysisSurcharge)
	assert.Equal(t, deepAnalysisSurcharge, deep.AnalysisSurcharge)
	assert.InDelta(t, base.Total+deepAnalysisSurcharge, deep.Total, 1e-9)
}

func TestEstimateFallsBackToDocumentCountWithoutPages(t *testing.T) {
	b := Estimate(Counts{Documents: 3})
	assert.Equal(t, 3*tokensPerDocumentPage, b.InputTokens)
}
