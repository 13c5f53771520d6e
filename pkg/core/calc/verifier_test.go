package calc

import (
	"testing"

	"founder_calculators/pkg/core/captable"
	"founder_calculators/pkg/core/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMarketSize(t *testing.T) {
	ok := CheckMarketSize(market.CalculateTopDown(market.TopDownInputs{TotalMarketSize: 1e9, SAMPercent: 10, SOMPercent: 5}))
	assert.True(t, ok.IsConsistent)
	assert.Empty(t, ok.Warnings)

	// 150% SAM is passed through by the calculator and flagged here
	bad := CheckMarketSize(market.CalculateTopDown(market.TopDownInputs{TotalMarketSize: 1000, SAMPercent: 150, SOMPercent: 200}))
	assert.False(t, bad.IsConsistent)
	require.Len(t, bad.Warnings, 2)
	assert.Contains(t, bad.Warnings[0], "SAM")
	assert.Contains(t, bad.Warnings[1], "SOM")
}

func TestCheckMarketSize_ToleratesRounding(t *testing.T) {
	res := market.SizeResult{TAM: 100, SAM: 100.00000001, SOM: 10}
	assert.True(t, CheckMarketSize(res).IsConsistent)
}

func TestCheckOwnership(t *testing.T) {
	results, err := captable.Simulate(
		[]captable.Holder{{Name: "Founder", Class: captable.ClassCommon, Shares: 1000}},
		[]captable.Round{{Name: "Seed", PreMoneyValuation: 4, Investment: 1, OptionPoolPercent: 15}},
	)
	require.NoError(t, err)
	assert.True(t, CheckOwnership(results[0].Table).IsConsistent)

	broken := []captable.Ownership{{Holder: "A", Percent: 60}, {Holder: "B", Percent: 30}}
	res := CheckOwnership(broken)
	assert.False(t, res.IsConsistent)
	assert.Len(t, res.Warnings, 1)
}
