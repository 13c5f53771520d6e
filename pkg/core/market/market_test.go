package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTopDown(t *testing.T) {
	// TAM = 1B, SAM = 10% = 100M, SOM = 5% of SAM = 5M
	res := CalculateTopDown(TopDownInputs{TotalMarketSize: 1_000_000_000, SAMPercent: 10, SOMPercent: 5})

	assert.InDelta(t, 1_000_000_000.0, res.TAM, 1e-3)
	assert.InDelta(t, 100_000_000.0, res.SAM, 1e-3)
	assert.InDelta(t, 5_000_000.0, res.SOM, 1e-3)
}

func TestCalculateTopDown_NoClamping(t *testing.T) {
	res := CalculateTopDown(TopDownInputs{TotalMarketSize: 1000, SAMPercent: 150, SOMPercent: 10})
	assert.Greater(t, res.SAM, res.TAM)
}

func TestCalculateBottomUp(t *testing.T) {
	// 100k customers * $1200 = 120M TAM
	// 20% targeted = 20k * $1200 = 24M SAM, SOM = 10% = 2.4M
	res := CalculateBottomUp(BottomUpInputs{TotalCustomers: 100_000, TargetPercent: 20, RevenuePerCustomer: 1200})

	assert.InDelta(t, 120_000_000.0, res.TAM, 1e-3)
	assert.InDelta(t, 24_000_000.0, res.SAM, 1e-3)
	assert.InDelta(t, 2_400_000.0, res.SOM, 1e-3)
}

func TestMarketOrderingProperty(t *testing.T) {
	percents := []float64{0, 0.5, 1, 7.5, 33, 50, 99.9, 100}
	sizes := []float64{0, 1, 1234.56, 1e9}

	for _, size := range sizes {
		for _, p1 := range percents {
			for _, p2 := range percents {
				td := CalculateTopDown(TopDownInputs{TotalMarketSize: size, SAMPercent: p1, SOMPercent: p2})
				assertOrdered(t, td)

				bu := CalculateBottomUp(BottomUpInputs{TotalCustomers: size, TargetPercent: p1, RevenuePerCustomer: p2 * 10})
				assertOrdered(t, bu)
				assert.Equal(t, BottomUpCaptureRate*bu.SAM, bu.SOM)
			}
		}
	}
}

func assertOrdered(t *testing.T, res SizeResult) {
	t.Helper()
	const eps = 1e-6
	assert.LessOrEqual(t, res.SOM, res.SAM+eps, "som <= sam: %+v", res)
	assert.LessOrEqual(t, res.SAM, res.TAM+eps, "sam <= tam: %+v", res)
}

func TestProjectRevenue(t *testing.T) {
	projections := ProjectRevenue(2_400_000, []float64{5, 10, 15}, 70, 50)
	require.Len(t, projections, 3)

	expected := []RevenueProjection{
		{Year: 1, MarketShare: 5, Revenue: 120_000, GrossMargin: 84_000, Opex: 42_000, Profit: 42_000},
		{Year: 2, MarketShare: 10, Revenue: 240_000, GrossMargin: 168_000, Opex: 84_000, Profit: 84_000},
		{Year: 3, MarketShare: 15, Revenue: 360_000, GrossMargin: 252_000, Opex: 126_000, Profit: 126_000},
	}

	for i, want := range expected {
		got := projections[i]
		assert.Equal(t, want.Year, got.Year)
		assert.Equal(t, want.MarketShare, got.MarketShare)
		assert.InDelta(t, want.Revenue, got.Revenue, 1e-6)
		assert.InDelta(t, want.GrossMargin, got.GrossMargin, 1e-6)
		assert.InDelta(t, want.Opex, got.Opex, 1e-6)
		assert.InDelta(t, want.Profit, got.Profit, 1e-6)

		// exact identity, not approximate
		assert.Equal(t, got.GrossMargin-got.Opex, got.Profit)
	}
}

func TestProjectRevenue_YearsFollowInputOrder(t *testing.T) {
	projections := ProjectRevenue(1000, []float64{30, 10, 20, 10}, 100, 0)
	require.Len(t, projections, 4)

	for i, p := range projections {
		assert.Equal(t, i+1, p.Year)
	}
	assert.Equal(t, 300.0, projections[0].Revenue)
	assert.Equal(t, projections[1], RevenueProjection{Year: 2, MarketShare: 10, Revenue: 100, GrossMargin: 100, Opex: 0, Profit: 100})
}

func TestProjectRevenue_Empty(t *testing.T) {
	projections := ProjectRevenue(1000, []float64{}, 70, 50)
	assert.NotNil(t, projections)
	assert.Empty(t, projections)
}
