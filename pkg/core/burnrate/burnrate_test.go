package burnrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	// Net burn = 80k - 20k = 60k; runway = 600k / 60k = 10 months
	res := Calculate(Inputs{CashBalance: 600_000, MonthlyRevenue: 20_000, MonthlyExpenses: 80_000})

	assert.Equal(t, 80_000.0, res.GrossBurn)
	assert.Equal(t, 60_000.0, res.NetBurn)
	assert.Equal(t, 10.0, res.RunwayMonths.OrZero())
	assert.False(t, res.DefaultAlive)
}

func TestCalculate_Profitable(t *testing.T) {
	res := Calculate(Inputs{CashBalance: 100, MonthlyRevenue: 50, MonthlyExpenses: 50})

	assert.Equal(t, 0.0, res.NetBurn)
	assert.True(t, res.RunwayMonths.IsUnbounded())
	assert.True(t, res.DefaultAlive)
}

func TestProjectRunway(t *testing.T) {
	in := Inputs{CashBalance: 100, MonthlyRevenue: 10, MonthlyExpenses: 50, RevenueGrowthPercent: 100}

	points := ProjectRunway(in, 4)
	require.Len(t, points, 4)

	// Revenue doubles each month: 10, 20, 40, 80
	// Burn: 40, 30, 10, -30 -> cash 60, 30, 20, 50
	wantRevenue := []float64{10, 20, 40, 80}
	wantCash := []float64{60, 30, 20, 50}
	for i, p := range points {
		assert.Equal(t, i+1, p.Month)
		assert.InDelta(t, wantRevenue[i], p.Revenue, 1e-9)
		assert.InDelta(t, wantCash[i], p.EndingCash, 1e-9)
		assert.Equal(t, 50.0, p.Expenses)
	}

	assert.True(t, MonthsUntilCashOut(points).IsUnbounded())
}

func TestProjectRunway_CashOut(t *testing.T) {
	points := ProjectRunway(Inputs{CashBalance: 100, MonthlyExpenses: 40}, 6)

	// 60, 20, -20 ...
	assert.Equal(t, 3.0, MonthsUntilCashOut(points).OrZero())
	assert.InDelta(t, -140.0, points[5].EndingCash, 1e-9)
}

func TestProjectRunway_NoMonths(t *testing.T) {
	assert.Empty(t, ProjectRunway(Inputs{CashBalance: 1}, 0))
	assert.NotNil(t, ProjectRunway(Inputs{CashBalance: 1}, -3))
}

func TestProjectRunway_CappedHorizon(t *testing.T) {
	points := ProjectRunway(Inputs{CashBalance: 1, MonthlyExpenses: 1}, 1_000_000_000_000)
	assert.Len(t, points, MaxHorizonMonths)
	assert.Equal(t, MaxHorizonMonths, points[len(points)-1].Month)
}

func TestHorizon(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultHorizonMonths},
		{-5, DefaultHorizonMonths},
		{1, 1},
		{36, 36},
		{MaxHorizonMonths, MaxHorizonMonths},
		{MaxHorizonMonths + 1, MaxHorizonMonths},
		{1_000_000_000_000, MaxHorizonMonths},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Horizon(tt.in), "Horizon(%d)", tt.in)
	}
}
