package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founder_calculators/pkg/core/burnrate"
	"founder_calculators/pkg/core/captable"
	"founder_calculators/pkg/core/market"
	"founder_calculators/pkg/core/unitecon"
)

func TestDefault_ExamplesRun(t *testing.T) {
	reg := Default()
	require.Greater(t, reg.Count(), 10)

	for _, e := range reg.All() {
		t.Run(e.Slug, func(t *testing.T) {
			assert.NotEmpty(t, e.Title)
			assert.NotEmpty(t, e.Description)
			assert.NotEmpty(t, e.Fields)

			out, err := e.RunExample()
			require.NoError(t, err)
			assert.NotNil(t, out)
		})
	}
}

func TestDefault_RelatedSlugsExist(t *testing.T) {
	reg := Default()
	for _, e := range reg.All() {
		for _, slug := range e.Related {
			_, err := reg.Lookup(slug)
			assert.NoError(t, err, "%s lists unknown related %s", e.Slug, slug)
			assert.NotEqual(t, e.Slug, slug)
		}
		assert.Len(t, reg.Related(e.Slug), len(e.Related))
	}
}

func TestAll_OrderedByCategoryThenTitle(t *testing.T) {
	all := Default().All()
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.Category == cur.Category {
			assert.Less(t, prev.Title, cur.Title)
		} else {
			assert.Less(t, string(prev.Category), string(cur.Category))
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Default().Lookup("does-not-exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCalculator))
	assert.Nil(t, Default().Related("does-not-exist"))
}

func TestRegister_Validation(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&Entry{Slug: "a"}))
	assert.Error(t, reg.Register(&Entry{Slug: "a"}))
	assert.Error(t, reg.Register(&Entry{}))
	assert.Equal(t, 1, reg.Count())

	_, err := (&Entry{Slug: "a"}).Run("{}")
	assert.Error(t, err)
}

func TestUnitEconomics_ThroughCatalog(t *testing.T) {
	e, err := Default().Lookup("unit-economics")
	require.NoError(t, err)

	out, err := e.Run(`{"monthlyMarketingSpend": 50000, "newCustomersPerMonth": 100, "revenuePerCustomer": 500, "grossMarginPercent": 80, "monthlyChurnRate": 5}`)
	require.NoError(t, err)

	res, ok := out.(unitecon.Result)
	require.True(t, ok)
	assert.InDelta(t, 500, res.CAC, 1e-9)
	ltv, finite := res.LTV.Float64()
	require.True(t, finite)
	assert.InDelta(t, 8000, ltv, 1e-9)
}

func TestMarketReport_WarnsOnOverHundredPercent(t *testing.T) {
	e, err := Default().Lookup("market-size-top-down")
	require.NoError(t, err)

	out, err := e.Run("totalMarketSize: 1000\nsamPercent: 150\nsomPercent: 10")
	require.NoError(t, err)

	rep := out.(MarketReport)
	assert.InDelta(t, 1500, rep.SAM, 1e-9)
	assert.NotEmpty(t, rep.Warnings)

	out, err = e.RunExample()
	require.NoError(t, err)
	assert.Empty(t, out.(MarketReport).Warnings)
}

func TestBottomUp_ThroughCatalog(t *testing.T) {
	e, err := Default().Lookup("market-size-bottom-up")
	require.NoError(t, err)

	out, err := e.Run(`{totalCustomers: 100000, targetPercent: 20, revenuePerCustomer: 1200}`)
	require.NoError(t, err)
	size := out.(MarketReport).SizeResult
	assert.InDelta(t, 120_000_000, size.TAM, 1e-6)
	assert.InDelta(t, 24_000_000, size.SAM, 1e-6)
	assert.InDelta(t, size.SAM*market.BottomUpCaptureRate, size.SOM, 0)
}

func TestCapTable_ErrorSurfaces(t *testing.T) {
	e, err := Default().Lookup("cap-table")
	require.NoError(t, err)

	_, err = e.Run(`{"holders": [{"name": "F", "class": "common", "shares": 100}], "rounds": [{"name": "Seed", "preMoneyValuation": 0, "investment": 10}]}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, captable.ErrInvalidRound))
}

func TestRun_DecodeError(t *testing.T) {
	e, err := Default().Lookup("break-even")
	require.NoError(t, err)

	_, err = e.Run("")
	assert.Error(t, err)
}

func TestRunwayProjection_DefaultHorizon(t *testing.T) {
	e, err := Default().Lookup("runway-projection")
	require.NoError(t, err)

	out, err := e.Run(`{"cashBalance": 100000, "monthlyExpenses": 50000}`)
	require.NoError(t, err)

	rep := out.(RunwayReport)
	require.Len(t, rep.Months, burnrate.DefaultHorizonMonths)
	month, finite := rep.CashOutMonth.Float64()
	require.True(t, finite)
	assert.Equal(t, 3.0, month)
	runway, _ := rep.Summary.RunwayMonths.Float64()
	assert.InDelta(t, 2, runway, 1e-9)
}

func TestRunwayProjection_HorizonCapped(t *testing.T) {
	e, err := Default().Lookup("runway-projection")
	require.NoError(t, err)

	out, err := e.Run(`{"cashBalance": 100000, "monthlyExpenses": 50000, "months": 2000000000}`)
	require.NoError(t, err)
	assert.Len(t, out.(RunwayReport).Months, burnrate.MaxHorizonMonths)

	out, err = e.Run(`{"cashBalance": 100000, "monthlyExpenses": 50000, "months": -5}`)
	require.NoError(t, err)
	assert.Len(t, out.(RunwayReport).Months, burnrate.DefaultHorizonMonths)
}

func TestBreakEven_TargetProfit(t *testing.T) {
	e, err := Default().Lookup("break-even")
	require.NoError(t, err)

	out, err := e.RunExample()
	require.NoError(t, err)
	rep := out.(BreakEvenReport)
	units, _ := rep.BreakEvenUnits.Float64()
	assert.Equal(t, 500.0, units)
	require.NotNil(t, rep.UnitsForTargetProfit)
	target, finite := rep.UnitsForTargetProfit.Float64()
	require.True(t, finite)
	assert.Equal(t, 1000.0, target)

	out, err = e.Run(`{"fixedCostsMonthly": 30000, "pricePerUnit": 100, "variableCostPerUnit": 40}`)
	require.NoError(t, err)
	assert.Nil(t, out.(BreakEvenReport).UnitsForTargetProfit)

	out, err = e.Run(`{"fixedCostsMonthly": 30000, "pricePerUnit": 40, "variableCostPerUnit": 40, "targetProfit": 1000}`)
	require.NoError(t, err)
	require.NotNil(t, out.(BreakEvenReport).UnitsForTargetProfit)
	assert.True(t, out.(BreakEvenReport).UnitsForTargetProfit.IsUnbounded())
}

func TestCapTable_ReportChecksOwnership(t *testing.T) {
	e, err := Default().Lookup("cap-table")
	require.NoError(t, err)

	out, err := e.RunExample()
	require.NoError(t, err)
	rep, ok := out.(CapTableReport)
	require.True(t, ok)
	assert.NotEmpty(t, rep.Rounds)
	assert.Empty(t, rep.Warnings)
}

func TestCapTableReport_PrefixesRoundName(t *testing.T) {
	rep, err := NewCapTableReport(CapTableRequest{
		Holders: []captable.Holder{{Name: "F", Class: captable.ClassCommon, Shares: 1000}},
		Rounds:  []captable.Round{{Name: "Seed", PreMoneyValuation: 4000, Investment: 1000}},
	})
	require.NoError(t, err)
	require.Len(t, rep.Rounds, 1)
	assert.Empty(t, rep.Warnings)

	_, err = NewCapTableReport(CapTableRequest{Rounds: []captable.Round{{Name: "Seed"}}})
	assert.Error(t, err)
}
