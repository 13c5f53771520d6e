// Package breakeven computes the unit volume and revenue needed to cover fixed costs.
package breakeven

import (
	"math"

	"founder_calculators/pkg/core/metric"
)

// Inputs for a single-product break-even analysis (monthly).
type Inputs struct {
	FixedCostsMonthly   float64 `json:"fixedCostsMonthly"`
	PricePerUnit        float64 `json:"pricePerUnit"`
	VariableCostPerUnit float64 `json:"variableCostPerUnit"`
}

// Result of the break-even analysis
type Result struct {
	ContributionMargin        float64      `json:"contributionMargin"`
	ContributionMarginPercent float64      `json:"contributionMarginPercent"`
	BreakEvenUnits            metric.Value `json:"breakEvenUnits"`
	BreakEvenRevenue          metric.Value `json:"breakEvenRevenue"`
}

// Calculate returns the break-even point. A non-positive contribution margin
// never breaks even (Unbounded).
func Calculate(in Inputs) Result {
	cm := in.PricePerUnit - in.VariableCostPerUnit

	cmPct := 0.0
	if in.PricePerUnit != 0 {
		cmPct = cm / in.PricePerUnit * 100
	}

	res := Result{
		ContributionMargin:        cm,
		ContributionMarginPercent: cmPct,
		BreakEvenUnits:            metric.Unbounded(),
		BreakEvenRevenue:          metric.Unbounded(),
	}
	if cm <= 0 {
		return res
	}

	units := math.Ceil(in.FixedCostsMonthly / cm)
	res.BreakEvenUnits = metric.Finite(units)
	res.BreakEvenRevenue = metric.Finite(units * in.PricePerUnit)
	return res
}

// UnitsForTargetProfit returns the units needed to cover fixed costs plus a
// monthly profit target.
func UnitsForTargetProfit(in Inputs, targetProfit float64) metric.Value {
	cm := in.PricePerUnit - in.VariableCostPerUnit
	if cm <= 0 {
		return metric.Unbounded()
	}
	return metric.Finite(math.Ceil((in.FixedCostsMonthly + targetProfit) / cm))
}
