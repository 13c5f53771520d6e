package catalog

import (
	"fmt"

	"founder_calculators/pkg/core/breakeven"
	"founder_calculators/pkg/core/burnrate"
	"founder_calculators/pkg/core/calc"
	"founder_calculators/pkg/core/captable"
	"founder_calculators/pkg/core/market"
	"founder_calculators/pkg/core/metric"
	"founder_calculators/pkg/core/pricing"
	"founder_calculators/pkg/core/unitecon"
)

// Composite payloads and reports for calculators whose inputs or outputs are
// more than one record.

// SensitivityRequest is a unit-economics input plus the churn rates to sweep.
type SensitivityRequest struct {
	unitecon.Inputs
	ChurnRange []float64 `json:"churnRange"`
}

// ProjectionRequest feeds market.ProjectRevenue.
type ProjectionRequest struct {
	SOM                float64   `json:"som"`
	MarketShares       []float64 `json:"marketShares"`
	GrossMarginPercent float64   `json:"grossMarginPercent"`
	OpexPercent        float64   `json:"opexPercent"`
}

// BreakEvenRequest is a break-even input with an optional monthly profit goal.
type BreakEvenRequest struct {
	breakeven.Inputs
	TargetProfit *float64 `json:"targetProfit,omitempty"`
}

// BreakEvenReport adds the units needed for the profit goal when one is set.
type BreakEvenReport struct {
	breakeven.Result
	UnitsForTargetProfit *metric.Value `json:"unitsForTargetProfit,omitempty"`
}

// NewBreakEvenReport runs the break-even calculation for req.
func NewBreakEvenReport(req BreakEvenRequest) BreakEvenReport {
	rep := BreakEvenReport{Result: breakeven.Calculate(req.Inputs)}
	if req.TargetProfit != nil {
		units := breakeven.UnitsForTargetProfit(req.Inputs, *req.TargetProfit)
		rep.UnitsForTargetProfit = &units
	}
	return rep
}

// RunwayRequest is a burn-rate input plus a projection horizon.
// A zero horizon means burnrate.DefaultHorizonMonths.
type RunwayRequest struct {
	burnrate.Inputs
	Months int `json:"months"`
}

// RunwayReport combines the constant-burn summary with the month-by-month path.
type RunwayReport struct {
	Summary      burnrate.Result      `json:"summary"`
	Months       []burnrate.CashPoint `json:"months"`
	CashOutMonth metric.Value         `json:"cashOutMonth"`
}

// NewRunwayReport projects req over its horizon, clamped by burnrate.Horizon.
func NewRunwayReport(req RunwayRequest) RunwayReport {
	months := burnrate.ProjectRunway(req.Inputs, burnrate.Horizon(req.Months))
	return RunwayReport{
		Summary:      burnrate.Calculate(req.Inputs),
		Months:       months,
		CashOutMonth: burnrate.MonthsUntilCashOut(months),
	}
}

// CapTableRequest holds the starting holders and the rounds to apply.
type CapTableRequest struct {
	Holders []captable.Holder `json:"holders"`
	Rounds  []captable.Round  `json:"rounds"`
}

// CapTableReport is the per-round dilution path with any ownership warnings.
type CapTableReport struct {
	Rounds   []captable.RoundResult `json:"rounds"`
	Warnings []string               `json:"warnings,omitempty"`
}

// NewCapTableReport simulates req and checks each post-round table sums to 100%.
func NewCapTableReport(req CapTableRequest) (CapTableReport, error) {
	rounds, err := captable.Simulate(req.Holders, req.Rounds)
	if err != nil {
		return CapTableReport{}, err
	}
	rep := CapTableReport{Rounds: rounds}
	for _, r := range rounds {
		for _, w := range calc.CheckOwnership(r.Table).Warnings {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s: %s", r.Round, w))
		}
	}
	return rep, nil
}

// TierRequest feeds pricing.BlendTiers.
type TierRequest struct {
	Customers float64        `json:"customers"`
	Tiers     []pricing.Tier `json:"tiers"`
}

// MarketReport is a market size with any ordering warnings.
type MarketReport struct {
	market.SizeResult
	Warnings []string `json:"warnings,omitempty"`
}

func newMarketReport(res market.SizeResult) MarketReport {
	return MarketReport{
		SizeResult: res,
		Warnings:   calc.CheckMarketSize(res).Warnings,
	}
}
