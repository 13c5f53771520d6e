// Package burnrate computes cash burn and runway.
package burnrate

import (
	"founder_calculators/pkg/core/metric"
)

const (
	// DefaultHorizonMonths is the projection length when none is given.
	DefaultHorizonMonths = 24
	// MaxHorizonMonths caps a projection at ten years.
	MaxHorizonMonths = 120
)

// Inputs describe the current monthly cash position
type Inputs struct {
	CashBalance          float64 `json:"cashBalance"`
	MonthlyRevenue       float64 `json:"monthlyRevenue"`
	MonthlyExpenses      float64 `json:"monthlyExpenses"`
	RevenueGrowthPercent float64 `json:"revenueGrowthPercent"` // month-over-month, used by ProjectRunway
}

// Result of the burn analysis
type Result struct {
	GrossBurn    float64      `json:"grossBurn"`
	NetBurn      float64      `json:"netBurn"`
	RunwayMonths metric.Value `json:"runwayMonths"`
	DefaultAlive bool         `json:"defaultAlive"` // revenue covers expenses today
}

// CashPoint is the cash position at the end of a projected month.
type CashPoint struct {
	Month      int     `json:"month"`
	Revenue    float64 `json:"revenue"`
	Expenses   float64 `json:"expenses"`
	NetBurn    float64 `json:"netBurn"`
	EndingCash float64 `json:"endingCash"`
}

// Calculate returns burn and runway at a constant burn.
// Runway is Unbounded when revenue covers expenses.
func Calculate(in Inputs) Result {
	netBurn := in.MonthlyExpenses - in.MonthlyRevenue

	res := Result{
		GrossBurn:    in.MonthlyExpenses,
		NetBurn:      netBurn,
		RunwayMonths: metric.Unbounded(),
		DefaultAlive: netBurn <= 0,
	}
	if netBurn > 0 {
		res.RunwayMonths = metric.Finite(in.CashBalance / netBurn)
	}
	return res
}

// Horizon resolves a requested projection length: non-positive means
// DefaultHorizonMonths, and anything above MaxHorizonMonths is capped.
func Horizon(months int) int {
	switch {
	case months <= 0:
		return DefaultHorizonMonths
	case months > MaxHorizonMonths:
		return MaxHorizonMonths
	}
	return months
}

// ProjectRunway simulates the cash balance month by month with revenue
// compounding at RevenueGrowthPercent and flat expenses. Cash may go negative;
// the caller decides where to cut the chart. months is capped at
// MaxHorizonMonths; non-positive months yield an empty projection.
func ProjectRunway(in Inputs, months int) []CashPoint {
	if months <= 0 {
		return []CashPoint{}
	}
	if months > MaxHorizonMonths {
		months = MaxHorizonMonths
	}

	points := make([]CashPoint, 0, months)
	cash := in.CashBalance
	revenue := in.MonthlyRevenue
	for m := 1; m <= months; m++ {
		if m > 1 {
			revenue *= 1 + in.RevenueGrowthPercent/100
		}
		burn := in.MonthlyExpenses - revenue
		cash -= burn

		points = append(points, CashPoint{
			Month:      m,
			Revenue:    revenue,
			Expenses:   in.MonthlyExpenses,
			NetBurn:    burn,
			EndingCash: cash,
		})
	}
	return points
}

// MonthsUntilCashOut returns the first projected month whose ending cash is
// negative, or Unbounded if the projection never runs out.
func MonthsUntilCashOut(points []CashPoint) metric.Value {
	for _, p := range points {
		if p.EndingCash < 0 {
			return metric.Finite(float64(p.Month))
		}
	}
	return metric.Unbounded()
}
