// Package unitecon derives customer unit economics (CAC, LTV, payback) from
// marketing spend, acquisition, revenue, margin and churn.
package unitecon

import (
	"math"

	"founder_calculators/pkg/core/metric"
)

// Inputs holds the monthly unit-economics drivers.
// Percent fields are expressed on a 0-100 scale.
type Inputs struct {
	MonthlyMarketingSpend float64 `json:"monthlyMarketingSpend"`
	NewCustomersPerMonth  float64 `json:"newCustomersPerMonth"`
	RevenuePerCustomer    float64 `json:"revenuePerCustomer"` // monthly
	GrossMarginPercent    float64 `json:"grossMarginPercent"`
	MonthlyChurnRate      float64 `json:"monthlyChurnRate"` // 0 = customers never churn
}

// Result holds the derived metrics
type Result struct {
	CAC                float64      `json:"cac"`
	ARPU               float64      `json:"arpu"`
	AvgLifetimeMonths  metric.Value `json:"avgLifetimeMonths"`
	LTV                metric.Value `json:"ltv"`
	LTVCACRatio        metric.Value `json:"ltvCacRatio"`
	PaybackMonths      metric.Value `json:"paybackMonths"`
	MonthlyGrossProfit float64      `json:"monthlyGrossProfit"`
	BreakEvenCustomers metric.Value `json:"breakEvenCustomers"` // integral when finite
}

// CalculateUnitEconomics computes CAC, LTV, LTV:CAC, payback and break-even.
// Division by zero never fails: each case resolves to 0 or Unbounded.
func CalculateUnitEconomics(in Inputs) Result {
	// 1. CAC = Spend / New Customers (no acquisitions -> 0, "no signal")
	cac := 0.0
	if in.NewCustomersPerMonth > 0 {
		cac = in.MonthlyMarketingSpend / in.NewCustomersPerMonth
	}

	arpu := in.RevenuePerCustomer

	// 2. Lifetime = 1 / churn
	lifetime := metric.Unbounded()
	if in.MonthlyChurnRate > 0 {
		lifetime = metric.Finite(1 / (in.MonthlyChurnRate / 100))
	}

	// 3. Gross profit per customer per month
	grossProfit := arpu * (in.GrossMarginPercent / 100)

	// 4. LTV = GP * Lifetime
	ltv := metric.Unbounded()
	if months, ok := lifetime.Float64(); ok {
		ltv = metric.Finite(grossProfit * months)
	}

	// 5. LTV:CAC
	var ratio metric.Value
	switch {
	case cac == 0:
		ratio = metric.Finite(0)
	case ltv.IsUnbounded():
		ratio = metric.Unbounded()
	default:
		ratio = metric.Finite(ltv.OrZero() / cac)
	}

	// 6. Payback and break-even both need positive gross profit
	payback := metric.Unbounded()
	breakEven := metric.Unbounded()
	if grossProfit > 0 {
		payback = metric.Finite(cac / grossProfit)
		breakEven = metric.Finite(math.Ceil(in.MonthlyMarketingSpend / grossProfit))
	}

	return Result{
		CAC:                cac,
		ARPU:               arpu,
		AvgLifetimeMonths:  lifetime,
		LTV:                ltv,
		LTVCACRatio:        ratio,
		PaybackMonths:      payback,
		MonthlyGrossProfit: grossProfit,
		BreakEvenCustomers: breakEven,
	}
}
