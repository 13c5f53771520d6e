// Package pricing sets prices from cost and target margin, and blends tiered plans.
package pricing

import (
	"founder_calculators/pkg/core/metric"
)

// CostPlusInputs for margin-based pricing
type CostPlusInputs struct {
	UnitCost            float64 `json:"unitCost"`
	TargetMarginPercent float64 `json:"targetMarginPercent"` // gross margin on price, 0-100
}

// CostPlusResult holds the price that yields the target margin.
type CostPlusResult struct {
	Price         metric.Value `json:"price"`
	MarkupPercent metric.Value `json:"markupPercent"` // markup on cost
	UnitProfit    metric.Value `json:"unitProfit"`
}

// Tier is one plan in a tiered price list.
type Tier struct {
	Name                 string  `json:"name"`
	MonthlyPrice         float64 `json:"monthlyPrice"`
	CustomerSharePercent float64 `json:"customerSharePercent"`
}

// TierLine is one tier's contribution to the mix.
type TierLine struct {
	Name      string  `json:"name"`
	Customers float64 `json:"customers"`
	MRR       float64 `json:"mrr"`
}

// TierMix is the blended result across all tiers.
type TierMix struct {
	Lines                []TierLine `json:"lines"`
	MRR                  float64    `json:"mrr"`
	ARR                  float64    `json:"arr"`
	BlendedARPU          float64    `json:"blendedArpu"`
	AllocatedPercent     float64    `json:"allocatedPercent"` // sum of shares; 100 when fully allocated
	UnallocatedCustomers float64    `json:"unallocatedCustomers"`
}

// CalculateCostPlus solves price = cost / (1 - margin).
// A margin of 100% or more cannot be reached at any price (Unbounded).
func CalculateCostPlus(in CostPlusInputs) CostPlusResult {
	margin := in.TargetMarginPercent / 100
	if margin >= 1 {
		return CostPlusResult{
			Price:         metric.Unbounded(),
			MarkupPercent: metric.Unbounded(),
			UnitProfit:    metric.Unbounded(),
		}
	}

	price := in.UnitCost / (1 - margin)
	markup := metric.Finite(0)
	if in.UnitCost > 0 {
		markup = metric.Finite((price - in.UnitCost) / in.UnitCost * 100)
	}

	return CostPlusResult{
		Price:         metric.Finite(price),
		MarkupPercent: markup,
		UnitProfit:    metric.Finite(price - in.UnitCost),
	}
}

// BlendTiers spreads a customer count across tiers by share and sums MRR.
// Shares are not normalized; customers beyond 100% allocation are reported as-is.
func BlendTiers(customers float64, tiers []Tier) TierMix {
	mix := TierMix{Lines: make([]TierLine, 0, len(tiers))}

	var allocated float64
	for _, tier := range tiers {
		n := customers * (tier.CustomerSharePercent / 100)
		mrr := n * tier.MonthlyPrice

		mix.Lines = append(mix.Lines, TierLine{Name: tier.Name, Customers: n, MRR: mrr})
		mix.MRR += mrr
		mix.AllocatedPercent += tier.CustomerSharePercent
		allocated += n
	}

	mix.ARR = mix.MRR * 12
	if allocated > 0 {
		mix.BlendedARPU = mix.MRR / allocated
	}
	mix.UnallocatedCustomers = customers - allocated
	return mix
}
