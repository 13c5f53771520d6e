package valuation

import (
	"sort"
)

// PeerComparable represents a comparable company or transaction
type PeerComparable struct {
	Name          string  `json:"name"`
	EVRevenue     float64 `json:"evRevenue"`
	IsTransaction bool    `json:"isTransaction"` // True for Precedent Transaction, False for Trading Comp
}

// CompsInput holds the target's revenue run-rate and its peer set.
type CompsInput struct {
	Revenue float64          `json:"revenue"` // ARR or LTM revenue
	NetCash float64          `json:"netCash"`
	Peers   []PeerComparable `json:"peers"`
}

// CompsResult holds the valuation range derived from revenue multiples
type CompsResult struct {
	MultipleRange      [2]float64 `json:"multipleRange"` // Low, High (25th - 75th percentile)
	MedianMultiple     float64    `json:"medianMultiple"`
	ImpliedEV          [2]float64 `json:"impliedEv"`
	ImpliedEquityValue [2]float64 `json:"impliedEquityValue"`
	PeersUsed          int        `json:"peersUsed"`
}

// CalculateRevenueComps performs Comparable Companies Analysis on EV/Revenue.
// Peers with a non-positive multiple are ignored.
func CalculateRevenueComps(input CompsInput) CompsResult {
	return calculateMultiples(input, false)
}

// CalculateTransactions performs Precedent Transaction Analysis
// Usually involves a control premium, so multiples are higher.
func CalculateTransactions(input CompsInput) CompsResult {
	return calculateMultiples(input, true)
}

func calculateMultiples(input CompsInput, onlyTransactions bool) CompsResult {
	var mults []float64
	for _, p := range input.Peers {
		if p.IsTransaction != onlyTransactions {
			continue
		}
		if p.EVRevenue > 0 {
			mults = append(mults, p.EVRevenue)
		}
	}

	res := CompsResult{PeersUsed: len(mults)}
	if len(mults) == 0 {
		return res
	}

	sort.Float64s(mults)
	lo, hi := percentileRange(mults)
	res.MultipleRange = [2]float64{lo, hi}
	res.MedianMultiple = median(mults)
	res.ImpliedEV = [2]float64{lo * input.Revenue, hi * input.Revenue}
	res.ImpliedEquityValue = [2]float64{res.ImpliedEV[0] + input.NetCash, res.ImpliedEV[1] + input.NetCash}

	return res
}

// percentileRange returns the 25th and 75th percentile of sorted values (nearest rank)
func percentileRange(sorted []float64) (float64, float64) {
	lowIdx := int(float64(len(sorted)) * 0.25)
	highIdx := int(float64(len(sorted)) * 0.75)
	if highIdx >= len(sorted) {
		highIdx = len(sorted) - 1
	}
	return sorted[lowIdx], sorted[highIdx]
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
