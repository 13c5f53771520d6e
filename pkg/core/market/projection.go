package market

// RevenueProjection is one year of the market-share trajectory.
type RevenueProjection struct {
	Year        int     `json:"year"` // 1-based
	MarketShare float64 `json:"marketShare"`
	Revenue     float64 `json:"revenue"`
	GrossMargin float64 `json:"grossMargin"`
	Opex        float64 `json:"opex"`
	Profit      float64 `json:"profit"`
}

// ProjectRevenue converts a sequence of market-share percentages (of SOM) into
// yearly revenue and profit. The first share is year 1.
// Opex is expressed as a percentage of gross margin.
func ProjectRevenue(som float64, marketShares []float64, grossMarginPct, opexPct float64) []RevenueProjection {
	projections := make([]RevenueProjection, 0, len(marketShares))
	for i, share := range marketShares {
		revenue := som * (share / 100)
		grossMargin := revenue * (grossMarginPct / 100)
		opex := grossMargin * (opexPct / 100)

		projections = append(projections, RevenueProjection{
			Year:        i + 1,
			MarketShare: share,
			Revenue:     revenue,
			GrossMargin: grossMargin,
			Opex:        opex,
			Profit:      grossMargin - opex,
		})
	}
	return projections
}
