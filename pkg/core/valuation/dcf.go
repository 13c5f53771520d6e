package valuation

import "math"

// DCFInput encapsulates all inputs required for a Discounted Cash Flow valuation
type DCFInput struct {
	CashFlows             []float64 `json:"cashFlows"` // free cash flow per projection year, year 1 first
	DiscountRatePercent   float64   `json:"discountRatePercent"`
	TerminalGrowthPercent float64   `json:"terminalGrowthPercent"`
	NetCash               float64   `json:"netCash"` // cash minus debt
	SharesOutstanding     float64   `json:"sharesOutstanding"`
}

// DCFResult holds the valuation outputs
type DCFResult struct {
	PresentValues   []float64 `json:"presentValues"`
	PVCashFlows     float64   `json:"pvCashFlows"`
	TerminalValue   float64   `json:"terminalValue"`
	PVTerminal      float64   `json:"pvTerminal"`
	EnterpriseValue float64   `json:"enterpriseValue"`
	EquityValue     float64   `json:"equityValue"`
	SharePrice      float64   `json:"sharePrice"`
}

// CalculateDCF performs a standard 2-stage DCF analysis
func CalculateDCF(input DCFInput) DCFResult {
	r := input.DiscountRatePercent / 100
	g := input.TerminalGrowthPercent / 100

	res := DCFResult{PresentValues: make([]float64, 0, len(input.CashFlows))}

	// 1. Discount explicit cash flows
	for i, cf := range input.CashFlows {
		pv := cf / math.Pow(1+r, float64(i+1))
		res.PresentValues = append(res.PresentValues, pv)
		res.PVCashFlows += pv
	}

	// 2. Terminal Value (Gordon Growth)
	// TV = FCF_n * (1+g) / (r - g); only defined when r > g
	n := len(input.CashFlows)
	if n > 0 && r > g {
		res.TerminalValue = input.CashFlows[n-1] * (1 + g) / (r - g)
		res.PVTerminal = res.TerminalValue / math.Pow(1+r, float64(n))
	}

	// 3. Aggregation
	res.EnterpriseValue = res.PVCashFlows + res.PVTerminal
	res.EquityValue = res.EnterpriseValue + input.NetCash
	if input.SharesOutstanding != 0 {
		res.SharePrice = res.EquityValue / input.SharesOutstanding
	}

	return res
}
