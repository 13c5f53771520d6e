package valuation

// MasterInput aggregates all inputs needed for the full suite of models.
// A nil section skips that model.
type MasterInput struct {
	VC    *VCInput    `json:"vc,omitempty"`
	DCF   *DCFInput   `json:"dcf,omitempty"`
	Comps *CompsInput `json:"comps,omitempty"`
}

// LineItem represents one bar of the football-field chart (equity value)
type LineItem struct {
	ModelName string  `json:"model"`
	Low       float64 `json:"low"`
	High      float64 `json:"high"`
}

// RunAllValuations performs VC method, DCF and revenue comps
func RunAllValuations(input MasterInput) []LineItem {
	results := []LineItem{}

	// 1. Venture Capital Method (pre-money)
	if input.VC != nil {
		vc := CalculateVCMethod(*input.VC)
		results = append(results, LineItem{
			ModelName: "Venture Capital Method",
			Low:       vc.PreMoneyValuation,
			High:      vc.PreMoneyValuation,
		})
	}

	// 2. Discounted Cash Flow
	if input.DCF != nil {
		dcf := CalculateDCF(*input.DCF)
		results = append(results, LineItem{
			ModelName: "Discounted Cash Flow",
			Low:       dcf.EquityValue,
			High:      dcf.EquityValue,
		})
	}

	// 3. Trading comps and precedent transactions
	if input.Comps != nil {
		if comps := CalculateRevenueComps(*input.Comps); comps.PeersUsed > 0 {
			results = append(results, LineItem{
				ModelName: "Revenue Multiple (Trading Comps)",
				Low:       comps.ImpliedEquityValue[0],
				High:      comps.ImpliedEquityValue[1],
			})
		}
		if txns := CalculateTransactions(*input.Comps); txns.PeersUsed > 0 {
			results = append(results, LineItem{
				ModelName: "Revenue Multiple (Precedent Transactions)",
				Low:       txns.ImpliedEquityValue[0],
				High:      txns.ImpliedEquityValue[1],
			})
		}
	}

	return results
}
