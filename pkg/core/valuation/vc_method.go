package valuation

// VCInput drives the Venture Capital method: work back from an exit value to
// today's valuation given the investor's required return multiple.
type VCInput struct {
	ExitValue         float64 `json:"exitValue"`
	TargetMultiple    float64 `json:"targetMultiple"` // e.g. 10 for a 10x return
	Investment        float64 `json:"investment"`
	DilutionPercent   float64 `json:"dilutionPercent"` // expected dilution from later rounds
	SharesOutstanding float64 `json:"sharesOutstanding,omitempty"`
}

// VCResult holds the implied valuation today
type VCResult struct {
	PostMoneyValuation float64 `json:"postMoneyValuation"`
	PreMoneyValuation  float64 `json:"preMoneyValuation"`
	InvestorOwnership  float64 `json:"investorOwnershipPercent"`
	RequiredAtExit     float64 `json:"requiredOwnershipAtExitPercent"`
	SharePrice         float64 `json:"sharePrice"`
}

// CalculateVCMethod returns post = exit / multiple * (1 - dilution) and pre = post - investment.
// A non-positive target multiple yields a zero result.
func CalculateVCMethod(input VCInput) VCResult {
	if input.TargetMultiple <= 0 {
		return VCResult{}
	}

	// 1. Post-money today, after retention through later dilution
	post := input.ExitValue / input.TargetMultiple * (1 - input.DilutionPercent/100)
	res := VCResult{
		PostMoneyValuation: post,
		PreMoneyValuation:  post - input.Investment,
	}

	// 2. Ownership
	if post > 0 {
		res.InvestorOwnership = input.Investment / post * 100
	}
	if input.ExitValue > 0 {
		res.RequiredAtExit = input.Investment * input.TargetMultiple / input.ExitValue * 100
	}

	// 3. Price per pre-money share
	if input.SharesOutstanding > 0 {
		res.SharePrice = res.PreMoneyValuation / input.SharesOutstanding
	}
	return res
}
