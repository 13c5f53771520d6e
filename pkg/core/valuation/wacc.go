package valuation

// WACCInput parameters for calculating Cost of Capital.
// Rates are percentages (8 = 8%).
type WACCInput struct {
	UnleveredBeta            float64 `json:"unleveredBeta"`
	RiskFreeRatePercent      float64 `json:"riskFreeRatePercent"`
	MarketRiskPremiumPercent float64 `json:"marketRiskPremiumPercent"`
	SizePremiumPercent       float64 `json:"sizePremiumPercent"` // early-stage / illiquidity premium
	PreTaxCostOfDebtPercent  float64 `json:"preTaxCostOfDebtPercent"`
	TaxRatePercent           float64 `json:"taxRatePercent"`
	DebtToEquityRatio        float64 `json:"debtToEquityRatio"` // Target Leverage (D/E)
}

// WACCResult holds the calculated rates, as percentages
type WACCResult struct {
	LeveredBeta         float64 `json:"leveredBeta"`
	CostOfEquityPercent float64 `json:"costOfEquityPercent"`
	CostOfDebtPercent   float64 `json:"costOfDebtPercent"` // After-tax
	WACCPercent         float64 `json:"waccPercent"`
	WeightDebt          float64 `json:"weightDebt"`
	WeightEquity        float64 `json:"weightEquity"`
}

// CalculateWACC computes the Weighted Average Cost of Capital using CAPM and Hamada Equation
func CalculateWACC(input WACCInput) WACCResult {
	t := input.TaxRatePercent / 100

	// 1. Re-lever Beta (Hamada)
	// BetaL = BetaU * (1 + (1-t)*(D/E))
	leveredBeta := input.UnleveredBeta * (1 + (1-t)*input.DebtToEquityRatio)

	// 2. Cost of Equity (CAPM + size premium)
	// Ke = Rf + BetaL * ERP + SP
	ke := input.RiskFreeRatePercent + leveredBeta*input.MarketRiskPremiumPercent + input.SizePremiumPercent

	// 3. Cost of Debt (After-tax)
	kd := input.PreTaxCostOfDebtPercent * (1 - t)

	// 4. Weights
	// D/E = x -> Wd = x / (1+x), We = 1 / (1+x)
	wd := input.DebtToEquityRatio / (1 + input.DebtToEquityRatio)
	we := 1.0 / (1 + input.DebtToEquityRatio)

	return WACCResult{
		LeveredBeta:         leveredBeta,
		CostOfEquityPercent: ke,
		CostOfDebtPercent:   kd,
		WACCPercent:         (ke * we) + (kd * wd),
		WeightDebt:          wd,
		WeightEquity:        we,
	}
}
