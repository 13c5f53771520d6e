// Package market sizes a market (TAM/SAM/SOM) top-down or bottom-up and
// projects revenue from an assumed market-share trajectory.
package market

// BottomUpCaptureRate is the share of SAM assumed obtainable in the
// bottom-up method. Fixed at exactly 10%.
const BottomUpCaptureRate = 0.1

// TopDownInputs starts from a total market size and narrows it by percentages (0-100).
type TopDownInputs struct {
	TotalMarketSize float64 `json:"totalMarketSize"`
	SAMPercent      float64 `json:"samPercent"`
	SOMPercent      float64 `json:"somPercent"` // share of SAM
}

// BottomUpInputs builds the market from a customer count and revenue per customer.
type BottomUpInputs struct {
	TotalCustomers     float64 `json:"totalCustomers"`
	TargetPercent      float64 `json:"targetPercent"`
	RevenuePerCustomer float64 `json:"revenuePerCustomer"`
}

// SizeResult holds the nested market estimates. SOM <= SAM <= TAM for
// percentages within 0-100.
type SizeResult struct {
	TAM float64 `json:"tam"`
	SAM float64 `json:"sam"`
	SOM float64 `json:"som"`
}

// CalculateTopDown applies SAM% to the total market and SOM% to SAM.
// Percentages are not clamped; a value above 100 yields SAM > TAM.
func CalculateTopDown(in TopDownInputs) SizeResult {
	tam := in.TotalMarketSize
	sam := tam * (in.SAMPercent / 100)
	som := sam * (in.SOMPercent / 100)

	return SizeResult{TAM: tam, SAM: sam, SOM: som}
}

// CalculateBottomUp prices the whole customer base (TAM) and the targeted
// segment (SAM); SOM is BottomUpCaptureRate of SAM.
func CalculateBottomUp(in BottomUpInputs) SizeResult {
	targetCustomers := in.TotalCustomers * (in.TargetPercent / 100)

	tam := in.TotalCustomers * in.RevenuePerCustomer
	sam := targetCustomers * in.RevenuePerCustomer
	som := sam * BottomUpCaptureRate

	return SizeResult{TAM: tam, SAM: sam, SOM: som}
}
