package unitecon

// SensitivityPoint is one sample of the churn sweep.
// LTV and LTVCACRatio are 0 when the underlying value is unbounded (churn = 0),
// not when nothing was added.
type SensitivityPoint struct {
	ChurnRate   float64 `json:"churnRate"`
	LTV         float64 `json:"ltv"`
	LTVCACRatio float64 `json:"ltvCacRatio"`
}

// GenerateSensitivity recomputes the unit economics for each churn rate,
// keeping every other input fixed. Order and duplicates are preserved.
func GenerateSensitivity(in Inputs, churnRange []float64) []SensitivityPoint {
	points := make([]SensitivityPoint, 0, len(churnRange))
	for _, churn := range churnRange {
		sample := in
		sample.MonthlyChurnRate = churn

		res := CalculateUnitEconomics(sample)
		points = append(points, SensitivityPoint{
			ChurnRate:   churn,
			LTV:         res.LTV.OrZero(),
			LTVCACRatio: res.LTVCACRatio.OrZero(),
		})
	}
	return points
}
