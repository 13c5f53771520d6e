// Package safe converts a SAFE (simple agreement for future equity) into
// shares at a priced round.
package safe

// ConversionMethod names the price a SAFE converted at.
type ConversionMethod string

const (
	MethodRoundPrice ConversionMethod = "round"
	MethodCap        ConversionMethod = "cap"
	MethodDiscount   ConversionMethod = "discount"
	MethodNone       ConversionMethod = "none"
)

// Inputs for a single pre-money SAFE converting in a priced round.
type Inputs struct {
	Investment        float64 `json:"investment"`
	ValuationCap      float64 `json:"valuationCap"`    // 0 = uncapped
	DiscountPercent   float64 `json:"discountPercent"` // 0 = no discount
	PreMoneyValuation float64 `json:"preMoneyValuation"`
	PreMoneyShares    float64 `json:"preMoneyShares"` // fully diluted, before the round
}

// Result of the conversion
type Result struct {
	RoundPrice       float64          `json:"roundPrice"`
	CapPrice         float64          `json:"capPrice"`
	DiscountPrice    float64          `json:"discountPrice"`
	ConversionPrice  float64          `json:"conversionPrice"`
	Method           ConversionMethod `json:"method"`
	Shares           float64          `json:"shares"`
	OwnershipPercent float64          `json:"ownershipPercent"`
}

// Convert picks the lowest positive price among round, cap and discount price.
// With no positive price the SAFE yields no shares.
func Convert(in Inputs) Result {
	res := Result{Method: MethodNone}
	if in.PreMoneyShares <= 0 {
		return res
	}

	// 1. Prices per share
	res.RoundPrice = in.PreMoneyValuation / in.PreMoneyShares
	if in.ValuationCap > 0 {
		res.CapPrice = in.ValuationCap / in.PreMoneyShares
	}
	if in.DiscountPercent > 0 {
		res.DiscountPrice = res.RoundPrice * (1 - in.DiscountPercent/100)
	}

	// 2. Best price for the holder
	candidates := []struct {
		price  float64
		method ConversionMethod
	}{
		{res.RoundPrice, MethodRoundPrice},
		{res.CapPrice, MethodCap},
		{res.DiscountPrice, MethodDiscount},
	}
	for _, c := range candidates {
		if c.price <= 0 {
			continue
		}
		if res.ConversionPrice == 0 || c.price < res.ConversionPrice {
			res.ConversionPrice = c.price
			res.Method = c.method
		}
	}
	if res.ConversionPrice == 0 {
		return res
	}

	// 3. Shares and ownership
	res.Shares = in.Investment / res.ConversionPrice
	res.OwnershipPercent = res.Shares / (in.PreMoneyShares + res.Shares) * 100
	return res
}
