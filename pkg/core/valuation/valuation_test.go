package valuation

import (
	"math"
	"testing"
)

func TestCalculateWACC(t *testing.T) {
	// BetaL = 1.2 * (1 + 0.75 * 0.5) = 1.65
	// Ke = 4 + 1.65 * 5 = 12.25, Kd = 6 * 0.75 = 4.5
	// Wd = 1/3, We = 2/3 -> WACC = 12.25 * 2/3 + 4.5 / 3
	res := CalculateWACC(WACCInput{
		UnleveredBeta:            1.2,
		RiskFreeRatePercent:      4,
		MarketRiskPremiumPercent: 5,
		PreTaxCostOfDebtPercent:  6,
		TaxRatePercent:           25,
		DebtToEquityRatio:        0.5,
	})

	if math.Abs(res.LeveredBeta-1.65) > 0.0001 {
		t.Errorf("Expected levered beta 1.65, got %f", res.LeveredBeta)
	}
	if math.Abs(res.CostOfEquityPercent-12.25) > 0.0001 {
		t.Errorf("Expected Ke 12.25, got %f", res.CostOfEquityPercent)
	}
	expected := 12.25*2.0/3.0 + 4.5/3.0
	if math.Abs(res.WACCPercent-expected) > 0.0001 {
		t.Errorf("Expected WACC %f, got %f", expected, res.WACCPercent)
	}
}

func TestCalculateWACC_SizePremium(t *testing.T) {
	base := WACCInput{UnleveredBeta: 1, RiskFreeRatePercent: 4, MarketRiskPremiumPercent: 5}
	withPremium := base
	withPremium.SizePremiumPercent = 10

	diff := CalculateWACC(withPremium).WACCPercent - CalculateWACC(base).WACCPercent
	if math.Abs(diff-10) > 0.0001 {
		t.Errorf("All-equity WACC should move 1:1 with size premium, moved %f", diff)
	}
}

func TestCalculateDCF_Perpetuity(t *testing.T) {
	// A flat 100/yr forever at 10% is worth exactly 1000
	res := CalculateDCF(DCFInput{
		CashFlows:           []float64{100, 100},
		DiscountRatePercent: 10,
		NetCash:             50,
		SharesOutstanding:   10,
	})

	if len(res.PresentValues) != 2 {
		t.Fatalf("Expected 2 present values, got %d", len(res.PresentValues))
	}
	if math.Abs(res.PresentValues[0]-100/1.1) > 0.0001 {
		t.Errorf("Expected year-1 PV %f, got %f", 100/1.1, res.PresentValues[0])
	}
	if math.Abs(res.EnterpriseValue-1000) > 0.0001 {
		t.Errorf("Expected EV 1000, got %f", res.EnterpriseValue)
	}
	if math.Abs(res.EquityValue-1050) > 0.0001 {
		t.Errorf("Expected equity 1050, got %f", res.EquityValue)
	}
	if math.Abs(res.SharePrice-105) > 0.0001 {
		t.Errorf("Expected share price 105, got %f", res.SharePrice)
	}
}

func TestCalculateDCF_GrowthAboveRate(t *testing.T) {
	res := CalculateDCF(DCFInput{CashFlows: []float64{100}, DiscountRatePercent: 5, TerminalGrowthPercent: 6})

	if res.TerminalValue != 0 {
		t.Errorf("Terminal value must be 0 when growth >= discount rate, got %f", res.TerminalValue)
	}
	if res.SharePrice != 0 {
		t.Errorf("No shares means no share price, got %f", res.SharePrice)
	}
}

func TestCalculateVCMethod(t *testing.T) {
	// Post = 100M / 10 * 0.8 = 8M, Pre = 6M, investor 25%
	res := CalculateVCMethod(VCInput{
		ExitValue:         100_000_000,
		TargetMultiple:    10,
		Investment:        2_000_000,
		DilutionPercent:   20,
		SharesOutstanding: 6_000_000,
	})

	if math.Abs(res.PostMoneyValuation-8_000_000) > 0.01 {
		t.Errorf("Expected post-money 8M, got %f", res.PostMoneyValuation)
	}
	if math.Abs(res.PreMoneyValuation-6_000_000) > 0.01 {
		t.Errorf("Expected pre-money 6M, got %f", res.PreMoneyValuation)
	}
	if math.Abs(res.InvestorOwnership-25) > 0.0001 {
		t.Errorf("Expected 25%% ownership, got %f", res.InvestorOwnership)
	}
	if math.Abs(res.RequiredAtExit-20) > 0.0001 {
		t.Errorf("Expected 20%% ownership at exit, got %f", res.RequiredAtExit)
	}
	if math.Abs(res.SharePrice-1) > 0.0001 {
		t.Errorf("Expected $1.00 per share, got %f", res.SharePrice)
	}

	if zero := CalculateVCMethod(VCInput{ExitValue: 1}); zero != (VCResult{}) {
		t.Errorf("Expected zero result for missing multiple, got %+v", zero)
	}
}

func TestCalculateRevenueComps(t *testing.T) {
	input := CompsInput{
		Revenue: 1_000_000,
		NetCash: 500_000,
		Peers: []PeerComparable{
			{Name: "A", EVRevenue: 8},
			{Name: "B", EVRevenue: 2},
			{Name: "C", EVRevenue: 6},
			{Name: "D", EVRevenue: 4},
			{Name: "Broken", EVRevenue: -1},
			{Name: "Deal", EVRevenue: 12, IsTransaction: true},
		},
	}

	res := CalculateRevenueComps(input)
	// Sorted [2 4 6 8]: 25th idx 1 -> 4, 75th idx 3 -> 8
	if res.PeersUsed != 4 {
		t.Fatalf("Expected 4 peers, got %d", res.PeersUsed)
	}
	if res.MultipleRange != [2]float64{4, 8} {
		t.Errorf("Expected range [4 8], got %v", res.MultipleRange)
	}
	if res.MedianMultiple != 5 {
		t.Errorf("Expected median 5, got %f", res.MedianMultiple)
	}
	if res.ImpliedEquityValue != [2]float64{4_500_000, 8_500_000} {
		t.Errorf("Unexpected equity range %v", res.ImpliedEquityValue)
	}

	txns := CalculateTransactions(input)
	if txns.PeersUsed != 1 || txns.MultipleRange != [2]float64{12, 12} {
		t.Errorf("Unexpected transaction comps %+v", txns)
	}

	if empty := CalculateRevenueComps(CompsInput{Revenue: 1}); empty.PeersUsed != 0 {
		t.Errorf("Expected no peers used, got %d", empty.PeersUsed)
	}
}

func TestRunAllValuations(t *testing.T) {
	items := RunAllValuations(MasterInput{
		VC:  &VCInput{ExitValue: 100, TargetMultiple: 10, Investment: 2},
		DCF: &DCFInput{CashFlows: []float64{10}, DiscountRatePercent: 10},
		Comps: &CompsInput{Revenue: 10, Peers: []PeerComparable{
			{Name: "A", EVRevenue: 3},
		}},
	})

	// No transactions in the peer set, so 3 line items
	if len(items) != 3 {
		t.Fatalf("Expected 3 line items, got %d", len(items))
	}
	if items[0].ModelName != "Venture Capital Method" || items[0].Low != 8 {
		t.Errorf("Unexpected VC line %+v", items[0])
	}
	if items[2].Low != 30 || items[2].High != 30 {
		t.Errorf("Unexpected comps line %+v", items[2])
	}

	if len(RunAllValuations(MasterInput{})) != 0 {
		t.Error("Empty input should produce no line items")
	}
}
