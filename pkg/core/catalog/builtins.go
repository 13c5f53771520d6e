package catalog

import (
	"founder_calculators/pkg/core/burnrate"
	"founder_calculators/pkg/core/market"
	"founder_calculators/pkg/core/pricing"
	"founder_calculators/pkg/core/safe"
	"founder_calculators/pkg/core/unitecon"
	"founder_calculators/pkg/core/valuation"
)

func builtins() []*Entry {
	return []*Entry{
		// =====================================================================
		// GROWTH
		// =====================================================================
		{
			Slug:        "unit-economics",
			Title:       "Unit Economics Calculator",
			Description: "Work out CAC, LTV, LTV:CAC, payback period and break-even customers from your monthly numbers.",
			Category:    CategoryGrowth,
			Related:     []string{"churn-sensitivity", "break-even", "pricing-cost-plus"},
			Fields: []Field{
				{Name: "monthlyMarketingSpend", Label: "Monthly marketing spend", Kind: KindCurrency, Default: "50000"},
				{Name: "newCustomersPerMonth", Label: "New customers per month", Kind: KindCount, Default: "100"},
				{Name: "revenuePerCustomer", Label: "Monthly revenue per customer", Kind: KindCurrency, Default: "500"},
				{Name: "grossMarginPercent", Label: "Gross margin", Kind: KindPercent, Default: "80"},
				{Name: "monthlyChurnRate", Label: "Monthly churn", Kind: KindPercent, Default: "5", Help: "0 means customers never churn"},
			},
			Example: `
monthlyMarketingSpend: 50000
newCustomersPerMonth: 100
revenuePerCustomer: 500
grossMarginPercent: 80
monthlyChurnRate: 5
`,
			run: runner(unitecon.CalculateUnitEconomics),
		},
		{
			Slug:        "churn-sensitivity",
			Title:       "Churn Sensitivity Analysis",
			Description: "See how LTV and LTV:CAC move as monthly churn changes, holding everything else fixed.",
			Category:    CategoryGrowth,
			Related:     []string{"unit-economics"},
			Fields: []Field{
				{Name: "monthlyMarketingSpend", Label: "Monthly marketing spend", Kind: KindCurrency, Default: "50000"},
				{Name: "newCustomersPerMonth", Label: "New customers per month", Kind: KindCount, Default: "100"},
				{Name: "revenuePerCustomer", Label: "Monthly revenue per customer", Kind: KindCurrency, Default: "500"},
				{Name: "grossMarginPercent", Label: "Gross margin", Kind: KindPercent, Default: "80"},
				{Name: "churnRange", Label: "Churn rates to test", Kind: KindList, Default: "1, 2, 3, 5, 7.5, 10, 15"},
			},
			Example: `
monthlyMarketingSpend: 50000
newCustomersPerMonth: 100
revenuePerCustomer: 500
grossMarginPercent: 80
churnRange: [1, 2, 3, 5, 7.5, 10, 15]
`,
			run: runner(func(req SensitivityRequest) []unitecon.SensitivityPoint {
				return unitecon.GenerateSensitivity(req.Inputs, req.ChurnRange)
			}),
		},

		// =====================================================================
		// MARKET
		// =====================================================================
		{
			Slug:        "market-size-top-down",
			Title:       "Market Size Calculator (Top-Down)",
			Description: "Narrow a total market into TAM, SAM and SOM with serviceable and obtainable percentages.",
			Category:    CategoryMarket,
			Related:     []string{"market-size-bottom-up", "revenue-projection"},
			Fields: []Field{
				{Name: "totalMarketSize", Label: "Total market size", Kind: KindCurrency, Default: "1000000000"},
				{Name: "samPercent", Label: "Serviceable share of market", Kind: KindPercent, Default: "10"},
				{Name: "somPercent", Label: "Obtainable share of SAM", Kind: KindPercent, Default: "5"},
			},
			Example: `
totalMarketSize: 1000000000
samPercent: 10
somPercent: 5
`,
			run: runner(func(in market.TopDownInputs) MarketReport {
				return newMarketReport(market.CalculateTopDown(in))
			}),
		},
		{
			Slug:        "market-size-bottom-up",
			Title:       "Market Size Calculator (Bottom-Up)",
			Description: "Build TAM, SAM and SOM from customer counts and revenue per customer.",
			Category:    CategoryMarket,
			Related:     []string{"market-size-top-down", "revenue-projection"},
			Fields: []Field{
				{Name: "totalCustomers", Label: "Potential customers", Kind: KindCount, Default: "100000"},
				{Name: "targetPercent", Label: "Share you can target", Kind: KindPercent, Default: "20"},
				{Name: "revenuePerCustomer", Label: "Annual revenue per customer", Kind: KindCurrency, Default: "1200"},
			},
			Example: `
totalCustomers: 100000
targetPercent: 20
revenuePerCustomer: 1200
`,
			run: runner(func(in market.BottomUpInputs) MarketReport {
				return newMarketReport(market.CalculateBottomUp(in))
			}),
		},
		{
			Slug:        "revenue-projection",
			Title:       "Revenue Projection from Market Share",
			Description: "Project yearly revenue, gross margin, opex and profit from a market-share trajectory.",
			Category:    CategoryMarket,
			Related:     []string{"market-size-bottom-up", "market-size-top-down", "burn-rate"},
			Fields: []Field{
				{Name: "som", Label: "Serviceable obtainable market", Kind: KindCurrency, Default: "2400000"},
				{Name: "marketShares", Label: "Market share by year", Kind: KindList, Default: "5, 10, 15"},
				{Name: "grossMarginPercent", Label: "Gross margin", Kind: KindPercent, Default: "70"},
				{Name: "opexPercent", Label: "Opex as share of gross margin", Kind: KindPercent, Default: "50"},
			},
			Example: `
som: 2400000
marketShares: [5, 10, 15]
grossMarginPercent: 70
opexPercent: 50
`,
			run: runner(func(req ProjectionRequest) []market.RevenueProjection {
				return market.ProjectRevenue(req.SOM, req.MarketShares, req.GrossMarginPercent, req.OpexPercent)
			}),
		},

		// =====================================================================
		// FINANCE
		// =====================================================================
		{
			Slug:        "break-even",
			Title:       "Break-Even Calculator",
			Description: "Find how many units you need to sell each month to cover fixed costs.",
			Category:    CategoryFinance,
			Related:     []string{"unit-economics", "pricing-cost-plus", "burn-rate"},
			Fields: []Field{
				{Name: "fixedCostsMonthly", Label: "Monthly fixed costs", Kind: KindCurrency, Default: "30000"},
				{Name: "pricePerUnit", Label: "Price per unit", Kind: KindCurrency, Default: "100"},
				{Name: "variableCostPerUnit", Label: "Variable cost per unit", Kind: KindCurrency, Default: "40"},
				{Name: "targetProfit", Label: "Monthly profit target", Kind: KindCurrency, Help: "Optional; also reports the units needed to earn it"},
			},
			Example: `
fixedCostsMonthly: 30000
pricePerUnit: 100
variableCostPerUnit: 40
targetProfit: 30000
`,
			run: runner(NewBreakEvenReport),
		},
		{
			Slug:        "burn-rate",
			Title:       "Burn Rate & Runway Calculator",
			Description: "Calculate gross and net burn and how many months of runway your cash buys.",
			Category:    CategoryFinance,
			Related:     []string{"runway-projection", "break-even"},
			Fields: []Field{
				{Name: "cashBalance", Label: "Cash in bank", Kind: KindCurrency, Default: "600000"},
				{Name: "monthlyRevenue", Label: "Monthly revenue", Kind: KindCurrency, Default: "20000"},
				{Name: "monthlyExpenses", Label: "Monthly expenses", Kind: KindCurrency, Default: "80000"},
			},
			Example: `
cashBalance: 600000
monthlyRevenue: 20000
monthlyExpenses: 80000
`,
			run: runner(burnrate.Calculate),
		},
		{
			Slug:        "runway-projection",
			Title:       "Runway Projection",
			Description: "Project your cash balance month by month as revenue grows against flat expenses.",
			Category:    CategoryFinance,
			Related:     []string{"burn-rate", "revenue-projection"},
			Fields: []Field{
				{Name: "cashBalance", Label: "Cash in bank", Kind: KindCurrency, Default: "600000"},
				{Name: "monthlyRevenue", Label: "Monthly revenue", Kind: KindCurrency, Default: "20000"},
				{Name: "monthlyExpenses", Label: "Monthly expenses", Kind: KindCurrency, Default: "80000"},
				{Name: "revenueGrowthPercent", Label: "Monthly revenue growth", Kind: KindPercent, Default: "10"},
				{Name: "months", Label: "Months to project", Kind: KindCount, Default: "24", Help: "Defaults to 24; at most 120"},
			},
			Example: `
cashBalance: 600000
monthlyRevenue: 20000
monthlyExpenses: 80000
revenueGrowthPercent: 10
months: 24
`,
			run: runner(NewRunwayReport),
		},
		{
			Slug:        "wacc",
			Title:       "Discount Rate (WACC) Calculator",
			Description: "Estimate a discount rate from beta, market premium, an early-stage premium and leverage.",
			Category:    CategoryFinance,
			Related:     []string{"valuation-dcf"},
			Fields: []Field{
				{Name: "unleveredBeta", Label: "Unlevered beta", Kind: KindNumber, Default: "1.3"},
				{Name: "riskFreeRatePercent", Label: "Risk-free rate", Kind: KindPercent, Default: "4"},
				{Name: "marketRiskPremiumPercent", Label: "Market risk premium", Kind: KindPercent, Default: "5.5"},
				{Name: "sizePremiumPercent", Label: "Early-stage premium", Kind: KindPercent, Default: "15"},
				{Name: "preTaxCostOfDebtPercent", Label: "Pre-tax cost of debt", Kind: KindPercent, Default: "9"},
				{Name: "taxRatePercent", Label: "Tax rate", Kind: KindPercent, Default: "21"},
				{Name: "debtToEquityRatio", Label: "Debt / equity", Kind: KindNumber, Default: "0.1"},
			},
			Example: `
unleveredBeta: 1.3
riskFreeRatePercent: 4
marketRiskPremiumPercent: 5.5
sizePremiumPercent: 15
preTaxCostOfDebtPercent: 9
taxRatePercent: 21
debtToEquityRatio: 0.1
`,
			run: runner(valuation.CalculateWACC),
		},

		// =====================================================================
		// FUNDRAISING
		// =====================================================================
		{
			Slug:        "valuation-vc-method",
			Title:       "Startup Valuation (VC Method)",
			Description: "Work back from an exit value and a target return to today's pre- and post-money valuation.",
			Category:    CategoryFundraising,
			Related:     []string{"valuation-summary", "safe-conversion", "cap-table"},
			Fields: []Field{
				{Name: "exitValue", Label: "Expected exit value", Kind: KindCurrency, Default: "100000000"},
				{Name: "targetMultiple", Label: "Target return multiple", Kind: KindNumber, Default: "10"},
				{Name: "investment", Label: "Investment", Kind: KindCurrency, Default: "2000000"},
				{Name: "dilutionPercent", Label: "Dilution before exit", Kind: KindPercent, Default: "20"},
				{Name: "sharesOutstanding", Label: "Shares outstanding", Kind: KindCount},
			},
			Example: `
exitValue: 100000000
targetMultiple: 10
investment: 2000000
dilutionPercent: 20
sharesOutstanding: 6000000
`,
			run: runner(valuation.CalculateVCMethod),
		},
		{
			Slug:        "valuation-dcf",
			Title:       "Startup Valuation (DCF)",
			Description: "Discount projected free cash flows and a terminal value to an enterprise and equity value.",
			Category:    CategoryFundraising,
			Related:     []string{"wacc", "valuation-summary"},
			Fields: []Field{
				{Name: "cashFlows", Label: "Free cash flow by year", Kind: KindList, Default: "-500000, 250000, 1200000, 2500000, 4000000"},
				{Name: "discountRatePercent", Label: "Discount rate", Kind: KindPercent, Default: "30"},
				{Name: "terminalGrowthPercent", Label: "Terminal growth", Kind: KindPercent, Default: "3"},
				{Name: "netCash", Label: "Net cash", Kind: KindCurrency, Default: "1000000"},
				{Name: "sharesOutstanding", Label: "Shares outstanding", Kind: KindCount},
			},
			Example: `
cashFlows: [-500000, 250000, 1200000, 2500000, 4000000]
discountRatePercent: 30
terminalGrowthPercent: 3
netCash: 1000000
sharesOutstanding: 10000000
`,
			run: runner(valuation.CalculateDCF),
		},
		{
			Slug:        "valuation-comps",
			Title:       "Startup Valuation (Revenue Multiples)",
			Description: "Apply the interquartile range of peer EV/Revenue multiples to your revenue run-rate.",
			Category:    CategoryFundraising,
			Related:     []string{"valuation-summary", "valuation-vc-method"},
			Fields: []Field{
				{Name: "revenue", Label: "Annual revenue run-rate", Kind: KindCurrency, Default: "3000000"},
				{Name: "netCash", Label: "Net cash", Kind: KindCurrency, Default: "0"},
				{Name: "peers", Label: "Comparable companies", Kind: KindTable},
			},
			Example: `
revenue: 3000000
netCash: 500000
peers: [
  {
    name: "Peer A"
    evRevenue: 6
  }
  {
    name: "Peer B"
    evRevenue: 8.5
  }
  {
    name: "Peer C"
    evRevenue: 11
  }
  {
    name: "Peer D"
    evRevenue: 14
  }
]
`,
			run: runner(valuation.CalculateRevenueComps),
		},
		{
			Slug:        "valuation-summary",
			Title:       "Valuation Football Field",
			Description: "Compare VC method, DCF and revenue multiples side by side.",
			Category:    CategoryFundraising,
			Related:     []string{"valuation-vc-method", "valuation-dcf", "valuation-comps"},
			Fields: []Field{
				{Name: "vc", Label: "VC method inputs", Kind: KindTable},
				{Name: "dcf", Label: "DCF inputs", Kind: KindTable},
				{Name: "comps", Label: "Comparable companies", Kind: KindTable},
			},
			Example: `
vc: {
  exitValue: 100000000
  targetMultiple: 10
  investment: 2000000
  dilutionPercent: 20
}
dcf: {
  cashFlows: [-500000, 250000, 1200000, 2500000, 4000000]
  discountRatePercent: 30
  terminalGrowthPercent: 3
}
comps: {
  revenue: 1000000
  peers: [
    {
      name: "Peer A"
      evRevenue: 5
    }
    {
      name: "Peer B"
      evRevenue: 9
    }
  ]
}
`,
			run: runner(valuation.RunAllValuations),
		},
		{
			Slug:        "cap-table",
			Title:       "Cap Table & Dilution Simulator",
			Description: "Model founder dilution through priced rounds with an option pool top-up.",
			Category:    CategoryFundraising,
			Related:     []string{"safe-conversion", "valuation-vc-method"},
			Fields: []Field{
				{Name: "holders", Label: "Current shareholders", Kind: KindTable},
				{Name: "rounds", Label: "Funding rounds", Kind: KindTable},
			},
			Example: `
holders: [
  {
    name: "Founder A"
    class: "common"
    shares: 4000000
  }
  {
    name: "Founder B"
    class: "common"
    shares: 4000000
  }
]
rounds: [
  {
    name: "Seed"
    preMoneyValuation: 8000000
    investment: 2000000
    optionPoolPercent: 10
  }
  {
    name: "Series A"
    preMoneyValuation: 30000000
    investment: 10000000
    optionPoolPercent: 10
  }
]
`,
			run: fallibleRunner(NewCapTableReport),
		},
		{
			Slug:        "safe-conversion",
			Title:       "SAFE Conversion Calculator",
			Description: "Convert a SAFE into shares at a priced round using its valuation cap and discount.",
			Category:    CategoryFundraising,
			Related:     []string{"cap-table", "valuation-vc-method"},
			Fields: []Field{
				{Name: "investment", Label: "SAFE amount", Kind: KindCurrency, Default: "500000"},
				{Name: "valuationCap", Label: "Valuation cap", Kind: KindCurrency, Default: "8000000"},
				{Name: "discountPercent", Label: "Discount", Kind: KindPercent, Default: "20"},
				{Name: "preMoneyValuation", Label: "Priced round pre-money", Kind: KindCurrency, Default: "20000000"},
				{Name: "preMoneyShares", Label: "Fully diluted shares before the round", Kind: KindCount, Default: "10000000"},
			},
			Example: `
investment: 500000
valuationCap: 8000000
discountPercent: 20
preMoneyValuation: 20000000
preMoneyShares: 10000000
`,
			run: runner(safe.Convert),
		},

		// =====================================================================
		// PRICING
		// =====================================================================
		{
			Slug:        "pricing-cost-plus",
			Title:       "Pricing Calculator (Target Margin)",
			Description: "Set a price that hits your target gross margin and see the implied markup.",
			Category:    CategoryPricing,
			Related:     []string{"pricing-tiers", "break-even", "unit-economics"},
			Fields: []Field{
				{Name: "unitCost", Label: "Cost per unit", Kind: KindCurrency, Default: "40"},
				{Name: "targetMarginPercent", Label: "Target gross margin", Kind: KindPercent, Default: "60"},
			},
			Example: `
unitCost: 40
targetMarginPercent: 60
`,
			run: runner(pricing.CalculateCostPlus),
		},
		{
			Slug:        "pricing-tiers",
			Title:       "Tiered Pricing Mix",
			Description: "Blend plan prices and customer mix into MRR, ARR and blended ARPU.",
			Category:    CategoryPricing,
			Related:     []string{"pricing-cost-plus", "unit-economics"},
			Fields: []Field{
				{Name: "customers", Label: "Paying customers", Kind: KindCount, Default: "1000"},
				{Name: "tiers", Label: "Plans", Kind: KindTable},
			},
			Example: `
customers: 1000
tiers: [
  {
    name: "Starter"
    monthlyPrice: 29
    customerSharePercent: 60
  }
  {
    name: "Growth"
    monthlyPrice: 99
    customerSharePercent: 30
  }
  {
    name: "Scale"
    monthlyPrice: 499
    customerSharePercent: 10
  }
]
`,
			run: runner(func(req TierRequest) pricing.TierMix {
				return pricing.BlendTiers(req.Customers, req.Tiers)
			}),
		},
	}
}
