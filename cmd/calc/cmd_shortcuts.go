package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"founder_calculators/pkg/core/catalog"
	"founder_calculators/pkg/core/market"
	"founder_calculators/pkg/core/unitecon"
	"founder_calculators/pkg/core/utils"
)

var (
	sensData   string
	sensChurn  string
	sensFormat string

	projSOM         string
	projShares      string
	projGrossMargin string
	projOpex        string
	projFormat      string

	runwayData   string
	runwayMonths int
	runwayFormat string
)

// sensitivityCmd sweeps churn over the configured range
var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "LTV and LTV:CAC across a range of churn rates",
	Long: `Run the churn sensitivity analysis on unit-economics inputs.
The churn range defaults to defaults.churn_range from the config file.`,
	Args: cobra.NoArgs,
	RunE: runSensitivity,
}

// projectCmd projects revenue from a SOM and a market-share trajectory
var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project yearly revenue and profit from a SOM",
	Long: `Project revenue from a serviceable obtainable market. Amounts accept
"$2.4M" style input. Shares, gross margin and opex default to the config file.`,
	Args: cobra.NoArgs,
	RunE: runProject,
}

// runwayCmd projects cash month by month
var runwayCmd = &cobra.Command{
	Use:   "runway",
	Short: "Project cash balance month by month",
	Long: `Project the cash balance from burn-rate inputs. The horizon comes from
--months, then "months" in --data, then defaults.runway_months from the config
file, and is capped at 120 months.`,
	Args: cobra.NoArgs,
	RunE: runRunway,
}

func init() {
	sensitivityCmd.Flags().StringVarP(&sensData, "data", "d", "", "Unit-economics input as JSON or Hjson (required)")
	sensitivityCmd.Flags().StringVar(&sensChurn, "churn", "", "Comma-separated churn rates, e.g. \"1, 2.5, 5\"")
	sensitivityCmd.Flags().StringVar(&sensFormat, "format", "json", "Output format: json or csv")
	_ = sensitivityCmd.MarkFlagRequired("data")

	projectCmd.Flags().StringVar(&projSOM, "som", "", "Serviceable obtainable market, e.g. 2400000 or $2.4M (required)")
	projectCmd.Flags().StringVar(&projShares, "shares", "", "Comma-separated market share % by year")
	projectCmd.Flags().StringVar(&projGrossMargin, "gross-margin", "", "Gross margin %")
	projectCmd.Flags().StringVar(&projOpex, "opex", "", "Opex as % of gross margin")
	projectCmd.Flags().StringVar(&projFormat, "format", "json", "Output format: json or csv")
	_ = projectCmd.MarkFlagRequired("som")

	runwayCmd.Flags().StringVarP(&runwayData, "data", "d", "", "Burn-rate input as JSON or Hjson (required)")
	runwayCmd.Flags().IntVar(&runwayMonths, "months", 0, "Months to project (default from config)")
	runwayCmd.Flags().StringVar(&runwayFormat, "format", "json", "Output format: json or csv")
	_ = runwayCmd.MarkFlagRequired("data")
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	var in unitecon.Inputs
	if _, err := utils.SmartParse(sensData, &in); err != nil {
		return fmt.Errorf("decode --data: %w", err)
	}

	churn := cfg.Defaults.ChurnRange
	if sensChurn != "" {
		parsed, err := utils.ParseList(sensChurn)
		if err != nil {
			return fmt.Errorf("--churn: %w", err)
		}
		churn = parsed
	}

	return writeResult(cmd.OutOrStdout(), sensFormat, unitecon.GenerateSensitivity(in, churn))
}

func runProject(cmd *cobra.Command, args []string) error {
	som, err := utils.ParseAmount(projSOM)
	if err != nil {
		return fmt.Errorf("--som: %w", err)
	}

	shares := cfg.Defaults.MarketShares
	if projShares != "" {
		if shares, err = utils.ParseList(projShares); err != nil {
			return fmt.Errorf("--shares: %w", err)
		}
	}

	grossMargin, err := percentOr(projGrossMargin, cfg.Defaults.GrossMarginPercent)
	if err != nil {
		return fmt.Errorf("--gross-margin: %w", err)
	}
	opex, err := percentOr(projOpex, cfg.Defaults.OpexPercent)
	if err != nil {
		return fmt.Errorf("--opex: %w", err)
	}

	return writeResult(cmd.OutOrStdout(), projFormat, market.ProjectRevenue(som, shares, grossMargin, opex))
}

func runRunway(cmd *cobra.Command, args []string) error {
	var req catalog.RunwayRequest
	if _, err := utils.SmartParse(runwayData, &req); err != nil {
		return fmt.Errorf("decode --data: %w", err)
	}
	if runwayMonths < 0 {
		return fmt.Errorf("--months must not be negative, got %d", runwayMonths)
	}
	if runwayMonths > 0 {
		req.Months = runwayMonths
	}
	if req.Months <= 0 {
		req.Months = cfg.Defaults.RunwayMonths
	}

	logger.Debug("projecting runway", zap.Int("months", req.Months))
	return writeResult(cmd.OutOrStdout(), runwayFormat, catalog.NewRunwayReport(req))
}

func percentOr(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	return utils.ParsePercent(s)
}
