package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"founder_calculators/pkg/core/catalog"
	"founder_calculators/pkg/core/export"
)

var (
	runData    string
	runFile    string
	runFormat  string
	runExample bool
)

// runCmd executes one calculator
var runCmd = &cobra.Command{
	Use:   "run <slug>",
	Short: "Run a calculator on JSON or Hjson input",
	Long: `Run a calculator by slug. Input comes from --data, --file, or
--example (the calculator's worked example). Use "calc list" for slugs.

Examples:
  calc run unit-economics --data '{monthlyMarketingSpend: 50000, newCustomersPerMonth: 100, revenuePerCustomer: 500, grossMarginPercent: 80, monthlyChurnRate: 5}'
  calc run cap-table --file rounds.hjson --format csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCalculator,
}

func init() {
	runCmd.Flags().StringVarP(&runData, "data", "d", "", "Inline JSON or Hjson input")
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "Read input from a file (- for stdin)")
	runCmd.Flags().StringVar(&runFormat, "format", "json", "Output format: json or csv")
	runCmd.Flags().BoolVar(&runExample, "example", false, "Run the calculator's worked example")
}

func runCalculator(cmd *cobra.Command, args []string) error {
	entry, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, entry)
	if err != nil {
		return err
	}

	logger.Debug("running calculator", zap.String("slug", entry.Slug), zap.Int("input_bytes", len(raw)))
	result, err := entry.Run(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", entry.Slug, err)
	}

	return writeResult(cmd.OutOrStdout(), runFormat, result)
}

// readInput resolves --example, --data and --file in that order.
func readInput(cmd *cobra.Command, entry *catalog.Entry) (string, error) {
	switch {
	case runExample:
		return entry.Example, nil
	case runData != "":
		return runData, nil
	case runFile == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case runFile != "":
		data, err := os.ReadFile(runFile)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no input: pass --data, --file or --example")
}

// writeResult prints result as indented JSON or as a CSV table.
func writeResult(w io.Writer, format string, result any) error {
	switch strings.ToLower(format) {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "csv":
		tbl, err := export.TableFor(result)
		if err != nil {
			return err
		}
		rep, err := export.WriteCSV(w, tbl)
		if err != nil {
			return err
		}
		logger.Info("csv report written", zap.String("report_id", rep.ID), zap.Int("rows", rep.Rows))
		return nil
	}
	return fmt.Errorf("unknown format %q (want json or csv)", format)
}
