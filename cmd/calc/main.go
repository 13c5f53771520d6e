// Command calc runs the founder calculators from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"founder_calculators/pkg/config"
	"founder_calculators/pkg/logging"
)

var (
	// Global flags
	configPath string
	logLevel   string

	cfg    = config.Default()
	logger = logging.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Financial calculators for startup founders",
	Long: `calc runs the same calculators the website documents: unit economics,
market sizing, runway, valuation, cap tables and pricing.

Inputs are JSON or Hjson, passed inline with --data or from a file with --file.
Results print as JSON, or as CSV for list-shaped results.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(runwayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
