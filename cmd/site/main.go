// Command site builds the static calculator website and serves it locally.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"founder_calculators/pkg/config"
	"founder_calculators/pkg/core/catalog"
	"founder_calculators/pkg/core/content"
	"founder_calculators/pkg/logging"
	"founder_calculators/pkg/site"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Build flags
	outputDir  string
	contentDir string
	baseURL    string

	// Serve flags
	listenAddr string
	buildFirst bool

	cfg    = config.Default()
	logger = logging.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:          "site",
	Short:        "Build and preview the Founder Calculators website",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose {
			cfg.Log.Level = "debug"
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

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render every calculator and article into static HTML",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built site for local preview",
	Long: `Serve the output directory over HTTP. The server only serves files;
calculators run client-side.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "out", "o", "", "Output directory (overrides site.output_dir)")

	buildCmd.Flags().StringVar(&contentDir, "content", "", "Content directory (overrides site.content_dir)")
	buildCmd.Flags().StringVar(&baseURL, "base-url", "", "Canonical base URL (overrides site.base_url)")

	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (overrides site.listen_addr)")
	serveCmd.Flags().BoolVar(&buildFirst, "build", false, "Build the site before serving")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
}

// siteConfig applies flag overrides on top of the loaded config.
func siteConfig() config.SiteConfig {
	s := cfg.Site
	if outputDir != "" {
		s.OutputDir = outputDir
	}
	if contentDir != "" {
		s.ContentDir = contentDir
	}
	if baseURL != "" {
		s.BaseURL = baseURL
	}
	if listenAddr != "" {
		s.ListenAddr = listenAddr
	}
	return s
}

func runBuild(cmd *cobra.Command, args []string) error {
	s := siteConfig()

	articles, err := content.LoadFromDirectory(s.ContentDir, logger)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	gen, err := site.NewGenerator(s, catalog.Default(), articles, logger)
	if err != nil {
		return err
	}

	report, err := gen.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Built %d pages (%d calculators, %d articles) into %s\nBuild ID: %s\n",
		len(report.Pages), len(report.Tools), len(report.Articles), s.OutputDir, report.ID)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if buildFirst {
		if err := runBuild(cmd, args); err != nil {
			return err
		}
	}
	s := siteConfig()
	return site.Serve(cmd.Context(), s.ListenAddr, s.OutputDir, logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
