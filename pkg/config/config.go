// Package config loads site and calculator defaults from a YAML file with
// environment overrides. A .env file in the working directory is honoured.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"founder_calculators/pkg/core/burnrate"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "config/site.yaml"

// Config is the full application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Site     SiteConfig     `yaml:"site"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// LogConfig selects the zap level and encoder.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json | console
}

// SiteConfig drives the static site generator and preview server.
type SiteConfig struct {
	Name        string `yaml:"name"`
	Tagline     string `yaml:"tagline"`
	BaseURL     string `yaml:"base_url"`
	ContentDir  string `yaml:"content_dir"`
	OutputDir   string `yaml:"output_dir"`
	ListenAddr  string `yaml:"listen_addr"`
	Locale      string `yaml:"locale"`
	TwitterSite string `yaml:"twitter_site,omitempty"`
}

// DefaultsConfig holds the inputs the CLI shortcuts fall back to.
type DefaultsConfig struct {
	ChurnRange         []float64 `yaml:"churn_range"`
	MarketShares       []float64 `yaml:"market_shares"`
	GrossMarginPercent float64   `yaml:"gross_margin_percent"`
	OpexPercent        float64   `yaml:"opex_percent"`
	RunwayMonths       int       `yaml:"runway_months"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Site: SiteConfig{
			Name:       "Founder Calculators",
			Tagline:    "Free financial calculators for startup founders",
			BaseURL:    "http://localhost:8090",
			ContentDir: "content",
			OutputDir:  "public",
			ListenAddr: ":8090",
			Locale:     "en_US",
		},
		Defaults: DefaultsConfig{
			ChurnRange:         []float64{1, 2, 3, 5, 7.5, 10, 15},
			MarketShares:       []float64{1, 2.5, 5, 7.5, 10},
			GrossMarginPercent: 70,
			OpexPercent:        50,
			RunwayMonths:       24,
		},
	}
}

// Load reads .env (if present), then the YAML file at path, then applies
// environment overrides. A missing file at DefaultPath is not an error; a
// missing explicit path is.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// defaults only
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"LOG_LEVEL":        &c.Log.Level,
		"LOG_FORMAT":       &c.Log.Format,
		"SITE_BASE_URL":    &c.Site.BaseURL,
		"SITE_CONTENT_DIR": &c.Site.ContentDir,
		"SITE_OUTPUT_DIR":  &c.Site.OutputDir,
		"SITE_LISTEN_ADDR": &c.Site.ListenAddr,
	}
	for key, dst := range overrides {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}
	if c.Site.OutputDir == "" {
		return fmt.Errorf("site.output_dir is required")
	}
	if c.Defaults.RunwayMonths <= 0 || c.Defaults.RunwayMonths > burnrate.MaxHorizonMonths {
		return fmt.Errorf("defaults.runway_months must be between 1 and %d, got %d", burnrate.MaxHorizonMonths, c.Defaults.RunwayMonths)
	}
	if len(c.Defaults.ChurnRange) == 0 {
		return fmt.Errorf("defaults.churn_range must not be empty")
	}
	for _, churn := range c.Defaults.ChurnRange {
		if churn < 0 || churn > 100 {
			return fmt.Errorf("defaults.churn_range: %v is outside 0-100", churn)
		}
	}
	return nil
}

// CanonicalURL joins the base URL and a site-relative path.
func (s SiteConfig) CanonicalURL(path string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
