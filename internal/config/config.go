package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"tool-rental-checkout/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Report  ReportConfig  `yaml:"report"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// ReportConfig contains agreement report settings
type ReportConfig struct {
	Locale         string `yaml:"locale"`          // BCP 47 tag used for digit grouping
	CurrencySymbol string `yaml:"currency_symbol"` // prefixed to every amount
	DateLayout     string `yaml:"date_layout"`     // time package layout
}

// CatalogConfig replaces the built-in tool catalog when non-empty
type CatalogConfig struct {
	Tools      []domain.Tool           `yaml:"tools"`
	Categories []domain.CategoryPolicy `yaml:"categories"`
}

// IsSet reports whether the config carries its own catalog
func (c CatalogConfig) IsSet() bool {
	return len(c.Tools) > 0 || len(c.Categories) > 0
}

// Load reads configuration from a YAML file. An empty path yields the
// defaults plus environment overrides.
func Load(configPath string) (*Config, error) {
	var data []byte
	if configPath != "" {
		var err error
		data, err = os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse builds a validated configuration from YAML bytes
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. A missing file is not an error. Variables already set win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Report
	if val := os.Getenv("REPORT_LOCALE"); val != "" {
		c.Report.Locale = val
	}
	if val := os.Getenv("REPORT_CURRENCY_SYMBOL"); val != "" {
		c.Report.CurrencySymbol = val
	}
}

// Validate fills in defaults and checks that the configuration is usable
func (c *Config) Validate() error {
	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	// Report defaults
	if c.Report.Locale == "" {
		c.Report.Locale = "en-US"
	}
	if c.Report.CurrencySymbol == "" {
		c.Report.CurrencySymbol = "$"
	}
	if c.Report.DateLayout == "" {
		c.Report.DateLayout = "01/02/06"
	}
	if _, err := language.Parse(c.Report.Locale); err != nil {
		return fmt.Errorf("invalid report locale %q: %w", c.Report.Locale, err)
	}

	// Catalog validation
	if c.Catalog.IsSet() {
		if len(c.Catalog.Tools) == 0 {
			return fmt.Errorf("catalog defines categories but no tools")
		}
		if len(c.Catalog.Categories) == 0 {
			return fmt.Errorf("catalog defines tools but no categories")
		}
	}

	return nil
}
