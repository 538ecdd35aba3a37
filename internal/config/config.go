// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"agency-dash/core/conversion"
	"agency-dash/core/paysheet"
	apperrors "agency-dash/internal/errors"
	"agency-dash/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. AGENCY_SERVER_ADDR.
const EnvPrefix = "AGENCY"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" envconfig:"-"`

	// Rates contains flat currency conversion rates
	Rates RatesConfig `json:"rates" envconfig:"RATES"`

	// Payment contains host payment rules
	Payment PaymentConfig `json:"payment" envconfig:"PAYMENT"`

	// Tables points at tier files that replace the built-in tables
	Tables TablesConfig `json:"tables" envconfig:"TABLES"`

	// Output contains output configuration
	Output OutputConfig `json:"output" envconfig:"OUTPUT"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" envconfig:"SERVER"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" envconfig:"LOG"`
}

// RatesConfig contains conversion rates
type RatesConfig struct {
	// BeansPerDiamond is how many beans make one diamond
	BeansPerDiamond decimal.Decimal `json:"beans_per_diamond" envconfig:"BEANS_PER_DIAMOND"`

	// USDPerDiamond is the dollar value of one diamond
	USDPerDiamond decimal.Decimal `json:"usd_per_diamond" envconfig:"USD_PER_DIAMOND"`

	// ScorePerDiamond is the PK score earned per diamond
	ScorePerDiamond int64 `json:"score_per_diamond" envconfig:"SCORE_PER_DIAMOND"`
}

// PaymentConfig contains host payment rules
type PaymentConfig struct {
	BaseRate        decimal.Decimal `json:"base_rate" envconfig:"BASE_RATE"`
	BonusThreshold  decimal.Decimal `json:"bonus_threshold" envconfig:"BONUS_THRESHOLD"`
	BonusRate       decimal.Decimal `json:"bonus_rate" envconfig:"BONUS_RATE"`
	PKWinBonus      decimal.Decimal `json:"pk_win_bonus" envconfig:"PK_WIN_BONUS"`
	AttendanceBonus decimal.Decimal `json:"attendance_bonus" envconfig:"ATTENDANCE_BONUS"`
	TargetDays      int             `json:"target_days" envconfig:"TARGET_DAYS"`
}

// TablesConfig contains tier file locations
type TablesConfig struct {
	// Files are HCL or CSV tier files, loaded in order
	Files []string `json:"files,omitempty" envconfig:"FILES"`

	// Exchange is the exchange table used when none is named
	Exchange string `json:"exchange" envconfig:"EXCHANGE"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format" envconfig:"FORMAT"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" envconfig:"ADDR"`
}

// Default returns a default configuration
func Default() *Config {
	rates := conversion.DefaultRates()
	rules := paysheet.DefaultRules()

	return &Config{
		Version: "1.0",
		Rates: RatesConfig{
			BeansPerDiamond: rates.BeansPerDiamond,
			USDPerDiamond:   rates.USDPerDiamond,
			ScorePerDiamond: 10,
		},
		Payment: PaymentConfig{
			BaseRate:        rules.BaseRate,
			BonusThreshold:  rules.BonusThreshold,
			BonusRate:       rules.BonusRate,
			PKWinBonus:      rules.PKWinBonus,
			AttendanceBonus: rules.AttendanceBonus,
			TargetDays:      rules.TargetDays,
		},
		Tables: TablesConfig{
			Exchange: "beans_to_diamonds",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.agency-dash.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".agency-dash.json")
}

// Load loads configuration from a file, then applies AGENCY_* environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, apperrors.Config("invalid config file "+path, err)
		}
	case !os.IsNotExist(err):
		return nil, apperrors.Config("cannot read config file "+path, err)
	}

	if err := ApplyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides fields from AGENCY_* environment variables.
// Unset variables leave the current value alone.
func ApplyEnv(c *Config) error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return apperrors.Config("invalid environment override", err)
	}
	return nil
}

// Validate checks rates and payment rules
func (c *Config) Validate() error {
	if err := c.ConversionRates().Validate(); err != nil {
		return apperrors.Config("invalid rates", err)
	}
	if c.Rates.ScorePerDiamond <= 0 {
		return apperrors.Config("invalid rates", apperrors.InvalidArgumentf(
			"score per diamond must be positive, got %d", c.Rates.ScorePerDiamond))
	}
	if err := c.PaymentRules().Validate(); err != nil {
		return apperrors.Config("invalid payment rules", err)
	}
	return nil
}

// ConversionRates returns the configured rates
func (c *Config) ConversionRates() conversion.Rates {
	return conversion.Rates{
		BeansPerDiamond: c.Rates.BeansPerDiamond,
		USDPerDiamond:   c.Rates.USDPerDiamond,
	}
}

// PaymentRules returns the configured payment rules
func (c *Config) PaymentRules() paysheet.Rules {
	return paysheet.Rules{
		BaseRate:        c.Payment.BaseRate,
		BonusThreshold:  c.Payment.BonusThreshold,
		BonusRate:       c.Payment.BonusRate,
		PKWinBonus:      c.Payment.PKWinBonus,
		AttendanceBonus: c.Payment.AttendanceBonus,
		TargetDays:      c.Payment.TargetDays,
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
