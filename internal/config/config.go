// Package config provides configuration management for the trading journal.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"tradejournal/internal/analytics"
)

// Config holds all application configuration.
type Config struct {
	Journal   JournalConfig   `mapstructure:"journal"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// JournalConfig holds journal-wide settings.
type JournalConfig struct {
	Commission     float64 `mapstructure:"commission"`      // flat per-trade commission
	CurrencySymbol string  `mapstructure:"currency_symbol"` // prefix for money values
	DatabasePath   string  `mapstructure:"database_path"`   // defaults to <config dir>/journal.db
}

// AnalyticsConfig holds the thresholds used by the analytics engine.
type AnalyticsConfig struct {
	TierThreshold       float64 `mapstructure:"tier_threshold"`
	MinInsightTrades    int     `mapstructure:"min_insight_trades"`
	MinRecurringCount   int     `mapstructure:"min_recurring_count"`
	HighFomoLevel       int     `mapstructure:"high_fomo_level"`
	MinCorrelationCount int     `mapstructure:"min_correlation_count"`
	MinConfluenceTags   int     `mapstructure:"min_confluence_tags"`
	MinSessionTrades    int     `mapstructure:"min_session_trades"`
	LowWinRate          int     `mapstructure:"low_win_rate"`
	LowAvgRR            float64 `mapstructure:"low_avg_rr"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// LoggingConfig holds log output configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"` // debug, info, warn, error
	File       string `mapstructure:"file"`  // defaults to <config dir>/journal.log
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/tradejournal"
	}
	return filepath.Join(home, ".config", "tradejournal")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}

	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyDefaults(cfg, configDir)
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	defaults := analytics.DefaultConfig()
	v.SetDefault("journal.commission", 40.0)
	v.SetDefault("journal.currency_symbol", defaults.CurrencySymbol)
	v.SetDefault("analytics.tier_threshold", defaults.TierThreshold)
	v.SetDefault("analytics.min_insight_trades", defaults.MinInsightTrades)
	v.SetDefault("analytics.min_recurring_count", defaults.MinRecurringCount)
	v.SetDefault("analytics.high_fomo_level", defaults.HighFomoLevel)
	v.SetDefault("analytics.min_correlation_count", defaults.MinCorrelationCount)
	v.SetDefault("analytics.min_confluence_tags", defaults.MinConfluenceTags)
	v.SetDefault("analytics.min_session_trades", defaults.MinSessionTrades)
	v.SetDefault("analytics.low_win_rate", defaults.LowWinRate)
	v.SetDefault("analytics.low_avg_rr", defaults.LowAvgRR)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04:05")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create template
			return createTemplateConfig(configDir, name)
		}
		return err
	}

	return v.Unmarshal(target)
}

func applyDefaults(cfg *Config, configDir string) {
	if cfg.Journal.DatabasePath == "" {
		cfg.Journal.DatabasePath = filepath.Join(configDir, "journal.db")
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(configDir, "journal.log")
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRADEJOURNAL_DB"); v != "" {
		cfg.Journal.DatabasePath = v
	}
	if v := os.Getenv("TRADEJOURNAL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// EngineConfig maps the configured thresholds onto the engine config.
func (c *Config) EngineConfig() analytics.Config {
	return analytics.Config{
		CurrencySymbol:      c.Journal.CurrencySymbol,
		TierThreshold:       c.Analytics.TierThreshold,
		MinInsightTrades:    c.Analytics.MinInsightTrades,
		MinRecurringCount:   c.Analytics.MinRecurringCount,
		HighFomoLevel:       c.Analytics.HighFomoLevel,
		MinCorrelationCount: c.Analytics.MinCorrelationCount,
		MinConfluenceTags:   c.Analytics.MinConfluenceTags,
		MinSessionTrades:    c.Analytics.MinSessionTrades,
		LowWinRate:          c.Analytics.LowWinRate,
		LowAvgRR:            c.Analytics.LowAvgRR,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Journal.Commission < 0 {
		return fmt.Errorf("journal commission must be non-negative")
	}
	if c.Analytics.MinInsightTrades < 0 {
		return fmt.Errorf("min_insight_trades must be non-negative")
	}
	if c.Analytics.LowWinRate < 0 || c.Analytics.LowWinRate > 100 {
		return fmt.Errorf("low_win_rate must be between 0 and 100")
	}
	if c.Analytics.LowAvgRR < 0 {
		return fmt.Errorf("low_avg_rr must be non-negative")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}
