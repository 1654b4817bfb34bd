package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Trade Journal Configuration

[journal]
# Flat commission deducted per trade when computing net P&L
commission = 40.0
# Symbol used as prefix for money values
currency_symbol = "₹"
# SQLite database path (defaults to <config dir>/journal.db)
database_path = ""

[analytics]
# Net P&L above which a profitable day counts as a high-profit day
# (and below -threshold as a heavy-loss day)
tier_threshold = 1000.0
# Minimum closed trades before insights are generated
min_insight_trades = 3
# A symbol+strategy pair must repeat more than this many times in
# losing trades before it is flagged as recurring
min_recurring_count = 1
# FOMO score above which a losing trade counts toward the FOMO pattern
high_fomo_level = 5
# Minimum matches before a psychological pattern is reported
min_correlation_count = 2
# Confluence tag count at which a setup counts as A+
min_confluence_tags = 3
# Minimum opening-hour trades before session performance is judged
min_session_trades = 3
# Win rate below this percentage triggers a warning
low_win_rate = 50
# Average risk-reward below this triggers a warning
low_avg_rr = 1.5

[ui]
# Enable colored output
color_enabled = true
# Date format
date_format = "02-Jan-2006"
# Time format
time_format = "15:04:05"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log file path (defaults to <config dir>/journal.log)
file = ""
max_size_mb = 10
max_backups = 3
max_age_days = 30
`

func createTemplateConfig(configDir, name string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, name+".toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return fmt.Errorf("config file not found, created template at %s", path)
}
