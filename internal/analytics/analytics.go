// Package analytics derives statistics, distributions, behavioral patterns
// and reports from a trader's journal records. Every operation is a pure
// function over immutable snapshots of the collections: nothing here performs
// I/O, mutates its inputs, or keeps state between calls, so any two
// operations may run in any order (or concurrently) over the same snapshot.
package analytics

import "fmt"

// Config holds the policy constants the engine applies. The zero value is
// not useful; start from DefaultConfig.
type Config struct {
	// CurrencySymbol prefixes money amounts embedded in finding messages.
	CurrencySymbol string

	// TierThreshold separates the high and low severity tiers for a
	// calendar day's net P&L.
	TierThreshold float64

	// MinInsightTrades gates the whole insight set: below it the composer
	// emits a single "add more trades" item.
	MinInsightTrades int

	// MinRecurringCount gates the recurring-loss detector: a
	// (symbol, strategy) pair is reported when its loss count exceeds this.
	MinRecurringCount int

	// HighFomoLevel is the exclusive lower bound for a "high FOMO" trade.
	HighFomoLevel int

	// MinCorrelationCount gates the FOMO, early-entry, frustration-exit and
	// fear-exit detectors: each is surfaced when its count exceeds this.
	MinCorrelationCount int

	// MinConfluenceTags is the minimum technical-confluence tag count for a
	// trade to qualify as a high-quality setup.
	MinConfluenceTags int

	// MinSessionTrades is the minimum sample for session-based analysis.
	MinSessionTrades int

	// LowWinRate is the percentage below which the win-rate feedback turns
	// into a warning.
	LowWinRate int

	// LowAvgRR is the average risk:reward below which an extra warning is
	// attached to the performance feedback.
	LowAvgRR float64
}

// DefaultConfig returns the engine defaults. The thresholds are the observed
// behavior of the journal and should only change with product input.
func DefaultConfig() Config {
	return Config{
		CurrencySymbol:      "₹",
		TierThreshold:       1000,
		MinInsightTrades:    3,
		MinRecurringCount:   1,
		HighFomoLevel:       5,
		MinCorrelationCount: 2,
		MinConfluenceTags:   3,
		MinSessionTrades:    3,
		LowWinRate:          50,
		LowAvgRR:            1.5,
	}
}

// Engine evaluates analytics queries under a fixed Config. It is stateless
// and safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an analytics engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// money formats an amount for embedding in a finding message.
func (e *Engine) money(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%s%.2f", sign, e.cfg.CurrencySymbol, v)
}
