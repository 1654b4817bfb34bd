// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"tradejournal/internal/models"
)

// DataStore defines the interface for journal persistence.
type DataStore interface {
	// Trades
	SaveTrade(ctx context.Context, trade *models.Trade) error
	GetTrade(ctx context.Context, id string) (*models.Trade, error)
	GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	// Confidence entries (one per calendar day)
	SetConfidence(ctx context.Context, date time.Time, level int) error
	GetConfidence(ctx context.Context, from, to time.Time) ([]models.ConfidenceEntry, error)

	// Daily notes (one per calendar day)
	SetNote(ctx context.Context, date time.Time, content string) error
	GetNotes(ctx context.Context, from, to time.Time) ([]models.Note, error)

	// Rules
	SaveRule(ctx context.Context, rule *models.Rule) error
	UpdateRule(ctx context.Context, rule *models.Rule) error
	DeleteRule(ctx context.Context, id string) error
	GetRules(ctx context.Context) ([]models.Rule, error)

	// Lifecycle
	Close() error
}

// TradeFilter represents filters for querying trades.
type TradeFilter struct {
	Symbol    string
	Strategy  string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}

// DateRange represents a date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}
