// Package models provides domain models for the trading journal.
package models

import "time"

// Direction represents the side of a position.
type Direction string

const (
	DirectionLong  Direction = "Long"
	DirectionShort Direction = "Short"
)

// Answers recorded by the trade entry form. Detectors match on these exact
// strings, so they are shared constants rather than free text.
const (
	WaitedYes        = "Yes, waited for setup"
	EnteredEarly     = "No, entered early"
	ExitFrustrated   = "Frustrated"
	ExitFearBased    = "Fear-based exit"
	SessionOpenHour  = "Market Open (9:30-10:30)"
	SessionMidDay    = "Mid-Day (10:30-14:30)"
	SessionCloseHour = "Market Close (14:30-15:30)"
)

// ConfidenceEntry records a trader's self-rated confidence for one calendar
// day. The store enforces at most one entry per date.
type ConfidenceEntry struct {
	ID    string
	Date  time.Time // day granularity
	Level int       // 1-10
}

// Note is a free-text journal note, at most one per date. Updates replace
// the content of the existing note for that date.
type Note struct {
	ID        string
	Date      time.Time
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Rule is a self-authored trading rule. The title is the display key that
// trades reference in their followed-rules set.
type Rule struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
