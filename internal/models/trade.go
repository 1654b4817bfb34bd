package models

import (
	"math"
	"time"
)

// Trade is an immutable record of one completed position, including the
// psychological context captured by the journal form.
type Trade struct {
	ID        string
	Symbol    string
	Direction Direction
	Quantity  float64

	EntryPrice  float64
	ExitPrice   float64
	StopLoss    float64 // 0 when not set
	TargetPrice float64 // 0 when not set

	Strategy  string
	EntryDate time.Time
	ExitDate  time.Time

	// Derived at creation time, never recomputed.
	GrossPL         float64
	NetPL           float64
	RiskRewardRatio float64

	ConfidenceLevel     int
	PreEmotion          string
	PostEmotion         string
	ExitEmotion         string
	PrimaryExitReason   string
	SleepQuality        int
	FomoLevel           int
	PreStress           int
	StressDuring        int
	TechnicalConfluence []string
	FollowedRules       []string
	WaitedForSetup      string
	WouldTakeAgain      string
	MarketSession       string
	Notes               string
	Lesson              string

	CreatedAt time.Time
}

// ComputeDerived fills GrossPL, NetPL and RiskRewardRatio from the raw
// prices. It runs once when the trade is recorded; stored values are
// treated as immutable afterwards.
func (t *Trade) ComputeDerived(commission float64) {
	if t.Direction == DirectionLong {
		t.GrossPL = (t.ExitPrice - t.EntryPrice) * t.Quantity
	} else {
		t.GrossPL = (t.EntryPrice - t.ExitPrice) * t.Quantity
	}
	t.NetPL = t.GrossPL - commission

	t.RiskRewardRatio = 0
	if t.StopLoss > 0 && t.TargetPrice > 0 {
		risk := math.Abs(t.EntryPrice - t.StopLoss)
		reward := math.Abs(t.TargetPrice - t.EntryPrice)
		if risk > 0 {
			t.RiskRewardRatio = reward / risk
		}
	}
}

// IsWin reports whether the trade closed with a positive net P&L.
func (t *Trade) IsWin() bool {
	return t.NetPL > 0
}

// FollowedRule reports whether the given rule title appears in the trade's
// followed-rules set. Matching is exact: no case or whitespace folding.
func (t *Trade) FollowedRule(title string) bool {
	for _, r := range t.FollowedRules {
		if r == title {
			return true
		}
	}
	return false
}
