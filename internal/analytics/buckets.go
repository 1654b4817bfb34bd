package analytics

import (
	"time"

	"tradejournal/internal/models"
)

// RRBand is a fixed risk:reward band label.
type RRBand string

const (
	BandBelowOne   RRBand = "<1:1"
	BandOneToTwo   RRBand = "1:1-1:2"
	BandTwoToThree RRBand = "1:2-1:3"
	BandAboveThree RRBand = ">1:3"
)

// RRBands lists the bands in display order.
var RRBands = []RRBand{BandBelowOne, BandOneToTwo, BandTwoToThree, BandAboveThree}

// ByRiskRewardBand partitions trades into the fixed bands using half-open
// intervals [0,1), [1,2), [2,3), [3,∞). An unset ratio (0) falls in the
// lowest band. All four bands are present in the result.
func (e *Engine) ByRiskRewardBand(trades []models.Trade) map[RRBand]int {
	buckets := map[RRBand]int{
		BandBelowOne:   0,
		BandOneToTwo:   0,
		BandTwoToThree: 0,
		BandAboveThree: 0,
	}
	for _, t := range trades {
		switch rr := t.RiskRewardRatio; {
		case rr < 1:
			buckets[BandBelowOne]++
		case rr < 2:
			buckets[BandOneToTwo]++
		case rr < 3:
			buckets[BandTwoToThree]++
		default:
			buckets[BandAboveThree]++
		}
	}
	return buckets
}

// StrategyBucket counts trades and wins for one strategy.
type StrategyBucket struct {
	Count int
	Wins  int
}

// ByStrategy groups trades by their free-form strategy string. Strategies
// with no trades never appear.
func (e *Engine) ByStrategy(trades []models.Trade) map[string]StrategyBucket {
	buckets := make(map[string]StrategyBucket)
	for _, t := range trades {
		b := buckets[t.Strategy]
		b.Count++
		if t.IsWin() {
			b.Wins++
		}
		buckets[t.Strategy] = b
	}
	return buckets
}

// WeekdayBucket aggregates the trades entered on one weekday.
type WeekdayBucket struct {
	Count int
	Wins  int
	NetPL float64
}

// ByDayOfWeek groups trades by the weekday of their entry date. The date's
// calendar components are read as stored, with no timezone conversion.
// Weekdays with no trades are omitted.
func (e *Engine) ByDayOfWeek(trades []models.Trade) map[time.Weekday]WeekdayBucket {
	buckets := make(map[time.Weekday]WeekdayBucket)
	for _, t := range trades {
		day := t.EntryDate.Weekday()
		b := buckets[day]
		b.Count++
		if t.IsWin() {
			b.Wins++
		}
		b.NetPL += t.NetPL
		buckets[day] = b
	}
	return buckets
}

// CalendarBucket aggregates the trades entered on one day of a month.
type CalendarBucket struct {
	Count int
	NetPL float64
}

// ByCalendarDay groups the trades whose entry date falls in the given year
// and month, keyed by day of month.
func (e *Engine) ByCalendarDay(trades []models.Trade, year int, month time.Month) map[int]CalendarBucket {
	buckets := make(map[int]CalendarBucket)
	for _, t := range trades {
		y, m, d := t.EntryDate.Date()
		if y != year || m != month {
			continue
		}
		b := buckets[d]
		b.Count++
		b.NetPL += t.NetPL
		buckets[d] = b
	}
	return buckets
}

// DayTier is the severity label for a calendar day's aggregate net P&L.
type DayTier string

const (
	TierProfitHigh DayTier = "profit-high"
	TierProfitLow  DayTier = "profit-low"
	TierLossLow    DayTier = "loss-low"
	TierLossHigh   DayTier = "loss-high"
	TierNoTrades   DayTier = "no-trades"
)

// TierFor classifies a day's net P&L. A break-even day with trades counts
// as low profit; the high/low boundary is exclusive on the profit side and
// inclusive on the loss side.
func (e *Engine) TierFor(netPL float64, tradeCount int) DayTier {
	switch {
	case tradeCount == 0:
		return TierNoTrades
	case netPL > e.cfg.TierThreshold:
		return TierProfitHigh
	case netPL > 0:
		return TierProfitLow
	case netPL < -e.cfg.TierThreshold:
		return TierLossHigh
	case netPL < 0:
		return TierLossLow
	default:
		return TierProfitLow
	}
}
