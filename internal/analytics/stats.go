package analytics

import (
	"fmt"
	"math"

	"tradejournal/internal/models"
)

// Stats summarizes the performance of a trade subset.
type Stats struct {
	TotalTrades int
	TotalPL     float64
	WinRate     int // percentage, rounded

	// BestTrade and WorstTrade are clamped toward zero: an all-losing set
	// reports BestTrade 0, not the least-negative trade, and vice versa.
	// This matches the journal's long-observed behavior and is relied on
	// by consumers; do not "fix" it here.
	BestTrade  float64
	WorstTrade float64

	// AvgRR is formatted "1:x.xx", averaging the risk:reward ratio over
	// trades with a ratio above zero. "1:0.00" when none qualify.
	AvgRR string
}

// Aggregate computes summary statistics over any trade subset, including
// the empty one.
func (e *Engine) Aggregate(trades []models.Trade) Stats {
	s := Stats{
		TotalTrades: len(trades),
		AvgRR:       "1:0.00",
	}
	if len(trades) == 0 {
		return s
	}

	wins := 0
	var rrSum float64
	rrCount := 0
	for _, t := range trades {
		s.TotalPL += t.NetPL
		if t.NetPL > 0 {
			wins++
		}
		if t.NetPL > s.BestTrade {
			s.BestTrade = t.NetPL
		}
		if t.NetPL < s.WorstTrade {
			s.WorstTrade = t.NetPL
		}
		if t.RiskRewardRatio > 0 {
			rrSum += t.RiskRewardRatio
			rrCount++
		}
	}

	s.WinRate = roundPercent(wins, len(trades))
	if rrCount > 0 {
		s.AvgRR = fmt.Sprintf("1:%.2f", rrSum/float64(rrCount))
	}
	return s
}

// AvgRRValue returns the numeric part of the AvgRR ratio.
func (s Stats) AvgRRValue() float64 {
	var v float64
	fmt.Sscanf(s.AvgRR, "1:%f", &v)
	return v
}

// CumulativePL returns the running net P&L series over the trades in the
// order given. Callers wanting a chronological curve sort by entry date
// first.
func CumulativePL(trades []models.Trade) []float64 {
	series := make([]float64, len(trades))
	var run float64
	for i, t := range trades {
		run += t.NetPL
		series[i] = run
	}
	return series
}

// roundPercent returns round(100*part/total), or 0 when total is zero.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
