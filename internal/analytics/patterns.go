package analytics

import (
	"fmt"
	"sort"

	"tradejournal/internal/models"
)

// Kind classifies a finding's tone.
type Kind string

const (
	KindGood    Kind = "good"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Finding is one detector's conclusion: a tone, a human-readable message,
// and the number of trades supporting it.
type Finding struct {
	Kind     Kind
	Message  string
	Evidence int
}

// StrategyEdge reports the most profitable strategy by summed net P&L, and
// the least profitable one when its sum is negative. Strategies recorded as
// empty or "N/A" are ignored.
func (e *Engine) StrategyEdge(trades []models.Trade) []Finding {
	sums := make(map[string]float64)
	var order []string
	for _, t := range trades {
		if t.Strategy == "" || t.Strategy == "N/A" {
			continue
		}
		if _, seen := sums[t.Strategy]; !seen {
			order = append(order, t.Strategy)
		}
		sums[t.Strategy] += t.NetPL
	}
	if len(sums) == 0 {
		return []Finding{{Kind: KindInfo, Message: "No strategies recorded yet."}}
	}

	// Stable ranking: ties resolve to the first-recorded strategy.
	sorted := append([]string(nil), order...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sums[sorted[i]] > sums[sorted[j]]
	})

	best := sorted[0]
	findings := []Finding{{
		Kind:    KindGood,
		Message: fmt.Sprintf("Your most profitable strategy is %s. Focus on mastering it.", best),
	}}
	worst := sorted[len(sorted)-1]
	if sums[worst] < 0 {
		findings = append(findings, Finding{
			Kind:    KindWarning,
			Message: fmt.Sprintf("Your least profitable strategy is %s. Consider avoiding or re-evaluating it.", worst),
		})
	}
	return findings
}

// RecurringLosses looks for the (symbol, strategy) pair that keeps losing.
// The pair with the highest repeat count is reported when it lost more than
// MinRecurringCount times.
func (e *Engine) RecurringLosses(trades []models.Trade) Finding {
	counts := make(map[string]int)
	var order []string
	for _, t := range trades {
		if t.NetPL >= 0 || t.Strategy == "" {
			continue
		}
		pattern := t.Symbol + " on " + t.Strategy
		if _, seen := counts[pattern]; !seen {
			order = append(order, pattern)
		}
		counts[pattern]++
	}

	top := ""
	topCount := 0
	for _, pattern := range order {
		if counts[pattern] > topCount {
			top, topCount = pattern, counts[pattern]
		}
	}
	if topCount > e.cfg.MinRecurringCount {
		return Finding{
			Kind:     KindWarning,
			Message:  fmt.Sprintf("You have recurring losses with: %s (%d times). Analyze these trades to find the issue.", top, topCount),
			Evidence: topCount,
		}
	}
	return Finding{
		Kind:    KindInfo,
		Message: "No significant recurring losing patterns detected. Good job diversifying your approach.",
	}
}

// FomoCorrelation counts losing trades entered with high FOMO. The second
// return is false below the sample gate.
func (e *Engine) FomoCorrelation(trades []models.Trade) (Finding, bool) {
	n := 0
	for _, t := range trades {
		if t.FomoLevel > e.cfg.HighFomoLevel && t.NetPL < 0 {
			n++
		}
	}
	if n <= e.cfg.MinCorrelationCount {
		return Finding{Kind: KindInfo, Message: "Not enough high-FOMO losses to draw a conclusion.", Evidence: n}, false
	}
	return Finding{
		Kind:     KindWarning,
		Message:  fmt.Sprintf("You've made %d losing trades with high FOMO. Ensure you wait for your setup and avoid chasing the market.", n),
		Evidence: n,
	}, true
}

// EarlyEntryCorrelation counts losing trades where the trader entered before
// the setup confirmed.
func (e *Engine) EarlyEntryCorrelation(trades []models.Trade) (Finding, bool) {
	n := 0
	for _, t := range trades {
		if t.WaitedForSetup == models.EnteredEarly && t.NetPL < 0 {
			n++
		}
	}
	if n <= e.cfg.MinCorrelationCount {
		return Finding{Kind: KindInfo, Message: "Not enough early entries to draw a conclusion.", Evidence: n}, false
	}
	return Finding{
		Kind:     KindWarning,
		Message:  fmt.Sprintf("You have %d losing trades where you entered early. Practice patience and wait for confirmation.", n),
		Evidence: n,
	}, true
}

// EntryDiscipline combines the FOMO and early-entry detectors with the
// precedence the journal has always used: FOMO first, then early entries,
// otherwise a positive verdict.
func (e *Engine) EntryDiscipline(trades []models.Trade) Finding {
	if f, ok := e.FomoCorrelation(trades); ok {
		return f
	}
	if f, ok := e.EarlyEntryCorrelation(trades); ok {
		return f
	}
	return Finding{
		Kind:    KindGood,
		Message: "Your entries appear disciplined. Keep waiting for your A+ setups.",
	}
}

// FrustrationExits counts losing trades closed while frustrated.
func (e *Engine) FrustrationExits(trades []models.Trade) (Finding, bool) {
	n := 0
	for _, t := range trades {
		if t.ExitEmotion == models.ExitFrustrated && t.NetPL < 0 {
			n++
		}
	}
	if n <= e.cfg.MinCorrelationCount {
		return Finding{Kind: KindInfo, Message: "Not enough frustrated exits to draw a conclusion.", Evidence: n}, false
	}
	return Finding{
		Kind:     KindWarning,
		Message:  fmt.Sprintf("You've exited %d losing trades feeling frustrated. This can lead to revenge trading. Take a break after a loss.", n),
		Evidence: n,
	}, true
}

// FearExitCost counts fear-based exits and estimates the profit forfeited:
// for each winning fear-exit that closed below target, the distance to
// target times quantity.
func (e *Engine) FearExitCost(trades []models.Trade) (Finding, bool) {
	n := 0
	var profitLeft float64
	for _, t := range trades {
		if t.PrimaryExitReason != models.ExitFearBased {
			continue
		}
		n++
		if t.NetPL > 0 && t.TargetPrice > t.ExitPrice {
			profitLeft += (t.TargetPrice - t.ExitPrice) * t.Quantity
		}
	}
	if n <= e.cfg.MinCorrelationCount {
		return Finding{Kind: KindInfo, Message: "Not enough fear-based exits to draw a conclusion.", Evidence: n}, false
	}
	return Finding{
		Kind:     KindWarning,
		Message:  fmt.Sprintf("You've exited %d trades due to fear, potentially leaving %s on the table. Trust your plan.", n, e.money(profitLeft)),
		Evidence: n,
	}, true
}

// ExitBias combines the frustration and fear detectors, frustration first,
// falling back to a neutral verdict.
func (e *Engine) ExitBias(trades []models.Trade) Finding {
	if f, ok := e.FrustrationExits(trades); ok {
		return f
	}
	if f, ok := e.FearExitCost(trades); ok {
		return f
	}
	return Finding{
		Kind:    KindInfo,
		Message: "Your emotional responses to trades seem balanced. Keep maintaining a neutral mindset.",
	}
}

// SetupQuality reports the performance of trades carrying at least
// MinConfluenceTags technical-confluence factors.
func (e *Engine) SetupQuality(trades []models.Trade) Finding {
	var quality []models.Trade
	for _, t := range trades {
		if len(t.TechnicalConfluence) >= e.cfg.MinConfluenceTags {
			quality = append(quality, t)
		}
	}
	if len(quality) == 0 {
		return Finding{Kind: KindInfo, Message: "Not enough data on setup quality."}
	}
	s := e.Aggregate(quality)
	return Finding{
		Kind: KindInfo,
		Message: fmt.Sprintf("For trades with %d+ confluence factors, your win rate is %d%% with a P&L of %s. Prioritize these high-quality setups.",
			e.cfg.MinConfluenceTags, s.WinRate, e.money(s.TotalPL)),
		Evidence: len(quality),
	}
}

// SessionPerformance flags the market-open session as favorable or
// unfavorable based on its net P&L.
func (e *Engine) SessionPerformance(trades []models.Trade) Finding {
	var session []models.Trade
	for _, t := range trades {
		if t.MarketSession == models.SessionOpenHour {
			session = append(session, t)
		}
	}
	if len(session) < e.cfg.MinSessionTrades {
		return Finding{Kind: KindInfo, Message: "Not enough trades during market open to analyze.", Evidence: len(session)}
	}
	s := e.Aggregate(session)
	if s.TotalPL > 0 {
		return Finding{
			Kind:     KindGood,
			Message:  fmt.Sprintf("You perform well during the market open, with a P&L of %s. This might be your golden hour.", e.money(s.TotalPL)),
			Evidence: len(session),
		}
	}
	return Finding{
		Kind:     KindWarning,
		Message:  fmt.Sprintf("You seem to struggle during the market open, with a P&L of %s. This period is volatile; consider trading smaller or waiting for the market to settle.", e.money(s.TotalPL)),
		Evidence: len(session),
	}
}

// PerformanceFeedback turns the aggregate win rate and average risk:reward
// into coaching findings: a warning below LowWinRate, praise otherwise, and
// an extra warning when the average risk:reward is below LowAvgRR.
func (e *Engine) PerformanceFeedback(trades []models.Trade) []Finding {
	s := e.Aggregate(trades)
	var findings []Finding
	if s.WinRate < e.cfg.LowWinRate {
		findings = append(findings, Finding{
			Kind:     KindWarning,
			Message:  fmt.Sprintf("Your win rate is %d%%. Consider reviewing your entry criteria and risk management.", s.WinRate),
			Evidence: s.TotalTrades,
		})
	} else {
		findings = append(findings, Finding{
			Kind:     KindGood,
			Message:  fmt.Sprintf("Your win rate of %d%% is solid. Keep refining what works!", s.WinRate),
			Evidence: s.TotalTrades,
		})
	}
	if s.AvgRRValue() < e.cfg.LowAvgRR {
		findings = append(findings, Finding{
			Kind:     KindWarning,
			Message:  fmt.Sprintf("Your average Risk:Reward is low (%s). Aim for setups with a higher potential reward.", s.AvgRR),
			Evidence: s.TotalTrades,
		})
	}
	return findings
}
