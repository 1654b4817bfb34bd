package analytics

import (
	"time"

	"tradejournal/internal/models"
)

// PeriodReport is a time-windowed performance report. Empty is the
// "no trades in window" sentinel; Stats is zero-valued when set.
type PeriodReport struct {
	Empty bool
	Stats Stats
}

// Weekly reports on the trades entered in the seven days before now.
func (e *Engine) Weekly(trades []models.Trade, now time.Time) PeriodReport {
	cutoff := now.AddDate(0, 0, -7)
	var window []models.Trade
	for _, t := range trades {
		if !t.EntryDate.Before(cutoff) {
			window = append(window, t)
		}
	}
	if len(window) == 0 {
		return PeriodReport{Empty: true}
	}
	return PeriodReport{Stats: e.Aggregate(window)}
}

// Monthly reports on the trades entered in the same calendar month and year
// as now.
func (e *Engine) Monthly(trades []models.Trade, now time.Time) PeriodReport {
	year, month, _ := now.Date()
	var window []models.Trade
	for _, t := range trades {
		y, m, _ := t.EntryDate.Date()
		if y == year && m == month {
			window = append(window, t)
		}
	}
	if len(window) == 0 {
		return PeriodReport{Empty: true}
	}
	return PeriodReport{Stats: e.Aggregate(window)}
}

// StrategyRow is one strategy's line in the per-strategy report.
type StrategyRow struct {
	Strategy string
	Stats    Stats
}

// ReportByStrategy groups trades by strategy and aggregates each group.
// Rows appear in the order each strategy was first seen; trades without a
// strategy are skipped.
func (e *Engine) ReportByStrategy(trades []models.Trade) []StrategyRow {
	groups := make(map[string][]models.Trade)
	var order []string
	for _, t := range trades {
		if t.Strategy == "" {
			continue
		}
		if _, seen := groups[t.Strategy]; !seen {
			order = append(order, t.Strategy)
		}
		groups[t.Strategy] = append(groups[t.Strategy], t)
	}

	rows := make([]StrategyRow, 0, len(order))
	for _, strategy := range order {
		rows = append(rows, StrategyRow{
			Strategy: strategy,
			Stats:    e.Aggregate(groups[strategy]),
		})
	}
	return rows
}

// EmotionReport names the pre-trade emotions with the highest and lowest
// average net P&L. Empty is set when no trade carries an emotion.
type EmotionReport struct {
	Empty    bool
	Most     string
	MostAvg  float64
	Least    string
	LeastAvg float64
}

// ReportByEmotion averages net P&L per pre-trade emotion. Ties resolve to
// the emotion encountered first.
func (e *Engine) ReportByEmotion(trades []models.Trade) EmotionReport {
	type group struct {
		count int
		pl    float64
	}
	groups := make(map[string]*group)
	var order []string
	for _, t := range trades {
		if t.PreEmotion == "" {
			continue
		}
		g, seen := groups[t.PreEmotion]
		if !seen {
			g = &group{}
			groups[t.PreEmotion] = g
			order = append(order, t.PreEmotion)
		}
		g.count++
		g.pl += t.NetPL
	}
	if len(order) == 0 {
		return EmotionReport{Empty: true}
	}

	report := EmotionReport{}
	first := true
	for _, emotion := range order {
		g := groups[emotion]
		avg := g.pl / float64(g.count)
		if first || avg > report.MostAvg {
			report.Most, report.MostAvg = emotion, avg
		}
		if first || avg < report.LeastAvg {
			report.Least, report.LeastAvg = emotion, avg
		}
		first = false
	}
	return report
}

// AdherenceRow is one rule's line in the adherence report.
type AdherenceRow struct {
	Title    string
	Followed int
	Total    int
	Percent  int
}

// RuleAdherence counts, for each rule, the trades whose followed-rules set
// contains the rule's title. The percentage is taken over the full trade
// collection, so a never-followed rule reports 0%, not an error.
func (e *Engine) RuleAdherence(trades []models.Trade, rules []models.Rule) []AdherenceRow {
	rows := make([]AdherenceRow, 0, len(rules))
	for _, rule := range rules {
		followed := 0
		for _, t := range trades {
			if t.FollowedRule(rule.Title) {
				followed++
			}
		}
		rows = append(rows, AdherenceRow{
			Title:    rule.Title,
			Followed: followed,
			Total:    len(trades),
			Percent:  roundPercent(followed, len(trades)),
		})
	}
	return rows
}

// AverageConfidence returns the mean confidence level over all entries,
// or 0 when there are none.
func AverageConfidence(entries []models.ConfidenceEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum int
	for _, c := range entries {
		sum += c.Level
	}
	return float64(sum) / float64(len(entries))
}
