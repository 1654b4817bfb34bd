package analytics

import (
	"fmt"

	"tradejournal/internal/models"
)

// Tone classifies an insight for presentation.
type Tone string

const (
	ToneGood    Tone = "good"
	ToneWarning Tone = "warning"
	ToneInfo    Tone = "info"
)

// Insight is a presentation-ready item: a tone, a section title, and the
// finding's message as the body.
type Insight struct {
	Tone  Tone
	Title string
	Body  string
}

// Section titles, in the fixed order the presentation layer renders them.
const (
	TitleSmartInsight = "Smart Insight"
	TitleFeedback     = "Performance Feedback"
	TitleEdge         = "Edge Analyzer"
	TitleRecurring    = "Recurring Trades"
	TitleEntries      = "Entry Analysis"
	TitleExits        = "Emotional Bias"
	TitleSetups       = "Setup Quality"
	TitleSessions     = "Session Performance"
)

// ComposeInsights runs every detector over the snapshot and renders the
// findings in the fixed call order. It adds no computation of its own.
// Below MinInsightTrades it returns the single "add more trades" item.
func (e *Engine) ComposeInsights(trades []models.Trade) []Insight {
	if len(trades) < e.cfg.MinInsightTrades {
		return []Insight{{
			Tone:  ToneInfo,
			Title: TitleSmartInsight,
			Body:  fmt.Sprintf("Add at least %d trades to start receiving suggestions and insights.", e.cfg.MinInsightTrades),
		}}
	}

	var insights []Insight
	insights = append(insights, e.smartInsight(trades))
	for _, f := range e.PerformanceFeedback(trades) {
		insights = append(insights, render(TitleFeedback, f))
	}
	for _, f := range e.StrategyEdge(trades) {
		insights = append(insights, render(TitleEdge, f))
	}
	insights = append(insights, render(TitleRecurring, e.RecurringLosses(trades)))
	insights = append(insights, render(TitleEntries, e.EntryDiscipline(trades)))
	insights = append(insights, render(TitleExits, e.ExitBias(trades)))
	insights = append(insights, render(TitleSetups, e.SetupQuality(trades)))
	insights = append(insights, render(TitleSessions, e.SessionPerformance(trades)))
	return insights
}

// smartInsight is the dashboard headline derived from the overall stats.
func (e *Engine) smartInsight(trades []models.Trade) Insight {
	s := e.Aggregate(trades)
	if s.TotalPL >= 0 {
		return Insight{
			Tone:  ToneGood,
			Title: TitleSmartInsight,
			Body:  fmt.Sprintf("Great job! You're net positive %s with a %d%% win rate.", e.money(s.TotalPL), s.WinRate),
		}
	}
	return Insight{
		Tone:  ToneWarning,
		Title: TitleSmartInsight,
		Body:  fmt.Sprintf("You're net negative %s. Focus on improving risk management and strategy selection.", e.money(s.TotalPL)),
	}
}

// render maps a finding onto an insight under a section title.
func render(title string, f Finding) Insight {
	return Insight{Tone: Tone(f.Kind), Title: title, Body: f.Message}
}
