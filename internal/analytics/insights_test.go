package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/models"
)

func TestComposeInsightsGatedBelowMinimum(t *testing.T) {
	e := New(DefaultConfig()) // min insight trades 3

	insights := e.ComposeInsights(tradesWithPL(100, -50))
	require.Len(t, insights, 1)
	assert.Equal(t, ToneInfo, insights[0].Tone)
	assert.Equal(t, TitleSmartInsight, insights[0].Title)
	assert.Equal(t, "Add at least 3 trades to start receiving suggestions and insights.", insights[0].Body)
}

func TestComposeInsightsSectionOrder(t *testing.T) {
	e := New(DefaultConfig())

	trades := tradesWithPL(500, -200, 300)
	for i := range trades {
		trades[i].Strategy = "Breakout"
	}

	insights := e.ComposeInsights(trades)
	require.NotEmpty(t, insights)

	// Titles appear in the fixed render order, each section at least once.
	wantOrder := []string{
		TitleSmartInsight,
		TitleFeedback,
		TitleEdge,
		TitleRecurring,
		TitleEntries,
		TitleExits,
		TitleSetups,
		TitleSessions,
	}
	pos := 0
	for _, title := range wantOrder {
		found := false
		for ; pos < len(insights); pos++ {
			if insights[pos].Title == title {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("section %q missing or out of order in %+v", title, insights)
		}
	}
}

func TestSmartInsightHeadline(t *testing.T) {
	e := New(DefaultConfig())

	t.Run("net positive", func(t *testing.T) {
		insights := e.ComposeInsights(tradesWithPL(500, -200, 300))
		head := insights[0]
		assert.Equal(t, ToneGood, head.Tone)
		assert.Contains(t, head.Body, "net positive ₹600.00")
		assert.Contains(t, head.Body, "67% win rate")
	})

	t.Run("net negative", func(t *testing.T) {
		insights := e.ComposeInsights(tradesWithPL(-500, 200, -300))
		head := insights[0]
		assert.Equal(t, ToneWarning, head.Tone)
		assert.Contains(t, head.Body, "net negative -₹600.00")
	})
}

func TestComposeInsightsTonesMatchFindings(t *testing.T) {
	e := New(DefaultConfig())

	var trades []models.Trade
	for i := 0; i < 3; i++ {
		tr := tradeWithPL(-100)
		tr.Symbol = "X"
		tr.Strategy = "Breakout"
		trades = append(trades, tr)
	}

	insights := e.ComposeInsights(trades)
	var recurring *Insight
	for i := range insights {
		if insights[i].Title == TitleRecurring {
			recurring = &insights[i]
			break
		}
	}
	require.NotNil(t, recurring)
	assert.Equal(t, ToneWarning, recurring.Tone)
	assert.True(t, strings.Contains(recurring.Body, "X on Breakout"))
}
