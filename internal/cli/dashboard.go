// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradejournal/internal/analytics"
	"tradejournal/internal/models"
	"tradejournal/internal/store"
)

const recentTradeCount = 4

// addDashboardCommand adds the dashboard overview command.
func addDashboardCommand(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "dashboard",
		Short: "Journal overview",
		Long: `Show the journal at a glance: overall statistics, recent trades,
average confidence, and risk-reward distribution.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if app.Store == nil {
				output.Error("Store not initialized.")
				return fmt.Errorf("store unavailable")
			}

			trades, err := app.Store.GetTrades(ctx, store.TradeFilter{})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}
			confidence, err := app.Store.GetConfidence(ctx, time.Time{}, time.Time{})
			if err != nil {
				output.Error("Failed to fetch confidence entries: %v", err)
				return err
			}

			stats := app.Engine.Aggregate(trades)

			if output.IsJSON() {
				chrono := make([]models.Trade, len(trades))
				for i, t := range trades {
					chrono[len(trades)-1-i] = t
				}
				return output.JSON(map[string]interface{}{
					"stats":          stats,
					"avg_confidence": analytics.AverageConfidence(confidence),
					"recent_trades":  recentTrades(trades, recentTradeCount),
					"cumulative_pl":  analytics.CumulativePL(chrono),
				})
			}

			output.Bold("Trading Journal - %s", FormatDate(time.Now()))
			output.Println()

			output.Bold("Overview")
			output.Printf("  Total Trades: %d\n", stats.TotalTrades)
			output.Printf("  Total P&L:    %s\n", output.FormatPnL(stats.TotalPL))
			output.Printf("  Win Rate:     %d%%\n", stats.WinRate)
			output.Printf("  Best Trade:   %s\n", FormatIndianCurrency(stats.BestTrade))
			output.Printf("  Worst Trade:  %s\n", FormatIndianCurrency(stats.WorstTrade))
			output.Printf("  Avg R:R:      %s\n", stats.AvgRR)
			if avg := analytics.AverageConfidence(confidence); avg > 0 {
				output.Printf("  Confidence:   %.1f/10 average\n", avg)
			}
			output.Println()

			if stats.TotalTrades == 0 {
				output.Info("No trades recorded yet.")
				output.Dim("Tip: record one with 'journal trade add <symbol>'.")
				return nil
			}

			recent := recentTrades(trades, recentTradeCount)
			output.Bold("Recent Trades")
			table := NewTable(output, "Date", "Symbol", "Dir", "Net P&L", "Strategy")
			for _, t := range recent {
				table.AddRow(
					FormatDate(t.EntryDate),
					t.Symbol,
					string(t.Direction),
					output.FormatPnL(t.NetPL),
					TruncateString(t.Strategy, 15),
				)
			}
			table.Render()
			output.Println()

			output.Bold("Equity Curve")
			chrono := make([]models.Trade, len(trades))
			for i, t := range trades {
				chrono[len(trades)-1-i] = t // store returns newest first
			}
			series := analytics.CumulativePL(chrono)
			peak, trough := series[0], series[0]
			for _, v := range series {
				if v > peak {
					peak = v
				}
				if v < trough {
					trough = v
				}
			}
			output.Printf("  Current: %s\n", output.FormatPnL(series[len(series)-1]))
			output.Printf("  Peak:    %s\n", output.FormatPnL(peak))
			output.Printf("  Trough:  %s\n", output.FormatPnL(trough))
			output.Println()

			output.Bold("Risk-Reward Distribution")
			bands := app.Engine.ByRiskRewardBand(trades)
			for _, band := range analytics.RRBands {
				count := bands[band]
				bar := ""
				for i := 0; i < count; i++ {
					bar += "█"
				}
				output.Printf("  %-8s %3d  %s\n", band, count, output.Cyan(bar))
			}
			return nil
		},
	})
}

// recentTrades returns the first n trades of the already date-sorted slice.
func recentTrades(trades []models.Trade, n int) []models.Trade {
	if len(trades) < n {
		n = len(trades)
	}
	return trades[:n]
}
